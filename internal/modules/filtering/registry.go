package filtering

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const registryEnv = "FACET_REGISTRY_YAML"

const (
	RegistryTaxonomy = "taxonomy"
	RegistryRegion   = "region"
)

//go:embed facets.yaml
var registryFS embed.FS

// Association describes a join read: the Target column of Table where Source matches.
// LiveOnly restricts the read to rows that are not soft deleted (entity tables used as joins).
type Association struct {
	Table    string `json:"table"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	LiveOnly bool   `json:"live_only,omitempty"`
}

// Binding attaches a facet to the association that resolves it for one target kind.
type Binding struct {
	Facet       Facet       `json:"facet"`
	Association Association `json:"association"`
}

type bindingDoc struct {
	Facet    string `yaml:"facet"`
	Table    string `yaml:"table"`
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	LiveOnly bool   `yaml:"live_only"`
}

type registryDoc struct {
	Version    int                                `yaml:"version"`
	Registries map[string]map[string][]bindingDoc `yaml:"registries"`
}

// Registry is the applicability map of one resolver: for each target kind, the ordered
// facets that may restrict it.
type Registry struct {
	name   string
	kinds  map[taxonomy.Kind][]Binding
	facets map[Facet]struct{}
}

func (r *Registry) Name() string { return r.name }

// Kinds returns the target kinds in lexical order.
func (r *Registry) Kinds() []taxonomy.Kind {
	out := make([]taxonomy.Kind, 0, len(r.kinds))
	for k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) Supports(kind taxonomy.Kind) bool {
	_, ok := r.kinds[kind]
	return ok
}

// Bindings returns the applicability list for kind, in evaluation order.
func (r *Registry) Bindings(kind taxonomy.Kind) ([]Binding, error) {
	bs, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s registry", ErrUnknownKind, kind, r.name)
	}
	out := make([]Binding, len(bs))
	copy(out, bs)
	return out, nil
}

// Applied intersects kind's applicability list with the facets present in bag. The result
// follows the applicability order, never the bag's.
func (r *Registry) Applied(kind taxonomy.Kind, bag Bag) ([]Binding, error) {
	bs, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s registry", ErrUnknownKind, kind, r.name)
	}
	var out []Binding
	for _, b := range bs {
		if bag.Has(b.Facet) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Knows reports whether any kind in the registry accepts facet f.
func (r *Registry) Knows(f Facet) bool {
	_, ok := r.facets[f]
	return ok
}

// Registries bundles the resolvers' applicability maps.
type Registries struct {
	Taxonomy *Registry
	Region   *Registry
}

// Knows reports whether either registry accepts facet f.
func (rs Registries) Knows(f Facet) bool {
	return (rs.Taxonomy != nil && rs.Taxonomy.Knows(f)) || (rs.Region != nil && rs.Region.Knows(f))
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// LoadRegistries reads FACET_REGISTRY_YAML when set, then the embedded facets.yaml, then the
// compiled fallback, returning the first that validates.
func LoadRegistries(log *logger.Logger) (Registries, error) {
	if path := strings.TrimSpace(os.Getenv(registryEnv)); path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			var rs Registries
			rs, err = ParseRegistries(raw)
			if err == nil {
				log.Info("facet registry loaded", "path", path)
				return rs, nil
			}
		}
		log.Warn("facet registry override rejected; using embedded", "path", path, "error", err)
	}
	raw, err := registryFS.ReadFile("facets.yaml")
	if err == nil {
		var rs Registries
		if rs, err = ParseRegistries(raw); err == nil {
			return rs, nil
		}
	}
	log.Warn("embedded facet registry invalid; using compiled fallback", "error", err)
	return buildRegistries(fallbackRegistries)
}

// ParseRegistries decodes and validates a registry document.
func ParseRegistries(raw []byte) (Registries, error) {
	var doc registryDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Registries{}, fmt.Errorf("decode facet registry: %w", err)
	}
	if doc.Version != 1 {
		return Registries{}, fmt.Errorf("facet registry: unsupported version %d", doc.Version)
	}
	return buildRegistries(doc.Registries)
}

func buildRegistries(docs map[string]map[string][]bindingDoc) (Registries, error) {
	tax, err := buildRegistry(RegistryTaxonomy, docs[RegistryTaxonomy])
	if err != nil {
		return Registries{}, err
	}
	region, err := buildRegistry(RegistryRegion, docs[RegistryRegion])
	if err != nil {
		return Registries{}, err
	}
	return Registries{Taxonomy: tax, Region: region}, nil
}

func buildRegistry(name string, kinds map[string][]bindingDoc) (*Registry, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("facet registry %q: no kinds", name)
	}
	reg := &Registry{
		name:   name,
		kinds:  make(map[taxonomy.Kind][]Binding, len(kinds)),
		facets: map[Facet]struct{}{},
	}
	var errs []error
	for rawKind, docs := range kinds {
		kind, ok := taxonomy.ParseKind(rawKind)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unknown kind %q", name, rawKind))
			continue
		}
		seen := map[Facet]bool{}
		bindings := make([]Binding, 0, len(docs))
		for _, d := range docs {
			f := Facet(strings.TrimSpace(d.Facet))
			switch {
			case f == "":
				errs = append(errs, fmt.Errorf("%s/%s: empty facet", name, kind))
				continue
			case string(f) == kind.Facet():
				errs = append(errs, fmt.Errorf("%s/%s: kind cannot filter by its own facet", name, kind))
				continue
			case seen[f]:
				errs = append(errs, fmt.Errorf("%s/%s: duplicate facet %s", name, kind, f))
				continue
			}
			for _, ident := range []string{d.Table, d.Source, d.Target} {
				if !identRe.MatchString(ident) {
					errs = append(errs, fmt.Errorf("%s/%s/%s: invalid identifier %q", name, kind, f, ident))
				}
			}
			seen[f] = true
			reg.facets[f] = struct{}{}
			bindings = append(bindings, Binding{
				Facet: f,
				Association: Association{
					Table:    d.Table,
					Source:   d.Source,
					Target:   d.Target,
					LiveOnly: d.LiveOnly,
				},
			})
		}
		reg.kinds[kind] = bindings
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// Describe lists, per kind, the facets accepted in evaluation order.
func (r *Registry) Describe() map[taxonomy.Kind][]Facet {
	out := make(map[taxonomy.Kind][]Facet, len(r.kinds))
	for kind, bs := range r.kinds {
		facets := make([]Facet, 0, len(bs))
		for _, b := range bs {
			facets = append(facets, b.Facet)
		}
		out[kind] = facets
	}
	return out
}

// Supports reports whether either registry describes kind.
func (rs Registries) Supports(kind taxonomy.Kind) bool {
	return (rs.Taxonomy != nil && rs.Taxonomy.Supports(kind)) || (rs.Region != nil && rs.Region.Supports(kind))
}

// Applied returns every binding of kind that bag activates, taxonomy first. Registries that do
// not describe kind contribute nothing.
func (rs Registries) Applied(kind taxonomy.Kind, bag Bag) []Binding {
	var out []Binding
	for _, r := range []*Registry{rs.Taxonomy, rs.Region} {
		if r == nil {
			continue
		}
		if bs, err := r.Applied(kind, bag); err == nil {
			out = append(out, bs...)
		}
	}
	return out
}
