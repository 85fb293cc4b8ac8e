package filtering

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ID is an entity's internal numeric identifier.
type ID = int64

// Facet is a filter dimension, named after the kind whose ids it carries ("topic_ids").
type Facet string

// Bag maps facets to the identifiers a caller supplied for them. Absent facets are not keys.
type Bag map[Facet][]ID

// facetAliases maps singular request keys onto their list facet.
var facetAliases = map[string]Facet{
	"country_id": "country_ids",
	"state_id":   "state_ids",
}

func (b Bag) Has(f Facet) bool { return len(b[f]) > 0 }

// Facets returns the applied facet names in lexical order.
func (b Bag) Facets() []Facet {
	out := make([]Facet, 0, len(b))
	for f, ids := range b {
		if len(ids) > 0 {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Only returns the subset of b restricted to the given facets.
func (b Bag) Only(facets []Facet) Bag {
	out := Bag{}
	for _, f := range facets {
		if ids := b[f]; len(ids) > 0 {
			out[f] = ids
		}
	}
	return out
}

// Canonical renders b as a stable string: facets sorted, ids kept in caller order.
func (b Bag) Canonical() string {
	var sb strings.Builder
	for i, f := range b.Facets() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(string(f))
		sb.WriteByte('=')
		for j, id := range b[f] {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(id, 10))
		}
	}
	return sb.String()
}

// Normalize turns a facet value into a list. Query parsing yields a scalar for one value and a
// list for several; callers get a list either way. Blank entries are dropped, so an empty scalar
// yields an empty list.
func Normalize(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return appendNonBlank(nil, v)
	case []string:
		var out []string
		for _, s := range v {
			out = appendNonBlank(out, s)
		}
		return out
	case []interface{}:
		var out []string
		for _, item := range v {
			out = append(out, Normalize(item)...)
		}
		return out
	case []int64:
		out := make([]string, 0, len(v))
		for _, n := range v {
			out = append(out, strconv.FormatInt(n, 10))
		}
		return out
	case []int:
		out := make([]string, 0, len(v))
		for _, n := range v {
			out = append(out, strconv.Itoa(n))
		}
		return out
	case int:
		return []string{strconv.Itoa(v)}
	case int64:
		return []string{strconv.FormatInt(v, 10)}
	case float64:
		// JSON numbers decode as float64
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return appendNonBlank(nil, fmt.Sprint(v))
	}
}

func appendNonBlank(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

// ParseIDs coerces normalized facet values to ids. Each value may itself be a comma separated
// list ("1,2"). Non-numeric or non-positive values are rejected.
func ParseIDs(facet Facet, values []string) ([]ID, error) {
	var out []ID
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("%w: %s=%q", ErrInvalidIdentifier, facet, part)
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// CanonicalFacet resolves request keys (including the singular region aliases and the
// "topic_ids[]" bracket form) to a facet name.
func CanonicalFacet(key string) Facet {
	key = strings.TrimSuffix(strings.TrimSpace(key), "[]")
	if f, ok := facetAliases[key]; ok {
		return f
	}
	return Facet(key)
}

// ParseQuery builds a bag from query parameters, keeping only keys accepted by known.
func ParseQuery(values url.Values, known func(Facet) bool) (Bag, error) {
	bag := Bag{}
	for key, vals := range values {
		f := CanonicalFacet(key)
		if known != nil && !known(f) {
			continue
		}
		ids, err := ParseIDs(f, Normalize(vals))
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			bag[f] = append(bag[f], ids...)
		}
	}
	return bag, nil
}

// FromMap builds a bag from decoded JSON or flag input where each value is a scalar or a list.
func FromMap(raw map[string]interface{}, known func(Facet) bool) (Bag, error) {
	bag := Bag{}
	for key, val := range raw {
		f := CanonicalFacet(key)
		if known != nil && !known(f) {
			continue
		}
		ids, err := ParseIDs(f, Normalize(val))
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			bag[f] = append(bag[f], ids...)
		}
	}
	return bag, nil
}
