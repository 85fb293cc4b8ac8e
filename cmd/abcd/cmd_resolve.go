package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/abcd-backend/internal/app"
	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/services"
)

var (
	resolveKinds   []string
	resolveFilters []string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve filter facets to entity ids",
	Long: `Resolve prints the ids each kind resolves to under the given facets, as JSON.

Example:
  abcd resolve --kind course --kind behaviour --filter topic_ids=1,2 --filter outcome_ids=5`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSliceVar(&resolveKinds, "kind", nil, "kind to resolve (repeatable)")
	resolveCmd.Flags().StringArrayVar(&resolveFilters, "filter", nil, "facet=ids, e.g. topic_ids=1,2 (repeatable)")
	_ = resolveCmd.MarkFlagRequired("kind")
}

// parseFilters turns "facet=1,2" pairs into query values.
func parseFilters(raw []string) (url.Values, error) {
	values := url.Values{}
	for _, f := range raw {
		key, val, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --filter %q, want facet=ids", f)
		}
		values.Add(strings.TrimSpace(key), val)
	}
	return values, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	values, err := parseFilters(resolveFilters)
	if err != nil {
		return err
	}
	kinds := make([]taxonomy.Kind, 0, len(resolveKinds))
	for _, raw := range resolveKinds {
		kind, ok := taxonomy.ParseKind(raw)
		if !ok {
			return fmt.Errorf("%w: %q", filtering.ErrUnknownKind, raw)
		}
		kinds = append(kinds, kind)
	}

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	regs := a.Services.Registries
	for key := range values {
		if f := filtering.CanonicalFacet(key); !regs.Knows(f) {
			fmt.Fprintf(os.Stderr, "warning: ignoring unknown facet %q\n", key)
		}
	}
	bag, err := filtering.ParseQuery(values, regs.Knows)
	if err != nil {
		return err
	}

	return printJSON(resolveAll(ctx, a.Services.Catalog, kinds, bag))
}

func resolveAll(ctx context.Context, catalog services.CatalogService, kinds []taxonomy.Kind, bag filtering.Bag) (map[taxonomy.Kind][]filtering.ID, error) {
	var mu sync.Mutex
	out := make(map[taxonomy.Kind][]filtering.ID, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		kind := kind
		g.Go(func() error {
			ids, err := catalog.ResolveIDs(gctx, kind, bag)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", kind, err)
			}
			mu.Lock()
			out[kind] = ids
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func printJSON(v interface{}, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
