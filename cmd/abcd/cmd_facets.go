package main

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/services"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Print the facet registries",
	Long:  "Facets prints, per kind, the facets each registry accepts. FACET_REGISTRY_YAML overrides the built-in registry.",
	RunE:  runFacets,
}

func runFacets(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	regs, err := filtering.LoadRegistries(log)
	if err != nil {
		return err
	}
	// describing facets reads only the registries
	catalog := services.NewCatalogService(log, nil, regs, nil, nil)
	return printJSON(catalog.Facets(), nil)
}
