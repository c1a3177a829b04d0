package root

import (
	"github.com/spf13/cobra"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/config"
	"github.com/ebgeebee/tokyo-creator-rpg/internal/engine"
	"github.com/ebgeebee/tokyo-creator-rpg/internal/tui"
)

// resolveCatalog loads the catalog named by --catalog, then $TCR_CATALOG,
// then falls back to the built-in one.
func resolveCatalog(cmd *cobra.Command) (config.Catalog, error) {
	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return config.Catalog{}, err
	}
	if path == "" {
		cfg, err := config.FromEnv()
		if err != nil {
			return config.Catalog{}, err
		}
		path = cfg.CatalogPath
	}
	return config.LoadCatalog(path)
}

// openSession seeds a fresh engine from the catalog. State lives only as
// long as the process: there is deliberately no storage layer.
func openSession(cmd *cobra.Command) (*tui.Session, error) {
	catalog, err := resolveCatalog(cmd)
	if err != nil {
		return nil, err
	}
	setup, err := catalog.EngineSetup()
	if err != nil {
		return nil, err
	}
	e, err := engine.New(setup)
	if err != nil {
		return nil, err
	}
	return &tui.Session{
		Engine:     e,
		Milestones: catalog.MilestoneCounters(),
		Weight:     catalog.WeightTracker(),
	}, nil
}
