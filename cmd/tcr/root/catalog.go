package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/engine"
	"github.com/ebgeebee/tokyo-creator-rpg/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the resolved quest catalog",
		Long:  "Resolves and validates the quest catalog (from --catalog, $TCR_CATALOG, or\nthe built-in default) and prints it with per-unit rewards. Useful to check a\ncustom catalog file before a session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resolveCatalog(cmd)
			if err != nil {
				return err
			}
			setup, err := catalog.EngineSetup()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quest Catalog"))
			fmt.Fprintln(out, ui.LabelValue("Profile", fmt.Sprintf("level %d, %d xp", setup.Profile.Level, setup.Profile.XP)))
			for _, a := range engine.AllAttributes() {
				fmt.Fprintf(out, "  %s %s\n", ui.Key.Render(string(a)+":"), fmt.Sprintf("level %d", setup.AttributeLevels[a]))
			}
			fmt.Fprintln(out, "")

			for _, c := range engine.AllCadences() {
				fmt.Fprintln(out, ui.H2.Render(ui.CadenceIcon(string(c))+" "+string(c)))
				for _, q := range setup.Quests {
					if q.Cadence != c {
						continue
					}
					attr := "-"
					if q.Attribute != "" {
						attr = string(q.Attribute)
					}
					fmt.Fprintf(out, "  %-4s %-45s ×%-3d %s %s\n",
						q.ID, q.Description, q.Target,
						ui.Gold.Render(fmt.Sprintf("+%d/unit", q.UnitReward())),
						ui.Muted.Render(attr))
				}
				fmt.Fprintln(out, "")
			}

			for _, m := range catalog.MilestoneCounters() {
				fmt.Fprintln(out, ui.LabelValue(m.Name, fmt.Sprintf("%d / %d", m.Value, m.Target)))
			}
			w := catalog.WeightTracker()
			fmt.Fprintln(out, ui.LabelValue("Weight", fmt.Sprintf("%.1f kg → goal %.1f kg", w.Current, w.Goal)))
			return nil
		},
	}

	return cmd
}
