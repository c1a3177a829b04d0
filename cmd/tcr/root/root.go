package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tcr",
	Short:         "Tokyo Creator RPG — a single-session progression tracker",
	Long:          "Tokyo Creator RPG turns the creator grind into an RPG: quests award XP,\nXP drives a profile level and four attributes, and every action can be undone.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().String("catalog", "", "path to a YAML quest catalog (defaults to $TCR_CATALOG, then built-in)")

	rootCmd.AddCommand(
		newBoardCmd(),
		newCatalogCmd(),
	)
	// The board is the whole app; make bare `tcr` open it.
	rootCmd.RunE = newBoardCmd().RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
