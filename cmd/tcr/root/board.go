package root

import (
	"github.com/spf13/cobra"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			return tui.Run(session, cmd.OutOrStdout())
		},
	}

	return cmd
}
