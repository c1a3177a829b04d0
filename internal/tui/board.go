package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/engine"
)

// Session bundles the engine with the display-only state the board owns:
// milestone counters and the weight tracker live outside the engine's
// consistency domain and are never snapshotted.
type Session struct {
	Engine     *engine.Engine
	Milestones []engine.Milestone
	Weight     engine.WeightTracker
}

// Run opens the interactive board and blocks until the user quits.
func Run(s *Session, out io.Writer) error {
	m := newBoardModel(s)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
