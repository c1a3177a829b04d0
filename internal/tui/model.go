package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebgeebee/tokyo-creator-rpg/internal/engine"
	"github.com/ebgeebee/tokyo-creator-rpg/internal/ui"
)

const notEditing = -1

type boardModel struct {
	session *Session

	width  int
	height int

	selected int
	editing  int // milestone index being edited, or notEditing
	input    textinput.Model

	lastLog string
}

func newBoardModel(s *Session) boardModel {
	in := textinput.New()
	in.CharLimit = 9
	in.Width = 10
	return boardModel{
		session: s,
		editing: notEditing,
		input:   in,
		lastLog: "Welcome back, Tarnished drone.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

// questRow is one selectable line on the board.
type questRow struct {
	cadence engine.Cadence
	quest   engine.Quest
}

func (m boardModel) questRows() []questRow {
	var out []questRow
	for _, c := range engine.AllCadences() {
		for _, q := range m.session.Engine.Quests(c) {
			out = append(out, questRow{cadence: c, quest: q})
		}
	}
	return out
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing != notEditing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m boardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		ms := &m.session.Milestones[m.editing]
		ms.Set(m.input.Value())
		m.lastLog = fmt.Sprintf("%s set to %d.", ms.Name, ms.Value)
		m.editing = notEditing
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = notEditing
		m.input.Blur()
		m.lastLog = "Edit cancelled."
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m boardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.questRows())-1 {
			m.selected++
		}
		return m, nil
	case "enter", " ", "c":
		return m.completeSelected()
	case "u":
		if m.session.Engine.UndoLast() {
			m.lastLog = "Fate reverted."
		} else {
			m.lastLog = "Nothing to revert."
		}
		return m, nil
	case "n":
		entry := m.session.Engine.CloseCycle()
		m.lastLog = fmt.Sprintf("Cycle closed: +%d XP archived at level %d.", entry.XPGained, entry.Level)
		return m, nil
	case "f":
		return m.startEditing(0)
	case "y":
		return m.startEditing(1)
	case "+", "=":
		m.session.Weight.Step(0.5)
		m.lastLog = fmt.Sprintf("Weight: %.1f kg.", m.session.Weight.Current)
		return m, nil
	case "-":
		m.session.Weight.Step(-0.5)
		m.lastLog = fmt.Sprintf("Weight: %.1f kg.", m.session.Weight.Current)
		return m, nil
	}
	return m, nil
}

func (m boardModel) startEditing(idx int) (tea.Model, tea.Cmd) {
	if idx >= len(m.session.Milestones) {
		return m, nil
	}
	m.editing = idx
	m.input.SetValue(fmt.Sprintf("%d", m.session.Milestones[idx].Value))
	m.input.CursorEnd()
	m.lastLog = fmt.Sprintf("Editing %s (enter to commit, esc to cancel).", m.session.Milestones[idx].Name)
	return m, m.input.Focus()
}

func (m boardModel) completeSelected() (tea.Model, tea.Cmd) {
	rows := m.questRows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m, nil
	}
	row := rows[m.selected]

	res, err := m.session.Engine.CompleteQuestUnit(row.cadence, row.quest.ID)
	if err != nil {
		m.lastLog = "Complete failed: " + err.Error()
		return m, nil
	}
	switch {
	case res.AlreadyComplete:
		m.lastLog = fmt.Sprintf("%q is already complete this cycle.", row.quest.Description)
	case res.LevelUp:
		m.lastLog = fmt.Sprintf("+%d XP, %s (level %d → %d)", res.XPAwarded, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	case res.QuestDone:
		m.lastLog = fmt.Sprintf("+%d XP, %q complete!", res.XPAwarded, row.quest.Description)
	default:
		m.lastLog = fmt.Sprintf("+%d XP: %s", res.XPAwarded, row.quest.Description)
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	left := m.renderSidebar()
	right := m.renderQuests()
	footer := "\n" + ui.Muted.Render(m.lastLog)

	leftW := 44
	if m.width > 0 && m.width/2 < leftW {
		leftW = m.width / 2
	}
	if leftW < 24 {
		leftW = 24
	}

	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	n := len(linesLeft)
	if len(linesRight) > n {
		n = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	p := m.session.Engine.Profile()
	needed := engine.RequiredXPForLevel(p.Level)
	bar := ui.Bar(p.XP, needed, 30)
	return fmt.Sprintf("%s  %s  %s %d/%d",
		ui.Heading(ui.IconRune, "Tokyo Creator RPG"),
		ui.LabelValue("Level", p.Level),
		bar, p.XP, needed)
}

func (m boardModel) renderSidebar() string {
	var lines []string

	lines = append(lines, ui.PanelTitle.Render(ui.IconSparkle+" Attributes"))
	attrs := m.session.Engine.Attributes()
	for _, a := range engine.AllAttributes() {
		st := attrs[a]
		needed := engine.AttributeXPNeeded(st.Level)
		lines = append(lines, fmt.Sprintf("  %-9s Lv %-3d %s %d/%d",
			a, st.Level, ui.Bar(st.ProgressXP, needed, 12), st.ProgressXP, needed))
	}

	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render(ui.IconBolt+" Great Runes"))
	for i, ms := range m.session.Milestones {
		if m.editing == i {
			lines = append(lines, fmt.Sprintf("  %s: %s", ms.Name, m.input.View()))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: %s / %d (%.0f%%)",
			ms.Name, ui.Value.Render(fmt.Sprintf("%d", ms.Value)), ms.Target, ms.Percent()))
	}

	w := m.session.Weight
	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render("⚖️ Vitality Quest"))
	lines = append(lines, fmt.Sprintf("  %.1f kg → %.1f kg %s",
		w.Current, w.Goal, ui.Bar(int(w.Progress()*100), 100, 10)))

	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render(ui.IconWeek+" Chronicle of Weeks"))
	chron := m.session.Engine.Chronicle()
	if len(chron) == 0 {
		lines = append(lines, ui.Muted.Render("  Your legend is just beginning..."))
	}
	for i, e := range chron {
		if i >= 5 {
			lines = append(lines, ui.Muted.Render(fmt.Sprintf("  … %d more", len(chron)-i)))
			break
		}
		lines = append(lines, fmt.Sprintf("  %s  %s  Lv %d",
			e.Date.Format("2006-01-02"), ui.Gold.Render(fmt.Sprintf("+%d XP", e.XPGained)), e.Level))
	}

	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render("Keys"))
	lines = append(lines, ui.Muted.Render("  j/k move · space complete · u undo"))
	lines = append(lines, ui.Muted.Render("  n next cycle · f/y edit runes · +/- weight · q quit"))

	return strings.Join(lines, "\n")
}

func (m boardModel) renderQuests() string {
	var lines []string

	idx := 0
	for _, c := range engine.AllCadences() {
		lines = append(lines, ui.PanelTitle.Render(ui.CadenceIcon(string(c))+" "+sectionTitle(c)))
		for _, q := range m.session.Engine.Quests(c) {
			cursor := "  "
			style := ui.Value
			if idx == m.selected {
				cursor = "> "
				style = ui.SelectedRow
			}
			status := fmt.Sprintf("%d/%d", q.Count, q.Target)
			if q.Done() {
				status = ui.Good.Render(ui.IconDone + " " + status)
			}
			lines = append(lines, fmt.Sprintf("%s%s %s  %s  %s",
				cursor,
				style.Render(q.Description),
				ui.Muted.Render(fmt.Sprintf("+%d/unit", q.UnitReward())),
				ui.Bar(q.Count, q.Target, 10),
				status))
			idx++
		}
		lines = append(lines, "")
	}

	lines = append(lines, ui.PanelTitle.Render(ui.IconScroll+" Tarnished Echoes"))
	hist := m.session.Engine.History()
	if len(hist) == 0 {
		lines = append(lines, ui.Muted.Render("  No echoes recorded in the current grace..."))
	}
	for i, s := range hist {
		if i >= 8 {
			lines = append(lines, ui.Muted.Render(fmt.Sprintf("  … %d more", len(hist)-i)))
			break
		}
		lines = append(lines, fmt.Sprintf("  %s %s",
			ui.Gold.Render(fmt.Sprintf("+%d", s.Amount)), ui.Muted.Render(s.Label)))
	}

	return strings.Join(lines, "\n")
}

func sectionTitle(c engine.Cadence) string {
	switch c {
	case engine.CadenceDaily:
		return "Daily Ritual"
	case engine.CadenceWeekly:
		return "Weekly Ordeals"
	case engine.CadenceMonthly:
		return "Monthly Bosses"
	default:
		return string(c)
	}
}

// padRight pads by display width so styled lines keep their ANSI sequences
// intact.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
