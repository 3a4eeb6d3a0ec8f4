package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "tonica/internal/modules/progress/dto"
	"tonica/internal/ui/theme"
)

// Port is the minimal interface this view needs from the progress use-case.
type Port interface {
	Profile(ctx context.Context) (progressdto.ProfileOutput, error)
	SetProfileName(ctx context.Context, name string) error
	SetGoal(ctx context.Context, goal string) error
}

type ProfileLoadedMsg struct {
	Profile progressdto.ProfileOutput
	Err     error
}

// SavedMsg bubbles up so the app can refresh the Home tab greeting.
type SavedMsg struct{ Err error }

// goals in cycle order for the g key.
var goals = []string{"Popular", "Erudito", "Misto"}

type Model struct {
	port    Port
	profile progressdto.ProfileOutput
	input   textinput.Model
	editing bool
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "novo nome…"
	ti.CharLimit = 40
	return Model{port: port, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the profile.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.port.Profile(context.Background())
		return ProfileLoadedMsg{Profile: profile, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ProfileLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.profile = msg.Profile
		}

	case SavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m, m.Reload()

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.input.Blur()
				return m, nil
			case "enter":
				name := strings.TrimSpace(m.input.Value())
				m.editing = false
				m.input.Blur()
				return m, m.saveNameCmd(name)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "n":
			m.editing = true
			m.input.SetValue(m.profile.Name)
			return m, m.input.Focus()
		case "g":
			return m, m.cycleGoalCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.profile
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Perfil") + "\n\n")
	if m.editing {
		sb.WriteString(theme.Muted.Render("nome:     ") + m.input.View() + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("nome:     ") + p.Name + "\n")
	}
	sb.WriteString(theme.Muted.Render("objetivo: ") + p.Goal + "\n")
	sb.WriteString(theme.Muted.Render("nível:    ") + fmt.Sprintf("%d", p.Level) + "\n")
	sb.WriteString(theme.Muted.Render("xp:       ") + fmt.Sprintf("%d", p.XP) + "\n")
	if p.LastOpen != "" {
		sb.WriteString(theme.Muted.Render("visto em: ") + p.LastOpen + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Hot.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("n: editar nome  g: alternar objetivo"))

	pane := theme.Pane.Width(minInt(m.width-4, 60)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// Editing reports whether the name input is focused, in which case global
// key bindings must yield to allow free typing.
func (m Model) Editing() bool { return m.editing }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) saveNameCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Err: m.port.SetProfileName(context.Background(), name)}
	}
}

func (m Model) cycleGoalCmd() tea.Cmd {
	next := goals[0]
	for i, goal := range goals {
		if goal == m.profile.Goal {
			next = goals[(i+1)%len(goals)]
			break
		}
	}
	return func() tea.Msg {
		return SavedMsg{Err: m.port.SetGoal(context.Background(), next)}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
