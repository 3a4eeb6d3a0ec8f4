package missions

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "tonica/internal/modules/progress/dto"
	"tonica/internal/ui/theme"
)

// Port is the minimal interface this view needs from the progress use-case.
type Port interface {
	Missions(ctx context.Context) ([]progressdto.MissionStatusOutput, error)
	CompleteMission(ctx context.Context, missionID string) (progressdto.CompleteOutput, error)
}

type MissionsLoadedMsg struct {
	Missions []progressdto.MissionStatusOutput
	Err      error
}

// CompletedMsg bubbles up through the app model so the Home tab can refresh.
type CompletedMsg struct {
	Out progressdto.CompleteOutput
	Err error
}

type missionItem struct {
	mission progressdto.MissionStatusOutput
}

func (i missionItem) Title() string {
	if i.mission.Done {
		return "✓ " + i.mission.Title
	}
	return "· " + i.mission.Title
}

func (i missionItem) Description() string {
	repeat := i.mission.Repeat
	if repeat == "" {
		repeat = "daily"
	}
	return fmt.Sprintf("+%d xp  %s", i.mission.XP, repeat)
}

func (i missionItem) FilterValue() string { return i.mission.Title }

type Model struct {
	port    Port
	list    list.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Missões"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches the mission list with current done flags.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		missions, err := m.port.Missions(context.Background())
		return MissionsLoadedMsg{Missions: missions, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case MissionsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Missões — " + msg.Err.Error()
			return m, nil
		}
		idx := m.list.Index()
		items := make([]list.Item, len(msg.Missions))
		for i, mission := range msg.Missions {
			items[i] = missionItem{mission: mission}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if idx >= 0 && idx < len(items) {
			m.list.Select(idx)
		}

	case CompletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Reload())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.loading && !m.Filtering() && msg.String() == "enter" {
			if cmd := m.Complete(); cmd != nil {
				return m, cmd
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading missions…")
	}
	return m.list.View()
}

// Complete marks the selected mission done for today.
func (m Model) Complete() tea.Cmd {
	item, ok := m.list.SelectedItem().(missionItem)
	if !ok || item.mission.Done {
		return nil
	}
	return func() tea.Msg {
		out, err := m.port.CompleteMission(context.Background(), item.mission.ID)
		return CompletedMsg{Out: out, Err: err}
	}
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
