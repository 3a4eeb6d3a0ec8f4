package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "tonica/internal/modules/progress/dto"
	"tonica/internal/ui/theme"
)

// Port is the minimal interface this view needs from the progress use-case.
type Port interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
}

// SummaryLoadedMsg carries a freshly derived home summary.
type SummaryLoadedMsg struct {
	Summary progressdto.SummaryOutput
	Err     error
}

// Model is the self-contained Bubble Tea model for the Home tab.
type Model struct {
	port    Port
	summary progressdto.SummaryOutput
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload re-derives the summary. The app model calls this after any
// completion so the level bar and next-lesson hint stay current.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Summary(context.Background())
		return SummaryLoadedMsg{Summary: summary, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SummaryLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.summary = msg.Summary
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading…")
	}
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("Error: "+m.err.Error()))
	}

	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Olá, "+s.ProfileName) + "\n")
	sb.WriteString(theme.Muted.Render("objetivo: ") + s.Goal + "\n\n")

	barW := m.width / 2
	if barW > 48 {
		barW = 48
	}
	sb.WriteString(fmt.Sprintf("%s %d  %s\n",
		theme.Hot.Render("Nível"), s.Level,
		theme.Muted.Render(fmt.Sprintf("%d xp (faixa %d–%d)", s.XP, s.LevelMin, s.LevelMax))))
	sb.WriteString(theme.XPBar(s.LevelPercent, barW) + "\n\n")

	sb.WriteString(fmt.Sprintf("%s %d/%d (%.0f%%)\n",
		theme.Muted.Render("Lições concluídas:"), s.Lessons.Done, s.Lessons.Total, s.Lessons.Percent))

	if s.NextLesson != nil {
		sb.WriteString(theme.Muted.Render("Próxima lição:     ") + s.NextLesson.Title + "\n")
	} else {
		sb.WriteString(theme.Done.Render("Todas as lições concluídas!") + "\n")
	}

	if s.MissionOfDay != nil {
		marker := theme.Open.Render("○")
		if s.MissionOfDay.DoneToday {
			marker = theme.Done.Render("●")
		}
		sb.WriteString(fmt.Sprintf("%s %s %s %s\n",
			theme.Muted.Render("Missão do dia:    "), marker,
			s.MissionOfDay.Title,
			theme.Muted.Render(fmt.Sprintf("+%d xp", s.MissionOfDay.XP))))
	}

	pane := theme.Pane.Width(minInt(m.width-4, 72)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
