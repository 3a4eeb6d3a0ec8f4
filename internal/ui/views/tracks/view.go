package tracks

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tonica/internal/modules/catalog/dto"
	progressdto "tonica/internal/modules/progress/dto"
	"tonica/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs: the study plan with done
// flags, the lesson detail for checklist labels, and the two mutations.
type Port interface {
	Lessons(ctx context.Context) ([]progressdto.LessonStatusOutput, error)
	GetItem(ctx context.Context, id string) (catalogdto.ItemOutput, error)
	GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error)
	CompleteLesson(ctx context.Context, lessonID string) (progressdto.CompleteOutput, error)
	SetChecklistItem(ctx context.Context, input progressdto.ChecklistItemInput) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LessonsLoadedMsg struct {
	Lessons []progressdto.LessonStatusOutput
	Err     error
}

type DetailLoadedMsg struct {
	Item    catalogdto.ItemOutput
	Checked map[int]bool
	Err     error
}

// CompletedMsg bubbles up through the app model so the Home tab can refresh.
type CompletedMsg struct {
	Out progressdto.CompleteOutput
	Err error
}

type checkToggledMsg struct {
	lessonID string
	err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type lessonItem struct {
	lesson progressdto.LessonStatusOutput
}

func (i lessonItem) Title() string {
	if i.lesson.Done {
		return "✓ " + i.lesson.Title
	}
	return "· " + i.lesson.Title
}

func (i lessonItem) Description() string {
	parts := []string{fmt.Sprintf("+%d xp", i.lesson.XP)}
	if i.lesson.EstimatedMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", i.lesson.EstimatedMinutes))
	}
	if i.lesson.TrackTitle != "" {
		parts = append(parts, i.lesson.TrackTitle)
	}
	return strings.Join(parts, "  ")
}

func (i lessonItem) FilterValue() string { return i.lesson.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	list    list.Model
	detail  catalogdto.ItemOutput
	checked map[int]bool
	preview viewport.Model
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
	l.Title = "Trilhas"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, preview: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches the lesson plan, keeping the current selection if possible.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		lessons, err := m.port.Lessons(context.Background())
		return LessonsLoadedMsg{Lessons: lessons, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LessonsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Trilhas — " + msg.Err.Error()
			return m, nil
		}
		idx := m.list.Index()
		items := make([]list.Item, len(msg.Lessons))
		for i, lesson := range msg.Lessons {
			items[i] = lessonItem{lesson: lesson}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if idx >= 0 && idx < len(items) {
			m.list.Select(idx)
		}
		if len(msg.Lessons) > 0 {
			sel := m.list.Index()
			if sel < 0 || sel >= len(msg.Lessons) {
				sel = 0
			}
			cmds = append(cmds, m.loadDetailCmd(msg.Lessons[sel].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Item
			m.checked = msg.Checked
			m.preview.SetContent(m.renderDetail())
		}

	case CompletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Reload())
		}

	case checkToggledMsg:
		if msg.err == nil {
			cmds = append(cmds, m.loadDetailCmd(msg.lessonID))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.loading && !m.Filtering() {
			if cmd, handled := m.handleKey(msg.String()); handled {
				return m, cmd
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(lessonItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.lesson.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(k string) (tea.Cmd, bool) {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return nil, false
	}
	switch k {
	case "enter":
		return m.completeCmd(item.lesson.ID), true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(k[0]-'0') - 1
		if m.detail.ID != item.lesson.ID || index >= len(m.detail.Checklist) {
			return nil, false
		}
		return m.toggleCheckCmd(item.lesson.ID, index, !m.checked[index]), true
	}
	return nil, false
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading lessons…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedLessonID returns the current selection's lesson ID, if any.
func (m Model) SelectedLessonID() (string, bool) {
	if item, ok := m.list.SelectedItem().(lessonItem); ok {
		return item.lesson.ID, true
	}
	return "", false
}

// ToggleCheck flips a checklist entry of the selected lesson (0-based index).
func (m Model) ToggleCheck(index int) tea.Cmd {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok || index < 0 || index >= len(m.detail.Checklist) {
		return nil
	}
	return m.toggleCheckCmd(item.lesson.ID, index, !m.checked[index])
}

// Complete marks the selected lesson done.
func (m Model) Complete() tea.Cmd {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return nil
	}
	return m.completeCmd(item.lesson.ID)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a lesson to see details")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n")
	if d.Subtitle != "" {
		sb.WriteString(theme.Muted.Render(d.Subtitle) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("id:    ") + d.ID + "\n")
	sb.WriteString(theme.Muted.Render("xp:    ") + fmt.Sprintf("+%d", d.XP) + "\n")
	if d.EstimatedMinutes > 0 {
		sb.WriteString(theme.Muted.Render("tempo: ") + fmt.Sprintf("%d min", d.EstimatedMinutes) + "\n")
	}
	if d.Level != "" {
		sb.WriteString(theme.Muted.Render("nível: ") + d.Level + "\n")
	}
	if len(d.Checklist) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Checklist") + "\n")
		for i, label := range d.Checklist {
			mark := theme.Open.Render("[ ]")
			if m.checked[i] {
				mark = theme.Done.Render("[x]")
			}
			sb.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, label))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: concluir lição  1-9: marcar item"))
	return sb.String()
}

func (m Model) loadDetailCmd(lessonID string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.port.GetItem(context.Background(), lessonID)
		if err != nil {
			return DetailLoadedMsg{Err: err}
		}
		checked, err := m.port.GetChecklist(context.Background(), lessonID)
		return DetailLoadedMsg{Item: item, Checked: checked, Err: err}
	}
}

func (m Model) completeCmd(lessonID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.CompleteLesson(context.Background(), lessonID)
		return CompletedMsg{Out: out, Err: err}
	}
}

func (m Model) toggleCheckCmd(lessonID string, index int, checked bool) tea.Cmd {
	return func() tea.Msg {
		err := m.port.SetChecklistItem(context.Background(), progressdto.ChecklistItemInput{
			LessonID: lessonID,
			Index:    index,
			Checked:  checked,
		})
		return checkToggledMsg{lessonID: lessonID, err: err}
	}
}
