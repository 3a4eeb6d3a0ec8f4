package library

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tonica/internal/modules/catalog/dto"
	"tonica/internal/ui/theme"
)

// Port is the minimal interface this view needs from the catalog use-case.
type Port interface {
	Snapshot(ctx context.Context) (catalogdto.SnapshotOutput, error)
}

type ArticlesLoadedMsg struct {
	Articles []catalogdto.ItemOutput
	Err      error
}

type articleItem struct {
	article catalogdto.ItemOutput
}

func (i articleItem) Title() string { return i.article.Title }

func (i articleItem) Description() string {
	if i.article.ReadingMinutes > 0 {
		return fmt.Sprintf("%s  %d min de leitura", i.article.Category, i.article.ReadingMinutes)
	}
	return i.article.Category
}

func (i articleItem) FilterValue() string { return i.article.Title }

// Model is the self-contained Bubble Tea model for the Library tab. Article
// bodies are markdown and rendered through glamour into the right pane.
type Model struct {
	port     Port
	list     list.Model
	preview  viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	articles []catalogdto.ItemOutput
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Biblioteca"
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

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{port: port, list: l, preview: vp, spinner: sp, renderer: r, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches the article list from the catalog snapshot.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.port.Snapshot(context.Background())
		return ArticlesLoadedMsg{Articles: snapshot.Library, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.renderSelection()

	case ArticlesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Biblioteca — " + msg.Err.Error()
			return m, nil
		}
		m.articles = msg.Articles
		items := make([]list.Item, len(msg.Articles))
		for i, article := range msg.Articles {
			items[i] = articleItem{article: article}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.renderSelection()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.renderSelection()
			m.preview.GotoTop()
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading library…")
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
	// Rebuild the glamour renderer so it word-wraps at the new pane width.
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.preview.Width),
	); err == nil {
		m.renderer = r
	}
}

func (m *Model) renderSelection() {
	item, ok := m.list.SelectedItem().(articleItem)
	if !ok {
		m.preview.SetContent(theme.Muted.Render("Select an article to read"))
		return
	}
	body := item.article.Body
	if body == "" {
		m.preview.SetContent(theme.Muted.Render("(no content)"))
		return
	}
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(body); err == nil {
			m.preview.SetContent(rendered)
			return
		}
	}
	m.preview.SetContent(body)
}
