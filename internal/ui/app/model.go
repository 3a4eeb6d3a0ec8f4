package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "tonica/internal/modules/catalog/dto"
	packdto "tonica/internal/modules/pack/dto"
	progressdto "tonica/internal/modules/progress/dto"
	"tonica/internal/ui/components"
	"tonica/internal/ui/theme"
	homeview "tonica/internal/ui/views/home"
	libraryview "tonica/internal/ui/views/library"
	missionsview "tonica/internal/ui/views/missions"
	profileview "tonica/internal/ui/views/profile"
	tracksview "tonica/internal/ui/views/tracks"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	Load(ctx context.Context) error
	Reindex(ctx context.Context) error
	Snapshot(ctx context.Context) (catalogdto.SnapshotOutput, error)
	GetItem(ctx context.Context, id string) (catalogdto.ItemOutput, error)
}

type progressPort interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Lessons(ctx context.Context) ([]progressdto.LessonStatusOutput, error)
	Missions(ctx context.Context) ([]progressdto.MissionStatusOutput, error)
	CompleteLesson(ctx context.Context, lessonID string) (progressdto.CompleteOutput, error)
	CompleteMission(ctx context.Context, missionID string) (progressdto.CompleteOutput, error)
	GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error)
	SetChecklistItem(ctx context.Context, lessonID string, index int, checked bool) error
	Profile(ctx context.Context) (progressdto.ProfileOutput, error)
	SetProfileName(ctx context.Context, name string) error
	SetGoal(ctx context.Context, goal string) error
	Touch(ctx context.Context) error
}

type packPort interface {
	Pull(ctx context.Context, packName string) (packdto.PullOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabTracks
	tabMissions
	tabLibrary
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{
	"Início", "Trilhas", "Missões", "Biblioteca", "Perfil",
}

// ─── async messages ───────────────────────────────────────────────────────────

type touchedMsg struct{ err error }

type contentReloadedMsg struct{ err error }

type packPulledMsg struct {
	out packdto.PullOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Check   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete")),
		Check:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "toggle checklist")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Check},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	catalog  catalogPort
	progress progressPort
	pack     packPort

	homeView    homeview.Model
	tracksView  tracksview.Model
	missionView missionsview.Model
	libView     libraryview.Model
	profView    profileview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(catalog catalogPort, progress progressPort, pack packPort) Model {
	return Model{
		catalog:     catalog,
		progress:    progress,
		pack:        pack,
		homeView:    homeview.New(homeBridge{p: progress}),
		tracksView:  tracksview.New(tracksBridge{progress: progress, catalog: catalog}),
		missionView: missionsview.New(missionsBridge{p: progress}),
		libView:     libraryview.New(libraryBridge{p: catalog}),
		profView:    profileview.New(profileBridge{p: progress}),
		activeTab:   tabHome,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.tracksView.Init(),
		m.missionView.Init(),
		m.libView.Init(),
		m.profView.Init(),
		m.touchCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case touchedMsg:
		if msg.err != nil {
			m.status = "touch: " + msg.err.Error()
		}

	case contentReloadedMsg:
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()
		} else {
			m.status = "content reloaded"
			cmds = append(cmds, m.refreshAll()...)
		}

	case packPulledMsg:
		if msg.err != nil {
			m.status = "pack pull failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("pack %s: +%d items (%d ignored)",
				msg.out.Pack, msg.out.Import.Inserted, msg.out.Import.Ignored)
			cmds = append(cmds, m.refreshAll()...)
		}

	// Completion results bubble up here so every tab can refresh: xp and
	// done flags feed the Home bar, the track list and the profile.
	case tracksview.CompletedMsg:
		m.status = completionStatus("lição", msg.Out, msg.Err)
		cmds = append(cmds, m.homeView.Reload(), m.profView.Reload())
		var cmd tea.Cmd
		m.tracksView, cmd = m.tracksView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case missionsview.CompletedMsg:
		m.status = completionStatus("missão", msg.Out, msg.Err)
		cmds = append(cmds, m.homeView.Reload(), m.profView.Reload())
		var cmd tea.Cmd
		m.missionView, cmd = m.missionView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case profileview.SavedMsg:
		if msg.Err != nil {
			m.status = "profile: " + msg.Err.Error()
		} else {
			m.status = "profile saved"
			cmds = append(cmds, m.homeView.Reload())
		}
		var cmd tea.Cmd
		m.profView, cmd = m.profView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when a search filter or text input is active.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, tabCmd = m.homeView.Update(msg)
	case tabTracks:
		m.tracksView, tabCmd = m.tracksView.Update(msg)
	case tabMissions:
		m.missionView, tabCmd = m.missionView.Update(msg)
	case tabLibrary:
		m.libView, tabCmd = m.libView.Update(msg)
	case tabProfile:
		m.profView, tabCmd = m.profView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabTracks:
		return m.tracksView.View()
	case tabMissions:
		return m.missionView.View()
	case tabLibrary:
		return m.libView.View()
	case tabProfile:
		return m.profView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tonica  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "lesson:complete":
		m.activeTab = tabTracks
		if cmd := m.tracksView.Complete(); cmd != nil {
			return m, cmd
		}
		m.status = "no lesson selected"
		return m, nil

	case "lesson:check":
		if len(parts) < 2 {
			m.status = "usage: lesson:check <n>"
			return m, nil
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil || index < 1 {
			m.status = "invalid checklist index"
			return m, nil
		}
		m.activeTab = tabTracks
		if cmd := m.tracksView.ToggleCheck(index - 1); cmd != nil {
			return m, cmd
		}
		m.status = "no checklist entry at that index"
		return m, nil

	case "mission:complete":
		m.activeTab = tabMissions
		if cmd := m.missionView.Complete(); cmd != nil {
			return m, cmd
		}
		m.status = "no open mission selected"
		return m, nil

	case "profile:name":
		if len(parts) < 2 {
			m.status = "usage: profile:name <name>"
			return m, nil
		}
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, func() tea.Msg {
			return profileview.SavedMsg{Err: m.progress.SetProfileName(context.Background(), name)}
		}

	case "profile:goal":
		if len(parts) < 2 {
			m.status = "usage: profile:goal <Popular|Erudito|Misto>"
			return m, nil
		}
		goal := parts[1]
		return m, func() tea.Msg {
			return profileview.SavedMsg{Err: m.progress.SetGoal(context.Background(), goal)}
		}

	case "content:reload":
		return m, func() tea.Msg {
			return contentReloadedMsg{err: m.catalog.Load(context.Background())}
		}

	case "content:reindex":
		return m, func() tea.Msg {
			return contentReloadedMsg{err: m.catalog.Reindex(context.Background())}
		}

	case "pack:pull":
		if len(parts) < 2 {
			m.status = "usage: pack:pull <name>"
			return m, nil
		}
		if m.pack == nil {
			m.status = "pack adapter not configured"
			return m, nil
		}
		name := parts[1]
		return m, func() tea.Msg {
			out, err := m.pack.Pull(context.Background(), name)
			return packPulledMsg{out: out, err: err}
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is consuming raw keystrokes
// (a list filter or the profile name input), in which case global key
// bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabTracks:
		return m.tracksView.Filtering()
	case tabMissions:
		return m.missionView.Filtering()
	case tabLibrary:
		return m.libView.Filtering()
	case tabProfile:
		return m.profView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.tracksView, _ = m.tracksView.Update(sz)
	m.missionView, _ = m.missionView.Update(sz)
	m.libView, _ = m.libView.Update(sz)
	m.profView, _ = m.profView.Update(sz)
}

func (m Model) refreshAll() []tea.Cmd {
	return []tea.Cmd{
		m.homeView.Reload(),
		m.tracksView.Reload(),
		m.missionView.Reload(),
		m.libView.Reload(),
		m.profView.Reload(),
	}
}

func (m Model) touchCmd() tea.Cmd {
	return func() tea.Msg {
		return touchedMsg{err: m.progress.Touch(context.Background())}
	}
}

func completionStatus(kind string, out progressdto.CompleteOutput, err error) string {
	if err != nil {
		return kind + ": " + err.Error()
	}
	if out.AlreadyDone {
		return fmt.Sprintf("%s %s já estava concluída", kind, out.ID)
	}
	return fmt.Sprintf("%s %s concluída: +%d xp (total %d)", kind, out.ID, out.XPAwarded, out.TotalXP)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type homeBridge struct{ p progressPort }

func (b homeBridge) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return b.p.Summary(ctx)
}

type tracksBridge struct {
	progress progressPort
	catalog  catalogPort
}

func (b tracksBridge) Lessons(ctx context.Context) ([]progressdto.LessonStatusOutput, error) {
	return b.progress.Lessons(ctx)
}
func (b tracksBridge) GetItem(ctx context.Context, id string) (catalogdto.ItemOutput, error) {
	return b.catalog.GetItem(ctx, id)
}
func (b tracksBridge) GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error) {
	return b.progress.GetChecklist(ctx, lessonID)
}
func (b tracksBridge) CompleteLesson(ctx context.Context, lessonID string) (progressdto.CompleteOutput, error) {
	return b.progress.CompleteLesson(ctx, lessonID)
}
func (b tracksBridge) SetChecklistItem(ctx context.Context, input progressdto.ChecklistItemInput) error {
	return b.progress.SetChecklistItem(ctx, input.LessonID, input.Index, input.Checked)
}

type missionsBridge struct{ p progressPort }

func (b missionsBridge) Missions(ctx context.Context) ([]progressdto.MissionStatusOutput, error) {
	return b.p.Missions(ctx)
}
func (b missionsBridge) CompleteMission(ctx context.Context, missionID string) (progressdto.CompleteOutput, error) {
	return b.p.CompleteMission(ctx, missionID)
}

type libraryBridge struct{ p catalogPort }

func (b libraryBridge) Snapshot(ctx context.Context) (catalogdto.SnapshotOutput, error) {
	return b.p.Snapshot(ctx)
}

type profileBridge struct{ p progressPort }

func (b profileBridge) Profile(ctx context.Context) (progressdto.ProfileOutput, error) {
	return b.p.Profile(ctx)
}
func (b profileBridge) SetProfileName(ctx context.Context, name string) error {
	return b.p.SetProfileName(ctx, name)
}
func (b profileBridge) SetGoal(ctx context.Context, goal string) error {
	return b.p.SetGoal(ctx, goal)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
