package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/directory"
	"taskdeck/internal/store"
	"taskdeck/internal/tasklist"
	"taskdeck/internal/theme"
)

type panel int

const (
	panelTasks panel = iota
	panelDirectory
)

type appModel struct {
	themeCtx *theme.Context
	styles   styles

	width  int
	height int

	active   panel
	showHelp bool

	tasks tasksPanel
	dir   directoryPanel
}

func newAppModel(list *tasklist.List, tc *theme.Context, client *directory.Client) appModel {
	return appModel{
		themeCtx: tc,
		styles:   newStyles(tc.Theme()),
		active:   panelTasks,
		tasks:    newTasksPanel(list),
		dir:      newDirectoryPanel(client),
	}
}

// Run starts the interactive TUI.
func Run(st *store.Store, tc *theme.Context, client *directory.Client) error {
	theme.ApplyColorProfile()
	m := newAppModel(tasklist.Load(st), tc, client)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init fires the directory fetch exactly once, on mount.
func (m appModel) Init() tea.Cmd {
	return m.dir.fetchCmd()
}

func (m appModel) typing() bool {
	switch m.active {
	case panelTasks:
		return m.tasks.adding
	case panelDirectory:
		return m.dir.searching
	}
	return false
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case usersLoadedMsg, usersFailedMsg:
		m.dir.handleMsg(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// While an input has focus, the active panel sees every key.
		if m.typing() {
			cmd := m.routeKey(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			if m.active == panelTasks {
				m.active = panelDirectory
			} else {
				m.active = panelTasks
			}
			return m, nil
		case "1":
			m.active = panelTasks
			return m, nil
		case "2":
			m.active = panelDirectory
			return m, nil
		case "t":
			m.styles = newStyles(m.themeCtx.Toggle())
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		}

		cmd := m.routeKey(msg)
		return m, cmd
	}

	return m, nil
}

func (m *appModel) routeKey(msg tea.KeyMsg) tea.Cmd {
	switch m.active {
	case panelTasks:
		cmd, _ := m.tasks.update(msg)
		return cmd
	case panelDirectory:
		cmd, _ := m.dir.update(msg)
		return cmd
	}
	return nil
}

func (m appModel) View() string {
	if m.showHelp {
		return m.helpView()
	}

	width := m.width
	if width < 40 {
		width = 40
	}
	height := m.height
	if height < 12 {
		height = 12
	}

	tabs := []string{
		m.tabLabel("1 Tasks", panelTasks),
		m.tabLabel("2 Users", panelDirectory),
	}
	mode := "light"
	if m.themeCtx.Theme() == theme.Dark {
		mode = "dark"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.header.Render("taskdeck"),
		"  ",
		strings.Join(tabs, " "),
		"  ",
		m.styles.muted.Render("theme: "+mode),
	)

	bodyHeight := height - 5
	var body string
	switch m.active {
	case panelTasks:
		body = m.tasks.render(m.styles, width, bodyHeight)
	case panelDirectory:
		body = m.dir.render(m.styles, width, bodyHeight)
	}

	var hints string
	switch m.active {
	case panelTasks:
		hints = m.tasks.keyHints()
	case panelDirectory:
		hints = m.dir.keyHints()
	}
	footer := m.styles.footer.Render(hints + "  tab: switch  t: theme  ?: help  q: quit")

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) tabLabel(label string, p panel) string {
	if m.active == p {
		return m.styles.tabActive.Render(label)
	}
	return m.styles.tab.Render(label)
}
