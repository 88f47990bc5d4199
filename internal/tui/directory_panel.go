package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/directory"
)

type dirState int

const (
	dirLoading dirState = iota
	dirReady
	dirFailed
)

type usersLoadedMsg struct {
	users []directory.User
}

type usersFailedMsg struct {
	err error
}

// directoryPanel shows the remotely fetched user list with client-side
// search and pagination. The fetch fires once on app start; a failed fetch
// is only re-attempted on the explicit retry key.
type directoryPanel struct {
	client *directory.Client

	state  dirState
	users  []directory.User
	errMsg string

	view      directory.View
	search    textinput.Model
	searching bool
}

func newDirectoryPanel(client *directory.Client) directoryPanel {
	in := textinput.New()
	in.Placeholder = "name or email"
	in.CharLimit = 100
	return directoryPanel{
		client: client,
		state:  dirLoading,
		view:   directory.NewView(),
		search: in,
	}
}

func (p directoryPanel) fetchCmd() tea.Cmd {
	client := p.client
	return func() tea.Msg {
		users, err := client.FetchUsers(context.Background())
		if err != nil {
			return usersFailedMsg{err: err}
		}
		return usersLoadedMsg{users: users}
	}
}

func (p *directoryPanel) handleMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		p.state = dirReady
		p.users = msg.users
		p.errMsg = ""
		p.view.Clamp(p.users)
		return true
	case usersFailedMsg:
		p.state = dirFailed
		p.errMsg = msg.err.Error()
		return true
	}
	return false
}

// update handles a key while the directory panel is active. It reports the
// command to run (if any) and whether the key was consumed.
func (p *directoryPanel) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.searching {
		switch msg.String() {
		case "enter", "esc":
			p.searching = false
			p.search.Blur()
			return nil, true
		default:
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			// Changing the query resets to page 1.
			if p.search.Value() != p.view.Query {
				p.view.SetQuery(p.search.Value())
			}
			return cmd, true
		}
	}

	switch msg.String() {
	case "r":
		if p.state == dirFailed {
			// Retry restarts the panel: back to loading, then one new fetch.
			p.state = dirLoading
			p.errMsg = ""
			return p.fetchCmd(), true
		}
		return nil, true
	case "/", "s":
		if p.state == dirReady {
			p.searching = true
			return p.search.Focus(), true
		}
		return nil, true
	case "left", "h":
		p.view.Prev()
		return nil, true
	case "right", "l":
		p.view.Next(p.users)
		return nil, true
	}
	return nil, false
}

func (p directoryPanel) render(st styles, width, height int) string {
	switch p.state {
	case dirLoading:
		return st.muted.Render("Loading users…")
	case dirFailed:
		var b strings.Builder
		b.WriteString(st.errText.Render("Could not load users: " + p.errMsg))
		b.WriteString("\n\n")
		b.WriteString(st.muted.Render("r: retry"))
		return b.String()
	}

	var b strings.Builder
	if p.searching {
		b.WriteString(st.accent.Render("search: ") + p.search.View())
	} else if p.view.Query != "" {
		b.WriteString(st.muted.Render("search: " + p.view.Query))
	} else {
		b.WriteString(st.muted.Render("/: search"))
	}
	b.WriteString("\n\n")

	rows := p.view.Visible(p.users)
	if len(rows) == 0 {
		b.WriteString(st.muted.Render("No users found"))
		b.WriteString("\n")
	}
	for _, u := range rows {
		name := st.header.Render(truncate(u.Name, width/2))
		contact := st.muted.Render(truncate(fmt.Sprintf("%s  %s", u.Email, u.Phone), width-2))
		place := truncate(fmt.Sprintf("%s, %s", u.Address.Street, u.Address.City), width-2)
		b.WriteString(name + "\n" + contact + "\n" + place + "\n\n")
	}

	total := p.view.TotalPages(p.users)
	prev := "◀ prev"
	if !p.view.HasPrev() {
		prev = st.muted.Render(prev)
	}
	next := "next ▶"
	if !p.view.HasNext(p.users) {
		next = st.muted.Render(next)
	}
	page := p.view.Page
	if total == 0 {
		page = 0
	}
	b.WriteString(fmt.Sprintf("%s  page %d/%d  %s", prev, page, total, next))
	return b.String()
}

func (p directoryPanel) keyHints() string {
	switch {
	case p.searching:
		return "enter/esc: done"
	case p.state == dirFailed:
		return "r: retry"
	default:
		return "/: search  h/l: page"
	}
}
