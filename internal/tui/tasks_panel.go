package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/tasklist"
)

// tasksPanel is the to-do panel: an input line for new tasks plus a
// cursor-navigable, filterable task list.
type tasksPanel struct {
	list   *tasklist.List
	filter model.Filter
	cursor int

	input  textinput.Model
	adding bool
}

func newTasksPanel(list *tasklist.List) tasksPanel {
	in := textinput.New()
	in.Placeholder = "What needs doing?"
	in.CharLimit = 200
	return tasksPanel{
		list:   list,
		filter: model.FilterAll,
		input:  in,
	}
}

func (p tasksPanel) visible() []model.Task {
	return p.list.Filtered(p.filter)
}

func (p *tasksPanel) clampCursor() {
	n := len(p.visible())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// update handles a key while the tasks panel is active. It reports whether
// the key was consumed.
func (p *tasksPanel) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.adding {
		switch msg.String() {
		case "enter":
			// Empty input is a silent no-op; either way the buffer clears.
			p.list.Add(p.input.Value())
			p.input.Reset()
			p.adding = false
			p.clampCursor()
			return nil, true
		case "esc":
			p.input.Reset()
			p.adding = false
			return nil, true
		default:
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return cmd, true
		}
	}

	switch msg.String() {
	case "n", "a":
		p.adding = true
		return p.input.Focus(), true
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil, true
	case "down", "j":
		if p.cursor < len(p.visible())-1 {
			p.cursor++
		}
		return nil, true
	case "enter", " ":
		if ts := p.visible(); p.cursor < len(ts) {
			p.list.Toggle(ts[p.cursor].ID)
		}
		return nil, true
	case "d", "x":
		if ts := p.visible(); p.cursor < len(ts) {
			p.list.Delete(ts[p.cursor].ID)
			p.clampCursor()
		}
		return nil, true
	case "f":
		p.filter = p.filter.Next()
		p.cursor = 0
		return nil, true
	}
	return nil, false
}

func (p tasksPanel) render(st styles, width, height int) string {
	var b strings.Builder

	if p.adding {
		b.WriteString(st.accent.Render("add: ") + p.input.View())
	} else {
		b.WriteString(st.muted.Render("n: new task"))
	}
	b.WriteString("\n\n")

	tasks := p.visible()
	if len(tasks) == 0 {
		b.WriteString(st.muted.Render("No tasks found"))
		b.WriteString("\n")
	}

	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	for i, t := range tasks {
		if i >= rows {
			b.WriteString(st.muted.Render(fmt.Sprintf("… %d more", len(tasks)-rows)))
			b.WriteString("\n")
			break
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := truncate(fmt.Sprintf("%s %s", box, t.Text), width-2)
		switch {
		case i == p.cursor && !p.adding:
			line = st.selected.Render(line)
		case t.Completed:
			line = st.done.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	total, active, completed := p.list.Counts()
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("filter: %s  %d total / %d active / %d done",
		p.filter, total, active, completed)))
	return b.String()
}

func (p tasksPanel) keyHints() string {
	if p.adding {
		return "enter: add  esc: cancel"
	}
	return "n: new  enter/space: toggle  d: delete  f: filter  j/k: move"
}
