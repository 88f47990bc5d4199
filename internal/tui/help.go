package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"taskdeck/internal/theme"
)

const helpMarkdown = `# taskdeck

A local-first to-do list with a remote users panel.

## Tasks panel

| Key | Action |
| --- | ------ |
| n / a | new task (enter adds, esc cancels; empty text is ignored) |
| enter / space | toggle done |
| d / x | delete |
| f | cycle filter (all / active / completed) |
| j / k | move selection |

## Users panel

| Key | Action |
| --- | ------ |
| / or s | search by name or email |
| h / l | previous / next page |
| r | retry after a failed fetch |

## Everywhere

| Key | Action |
| --- | ------ |
| tab, 1, 2 | switch panel |
| t | toggle light/dark theme |
| q | quit |

Press any key to close this help.
`

var (
	mdRendererMu sync.Mutex
	// Cache renderers by style + wrap width. Creating a renderer with
	// WithAutoStyle can trigger terminal background queries that may block
	// on some terminals, so we pick the style from the app theme instead.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m appModel) helpView() string {
	style := "light"
	if m.themeCtx.Theme() == theme.Dark {
		style = "dark"
	}
	width := m.width
	if width < 40 {
		width = 40
	}
	if width > 80 {
		width = 80
	}
	return renderMarkdown(helpMarkdown, style, width)
}
