package tui

import (
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"taskdeck/internal/theme"
)

// styles is the rendered form of the active theme's palette. Rebuilt on
// every theme toggle.
type styles struct {
	header    lipgloss.Style
	tab       lipgloss.Style
	tabActive lipgloss.Style
	footer    lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	errText   lipgloss.Style
	accent    lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := t.Palette()
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(p.SurfaceFg),
		tab:       lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(p.AccentFg).Background(p.Accent).Padding(0, 1),
		footer:    lipgloss.NewStyle().Foreground(p.ChromeFg).Faint(t == theme.Dark),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),
		selected:  lipgloss.NewStyle().Foreground(p.SelectedFg).Background(p.SelectedBg),
		done:      lipgloss.NewStyle().Foreground(p.Done).Strikethrough(true),
		errText:   lipgloss.NewStyle().Foreground(p.Error),
		accent:    lipgloss.NewStyle().Foreground(p.Accent),
	}
}

// truncate shortens s to width terminal cells, ANSI-aware.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, width-1) + "…"
}
