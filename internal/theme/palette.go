package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is the semantic color set the TUI renders with.
//
// Unlike terminal-background adaptive palettes, the variant here follows the
// user's explicit theme choice, so each theme carries concrete colors.
type Palette struct {
	SurfaceFg lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	ChromeFg  lipgloss.TerminalColor

	SelectedBg lipgloss.TerminalColor
	SelectedFg lipgloss.TerminalColor

	Accent   lipgloss.TerminalColor
	AccentFg lipgloss.TerminalColor

	Done  lipgloss.TerminalColor
	Error lipgloss.TerminalColor
}

// Palette returns the colors for the theme.
func (t Theme) Palette() Palette {
	if t == Dark {
		return Palette{
			SurfaceFg:  lipgloss.Color("252"),
			Muted:      lipgloss.Color("243"),
			ChromeFg:   lipgloss.Color("245"),
			SelectedBg: lipgloss.Color("#262626"),
			SelectedFg: lipgloss.Color("255"),
			Accent:     lipgloss.Color("62"),
			AccentFg:   lipgloss.Color("235"),
			Done:       lipgloss.Color("71"),
			Error:      lipgloss.Color("160"),
		}
	}
	return Palette{
		SurfaceFg:  lipgloss.Color("235"),
		Muted:      lipgloss.Color("240"),
		ChromeFg:   lipgloss.Color("240"),
		SelectedBg: lipgloss.Color("#e9e9e9"),
		SelectedFg: lipgloss.Color("235"),
		Accent:     lipgloss.Color("27"),
		AccentFg:   lipgloss.Color("255"),
		Done:       lipgloss.Color("28"),
		Error:      lipgloss.Color("196"),
	}
}

// ApplyColorProfile sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful
// for non-interactive CLI output but can accidentally disable colors in a
// TUI. Here we only honor NO_COLOR and otherwise follow the terminal's
// capabilities, trusting TERM/COLORTERM when they report stronger support
// than the detector does.
func ApplyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}
