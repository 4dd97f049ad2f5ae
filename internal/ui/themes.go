package ui

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Codes are the ANSI escape sequences used by line-oriented output. An empty
// code means "no styling".
type Codes struct {
	Primary string
	Muted   string
	Success string
	Warning string
	Error   string
	Bold    string
	Reset   string
}

// Colors are the lipgloss colors used by the terminal display.
type Colors struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	LCD     lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

// Palette pairs the escape codes of the headless output with the colors of
// the display so both surfaces switch together.
type Palette struct {
	Name   string
	Codes  Codes
	Colors Colors
}

var (
	// LCDPalette mimics a green backlit character display on an orange bezel.
	LCDPalette = Palette{
		Name: "lcd",
		Codes: Codes{
			Primary: "\033[38;5;208m",
			Muted:   "\033[38;5;245m",
			Success: "\033[38;5;82m",
			Warning: "\033[38;5;214m",
			Error:   "\033[38;5;196m",
			Bold:    "\033[1m",
			Reset:   "\033[0m",
		},
		Colors: Colors{
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#FF6600"),
			Accent:  lipgloss.Color("#FF8C00"),
			LCD:     lipgloss.Color("#9ECE6A"),
			Warning: lipgloss.Color("#FFB347"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
			Info:    lipgloss.Color("#4488FF"),
		},
	}

	// PlainPalette leaves all text in the terminal's default colors.
	PlainPalette = Palette{
		Name: "plain",
		Colors: Colors{
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			LCD:     lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
			Info:    lipgloss.NoColor{},
		},
	}
)

var active atomic.Pointer[Palette]

func init() {
	Use(LCDPalette)
}

// Active returns the palette in use.
func Active() Palette {
	return *active.Load()
}

// Use installs p and returns the palette it replaces.
func Use(p Palette) Palette {
	prev := active.Swap(&p)
	if prev == nil {
		return p
	}
	return *prev
}

// InitTheme picks the plain palette when noColor is set or NO_COLOR is
// present in the environment (https://no-color.org/), and the LCD palette
// otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		Use(PlainPalette)
		return
	}
	Use(LCDPalette)
}

// Colorize wraps s in code and the active reset sequence. An empty code
// returns s unchanged.
func Colorize(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + Active().Codes.Reset
}
