package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme represents a color scheme for command output
type Theme struct {
	Name string

	// Base colors
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Chip text on light and dark label backgrounds
	ChipDark  lipgloss.Color
	ChipLight lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	ChipDark:  lipgloss.Color("#1a1b26"),
	ChipLight: lipgloss.Color("#ffffff"),
}

// Styles holds the pre-computed styles for one output stream
type Styles struct {
	renderer *lipgloss.Renderer
	theme    Theme

	ID       lipgloss.Style
	Title    lipgloss.Style
	Project  lipgloss.Style
	Done     lipgloss.Style
	Favorite lipgloss.Style
	Overdue  lipgloss.Style
	Relation lipgloss.Style
	Muted    lipgloss.Style
	Author   lipgloss.Style
	Error    lipgloss.Style
	Plain    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Colors are dropped when
// noColor is set, when NO_COLOR is exported, or when w is not a terminal.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles creates styles for the given renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	t := TokyoNight

	return &Styles{
		renderer: r,
		theme:    t,

		ID:       r.NewStyle().Foreground(t.Warning),
		Title:    r.NewStyle().Foreground(t.Primary),
		Project:  r.NewStyle().Foreground(t.Error),
		Done:     r.NewStyle().Foreground(t.Success),
		Favorite: r.NewStyle().Foreground(t.Warning),
		Overdue:  r.NewStyle().Foreground(t.Error).Bold(true),
		Relation: r.NewStyle().Foreground(t.Secondary),
		Muted:    r.NewStyle().Foreground(t.ForegroundDim),
		Author:   r.NewStyle().Foreground(t.Accent),
		Error:    r.NewStyle().Foreground(t.Error).Bold(true),
		Plain:    r.NewStyle(),
	}
}

// Colored renders text in the color given as hex, or unstyled when the color
// is empty or malformed
func (s *Styles) Colored(hex, text string) string {
	return s.renderer.NewStyle().Foreground(ColorOrDefault(hex)).Render(text)
}

// Chip renders text on a background of the given hex color, picking a text
// color that stays readable on it
func (s *Styles) Chip(hex, text string) string {
	style := s.renderer.NewStyle().Padding(0, 1)
	c, err := ParseHex(hex)
	if err != nil {
		return style.Reverse(true).Render(text)
	}
	fg := s.theme.ChipLight
	if IsLight(c) {
		fg = s.theme.ChipDark
	}
	return style.Background(lipgloss.Color(c.Hex())).Foreground(fg).Render(text)
}
