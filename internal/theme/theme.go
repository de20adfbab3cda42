package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	ShelfTitle    *lipgloss.Style
	ShelfDim      *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	PanelTitle    *lipgloss.Style
	PanelBody     *lipgloss.Style
	PanelBorder   *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	QuizQuestion  *lipgloss.Style
	QuizChoice    *lipgloss.Style
	QuizCorrect   *lipgloss.Style
	QuizIncorrect *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ShelfTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ShelfDim: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	PanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	QuizQuestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	QuizChoice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	QuizCorrect: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	QuizIncorrect: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Fade blends hex toward black by 1-opacity and returns a terminal colour.
// Opacity 1 yields the colour unchanged; opacity 0 yields black. Invalid
// colours fall back to mid grey so a bad cover hint never breaks rendering.
func Fade(hex string, opacity float64) lipgloss.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("245")
	}
	black := colorful.Color{}
	return lipgloss.Color(black.BlendRgb(base, opacity).Hex())
}

// Depth dims a colour by distance from the active shelf: distance 0 keeps
// the colour, each further step fades it by a third.
func Depth(hex string, distance int) lipgloss.Color {
	if distance <= 0 {
		return Fade(hex, 1)
	}
	opacity := 1.0
	for i := 0; i < distance; i++ {
		opacity *= 2.0 / 3.0
	}
	return Fade(hex, opacity)
}
