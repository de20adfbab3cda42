package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
	"github.com/AssassinTK/readlog-ai-tracker/internal/theme"
)

// cell is one character of the composed frame. A nil style renders the rune
// bare, which keeps plain dumps byte-stable for tests.
type cell struct {
	r     rune
	style *lipgloss.Style
	color lipgloss.Color
}

// canvas is the off-screen buffer the frame is composed into: particles
// first, then shelf layers and chrome drawn over them.
type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{width: width, height: height}
	c.cells = make([]cell, width*height)
	c.Clear()
	return c
}

func (c *canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, color: color}
}

// WriteString overlays styled text, clipping at the right edge.
func (c *canvas) WriteString(x, y int, text string, style *lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range text {
		if x >= c.width {
			return
		}
		if x >= 0 {
			c.cells[y*c.width+x] = cell{r: r, style: style}
		}
		x++
	}
}

// particleRune picks a glyph by projected brightness.
func particleRune(opacity float64) rune {
	switch {
	case opacity < 0.3:
		return '·'
	case opacity < 0.7:
		return '•'
	default:
		return '✦'
	}
}

// DrawField plots every projected particle, with streak segments while the
// field is warping.
func (c *canvas) DrawField(field *shelf.Field) {
	if field == nil {
		return
	}
	warp := field.Warp()
	for _, p := range field.Project() {
		color := theme.Fade("#ffffff", p.Opacity)
		if warp && (p.TrailX != p.X || p.TrailY != p.Y) {
			c.drawStreak(p, color)
			continue
		}
		c.Set(p.X, p.Y, particleRune(p.Opacity), color)
	}
}

// drawStreak runs a Bresenham line from the trail anchor to the current
// position, with the bright head drawn last so it wins overlaps.
func (c *canvas) drawStreak(p shelf.Projected, color lipgloss.Color) {
	x0, y0 := p.TrailX, p.TrailY
	x1, y1 := p.X, p.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, streakRune(x0, y0, x1, y1), color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	c.Set(x1, y1, particleRune(p.Opacity), color)
}

func streakRune(x0, y0, x1, y1 int) rune {
	dx := x1 - x0
	dy := y1 - y0
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Render walks the buffer emitting styled rows.
func (c *canvas) Render() string {
	rows := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			switch {
			case cl.style != nil:
				b.WriteString(cl.style.Render(string(cl.r)))
			case cl.color != "":
				b.WriteString(lipgloss.NewStyle().Foreground(cl.color).Render(string(cl.r)))
			default:
				b.WriteRune(cl.r)
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Runes dumps the frame without styling, one string per row. Test helper
// and the substance behind golden comparisons.
func (c *canvas) Runes() []string {
	rows := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		for x := 0; x < c.width; x++ {
			b.WriteRune(c.cells[y*c.width+x].r)
		}
		rows[y] = b.String()
	}
	return rows
}
