package ui

import (
	"strings"
	"testing"

	"github.com/AssassinTK/readlog-ai-tracker/internal/shelf"
	"github.com/AssassinTK/readlog-ai-tracker/internal/testutil"
)

func TestCanvasSetClipsOutOfBounds(t *testing.T) {
	c := newCanvas(4, 2)
	c.Set(-1, 0, 'x', "")
	c.Set(0, -1, 'x', "")
	c.Set(4, 0, 'x', "")
	c.Set(0, 2, 'x', "")
	for _, row := range c.Runes() {
		if strings.ContainsRune(row, 'x') {
			t.Fatalf("expected out-of-bounds writes to be dropped, got %q", row)
		}
	}
}

func TestCanvasWriteStringClipsRight(t *testing.T) {
	c := newCanvas(5, 1)
	c.WriteString(3, 0, "abcdef", nil)
	rows := c.Runes()
	if rows[0] != "   ab" {
		t.Fatalf("expected clipped write, got %q", rows[0])
	}
}

func TestCanvasStreakConnectsEndpoints(t *testing.T) {
	c := newCanvas(20, 10)
	p := shelf.Projected{X: 12, Y: 8, TrailX: 3, TrailY: 2, Opacity: 0.9}
	c.drawStreak(p, "")
	rows := c.Runes()
	if []rune(rows[2])[3] == ' ' {
		t.Fatal("expected a glyph at the trail anchor")
	}
	if []rune(rows[8])[12] == ' ' {
		t.Fatal("expected a glyph at the particle head")
	}
	drawn := 0
	for _, row := range rows {
		for _, r := range row {
			if r != ' ' {
				drawn++
			}
		}
	}
	// A line between the endpoints needs at least max(|dx|,|dy|)+1 cells.
	if drawn < 10 {
		t.Fatalf("expected a connected streak, got %d cells", drawn)
	}
}

func TestParticleRuneBrightens(t *testing.T) {
	if particleRune(0.1) != '·' || particleRune(0.5) != '•' || particleRune(0.9) != '✦' {
		t.Fatal("unexpected glyph ramp")
	}
}

func TestCanvasZeroSize(t *testing.T) {
	c := newCanvas(0, 0)
	c.Set(0, 0, 'x', "")
	c.WriteString(0, 0, "x", nil)
	if got := c.Render(); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestCanvasComposeGolden(t *testing.T) {
	c := newCanvas(16, 4)
	c.Set(2, 1, '·', "")
	c.Set(9, 2, '✦', "")
	c.Set(14, 0, '•', "")
	c.WriteString(1, 0, "Fiction (3)", nil)
	c.WriteString(1, 3, "The Dispossessed", nil)
	testutil.Golden(t, "canvas_compose.golden", strings.Join(c.Runes(), "\n"))
}
