package shelf

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorForIsDeterministic(t *testing.T) {
	first := ColorFor("Dune")
	for i := 0; i < 20; i++ {
		if got := ColorFor("Dune"); got != first {
			t.Fatalf("expected stable colour %s, got %s", first, got)
		}
	}
}

func TestColorForFormatsSixHexDigits(t *testing.T) {
	titles := []string{"", "a", "Dune", "The Left Hand of Darkness", "百年孤独", "Niño"}
	for _, title := range titles {
		got := ColorFor(title)
		if !hexColor.MatchString(got) {
			t.Fatalf("title %q: %q is not a padded hex colour", title, got)
		}
	}
}

func TestColorForEmptyTitle(t *testing.T) {
	if got := ColorFor(""); got != "#000000" {
		t.Fatalf("expected #000000 for empty title, got %s", got)
	}
}
