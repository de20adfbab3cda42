package shelf

import "fmt"

// ColorFor returns a deterministic fallback cover colour for a title.
// Identical titles always map to the same colour; distinct titles may
// collide. The title's character codes are folded into a signed 32-bit
// accumulator with a multiply-and-add hash, masked to 24 bits, and
// formatted as a zero-padded hex colour.
func ColorFor(title string) string {
	var hash int32
	for _, r := range title {
		hash = int32(r) + (hash << 5) - hash
	}
	return fmt.Sprintf("#%06x", uint32(hash)&0xffffff)
}
