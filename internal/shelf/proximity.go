package shelf

// Default proximity thresholds, in screen columns from the left edge.
const (
	DefaultProximityNear = 4
	DefaultProximityFar  = 12
)

// Proximity drives the detail panel's reveal affordance from pointer x
// positions. The band between the two thresholds is a hysteresis zone:
// positions inside it keep whatever visibility was last decided, which
// stops the panel flickering when the pointer hovers near a boundary.
type Proximity struct {
	near    int
	far     int
	visible bool
	pinned  bool
}

// NewProximity builds a trigger with the given thresholds. Thresholds are
// swapped if supplied in the wrong order; non-positive values fall back to
// the defaults.
func NewProximity(near, far int) *Proximity {
	if near <= 0 {
		near = DefaultProximityNear
	}
	if far <= 0 {
		far = DefaultProximityFar
	}
	if far < near {
		near, far = far, near
	}
	return &Proximity{near: near, far: far}
}

// Observe folds one pointer x coordinate into the visibility state and
// returns the result. While the panel is pinned open the pointer has no
// effect and the pinned state is returned unchanged.
func (p *Proximity) Observe(x int) bool {
	if p.pinned {
		return true
	}
	switch {
	case x < p.near:
		p.visible = true
	case x > p.far:
		p.visible = false
	}
	return p.visible
}

// Pin forces the panel open and disables pointer control until unpinned.
func (p *Proximity) Pin(pinned bool) { p.pinned = pinned }

// Pinned reports whether the panel is pinned open.
func (p *Proximity) Pinned() bool { return p.pinned }

// Visible returns the last decided visibility.
func (p *Proximity) Visible() bool {
	if p.pinned {
		return true
	}
	return p.visible
}
