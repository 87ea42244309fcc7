package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Kind discriminates platform variants.
type Kind int

const (
	KindNormal    Kind = iota // Survives any number of landings
	KindBreakable             // Removed after the first landing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBreakable:
		return "breakable"
	default:
		return "unknown"
	}
}

// Platform is a surface the player can land on.
type Platform struct {
	X, Y float64 // Top-left corner
	W, H float64
	Kind Kind
}

// Bounds returns the platform's bounding box.
func (pl Platform) Bounds() core.RectF {
	return core.NewRectF(pl.X, pl.Y, pl.W, pl.H)
}

// OnLand applies the landing response to p: the player is grounded, stopped,
// and snapped so its bottom edge rests on the platform's top edge.
// Returns whether the platform survives the landing.
func (pl Platform) OnLand(p *Player) bool {
	p.Grounded = true
	p.VelY = 0
	p.Y = pl.Y - p.Height()

	switch pl.Kind {
	case KindBreakable:
		return false
	default:
		return true
	}
}
