package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Player is the jumping character. X, Y is the top-left of its bounding box.
type Player struct {
	X, Y     float64
	VelY     float64 // Negative = up
	Grounded bool    // Supported by a platform this tick
	cfg      config.JumperPlayer
}

// NewPlayer creates an airborne player at rest.
func NewPlayer(x, y float64, cfg config.JumperPlayer) *Player {
	return &Player{X: x, Y: y, cfg: cfg}
}

// Width returns the bounding box width.
func (p *Player) Width() float64 { return p.cfg.Width }

// Height returns the bounding box height.
func (p *Player) Height() float64 { return p.cfg.Height }

// Update integrates gravity for one tick. A grounded player does not move vertically.
func (p *Player) Update() {
	if p.Grounded {
		return
	}
	p.VelY += p.cfg.Gravity
	p.Y += p.VelY
}

// Jump launches the player upward. It only has an effect while grounded.
func (p *Player) Jump() {
	if !p.Grounded {
		return
	}
	p.VelY = -p.cfg.JumpImpulse
	p.Grounded = false
}

// MoveLeft steps the player left by one move increment.
func (p *Player) MoveLeft() {
	p.X -= p.cfg.MoveSpeed
}

// MoveRight steps the player right by one move increment.
func (p *Player) MoveRight() {
	p.X += p.cfg.MoveSpeed
}

// Bounds returns the player's bounding box at its current position.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}
