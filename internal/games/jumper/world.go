package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
)

// World holds the live platforms and scrolls them past a player pinned
// below the scroll trigger line.
type World struct {
	cfg       config.JumperConfig
	platforms []Platform
	gen       *Generator
}

// NewWorld creates an empty world using gen for procedural platforms.
func NewWorld(cfg config.JumperConfig, gen *Generator) *World {
	return &World{
		cfg:       cfg,
		platforms: make([]Platform, 0, 32),
		gen:       gen,
	}
}

// Reset removes every platform and resets the generator.
func (w *World) Reset() {
	w.platforms = w.platforms[:0]
	w.gen.Reset()
}

// Add puts a platform into play.
func (w *World) Add(pl Platform) {
	w.platforms = append(w.platforms, pl)
}

// Platforms returns the live platforms. Callers must not modify the slice.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Generator returns the world's platform generator.
func (w *World) Generator() *Generator {
	return w.gen
}

// Wrap teleports a player whose box has fully left one side of the screen
// to the opposite side.
func (w *World) Wrap(p *Player) {
	switch {
	case p.X < -p.Width():
		p.X = w.cfg.World.Width
	case p.X > w.cfg.World.Width:
		p.X = -p.Width()
	}
}

// Land resolves landings of p on the live platforms, dropping any platform
// that does not survive. Returns the number of landings.
func (w *World) Land(p *Player) int {
	var landed int
	w.platforms, landed = ResolveLandings(p, w.platforms, w.cfg.Platforms.LandingTolerance)
	return landed
}

// Scroll pins a player who rose above the trigger line back onto it and
// moves every platform, and the generation cursor, down by the same
// distance. Returns that distance, or 0 when the player is at or below
// the line.
func (w *World) Scroll(p *Player) float64 {
	trigger := w.cfg.World.ScrollTriggerY
	if p.Y >= trigger {
		return 0
	}

	dy := trigger - p.Y
	p.Y = trigger
	for i := range w.platforms {
		w.platforms[i].Y += dy
	}
	w.gen.Shift(dy)
	return dy
}

// Prune discards platforms that scrolled below the screen plus the prune
// margin. Returns the number removed.
func (w *World) Prune() int {
	limit := w.cfg.World.Height + w.cfg.World.PruneMargin

	kept := w.platforms[:0]
	for _, pl := range w.platforms {
		if pl.Y <= limit {
			kept = append(kept, pl)
		}
	}

	removed := len(w.platforms) - len(kept)
	w.platforms = kept
	return removed
}

// TopFilled reports whether some platform lies inside the top band.
func (w *World) TopFilled() bool {
	for _, pl := range w.platforms {
		if pl.Y < w.cfg.World.TopBand {
			return true
		}
	}
	return false
}

// Fill spawns platforms until the top band is populated. The cursor moves
// up by a positive spacing on every spawn, so the loop always ends.
// Returns the number spawned.
func (w *World) Fill() int {
	spawned := 0
	for !w.TopFilled() {
		w.Add(w.gen.Spawn())
		spawned++
	}
	return spawned
}
