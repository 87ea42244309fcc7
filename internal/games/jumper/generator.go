package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// ChooseKind picks the variant of the next platform. The first normalFirst
// platforms ever created are always normal and consume no random draw;
// after that a platform is breakable with probability chance.
func ChooseKind(created, normalFirst int, chance float64, rng *rand.Rand) Kind {
	if created < normalFirst {
		return KindNormal
	}
	if rng.Float64() < chance {
		return KindBreakable
	}
	return KindNormal
}

// Generator creates platforms on demand. It owns the generation cursor (the
// Y of the next spawned platform) and the count of platforms created so far.
type Generator struct {
	rng     *rand.Rand
	cfg     config.JumperConfig
	nextY   float64
	created int
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.JumperConfig) *Generator {
	g := &Generator{rng: rng, cfg: cfg}
	g.Reset()
	return g
}

// Reset zeroes the creation counter and parks the cursor one ladder step
// above the start anchor.
func (g *Generator) Reset() {
	g.created = 0
	g.nextY = g.cfg.Start.AnchorY - g.cfg.Start.LadderSpacing
}

// Created returns how many platforms have been created since Reset.
func (g *Generator) Created() int {
	return g.created
}

// Cursor returns the Y at which the next spawned platform will be placed.
func (g *Generator) Cursor() float64 {
	return g.nextY
}

// SetCursor moves the generation cursor.
func (g *Generator) SetCursor(y float64) {
	g.nextY = y
}

// RandomX draws a left edge that keeps the whole platform inside the
// world with EdgeMargin on both sides.
func (g *Generator) RandomX() float64 {
	margin := g.cfg.Platforms.EdgeMargin
	span := int(g.cfg.World.Width - g.cfg.Platforms.Width - 2*margin)
	if span <= 0 {
		return margin
	}
	return margin + float64(g.rng.Intn(span+1))
}

// Shift moves the cursor down with the world so spawning continues right
// above the platforms already in play.
func (g *Generator) Shift(dy float64) {
	g.nextY += dy
}

// Place creates a normal platform at a fixed position and counts it.
func (g *Generator) Place(x, y float64) Platform {
	g.created++
	return g.platform(x, y, KindNormal)
}

// Spawn creates the next platform at a random X on the cursor, then moves
// the cursor up by one spacing.
func (g *Generator) Spawn() Platform {
	x := g.RandomX()
	kind := ChooseKind(g.created, g.cfg.Platforms.NormalFirst, g.cfg.Platforms.BreakableChance, g.rng)

	pl := g.platform(x, g.nextY, kind)
	g.created++
	g.nextY -= g.cfg.Platforms.Spacing
	return pl
}

func (g *Generator) platform(x, y float64, kind Kind) Platform {
	return Platform{
		X:    x,
		Y:    y,
		W:    g.cfg.Platforms.Width,
		H:    g.cfg.Platforms.Height,
		Kind: kind,
	}
}
