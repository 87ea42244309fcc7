package jumper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

func newTestWorld(seed int64) *World {
	cfg := config.DefaultJumperConfig()
	return NewWorld(cfg, NewGenerator(rand.New(rand.NewSource(seed)), cfg))
}

func TestWorldWrap(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"one unit past right edge", 401, -40},
		{"on right edge", 400, 400},
		{"one unit past left edge", -41, 400},
		{"on left edge", -40, -40},
		{"on screen", 200, 200},
	}

	w := newTestWorld(1)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer(tc.x, 300)
			w.Wrap(p)
			if p.X != tc.expected {
				t.Errorf("X = %v, expected %v", p.X, tc.expected)
			}
			if p.Y != 300 {
				t.Errorf("Wrap changed Y to %v", p.Y)
			}
		})
	}
}

func TestWorldScroll(t *testing.T) {
	w := newTestWorld(1)
	w.Add(testPlatform(100, 300, KindNormal))
	w.Add(testPlatform(200, 100, KindBreakable))
	cursor := w.Generator().Cursor()

	t.Run("above trigger", func(t *testing.T) {
		p := testPlayer(100, 240)

		dy := w.Scroll(p)

		if dy != 10 {
			t.Fatalf("Scroll() = %v, expected 10", dy)
		}
		if p.Y != 250 {
			t.Errorf("player Y = %v, expected 250", p.Y)
		}
		if got := w.Platforms(); got[0].Y != 310 || got[1].Y != 110 {
			t.Errorf("platform Ys = %v, %v, expected 310, 110", got[0].Y, got[1].Y)
		}
		if w.Generator().Cursor() != cursor+10 {
			t.Errorf("cursor = %v, expected %v", w.Generator().Cursor(), cursor+10)
		}
	})

	t.Run("at trigger", func(t *testing.T) {
		p := testPlayer(100, 250)

		if dy := w.Scroll(p); dy != 0 {
			t.Errorf("Scroll() = %v, expected 0", dy)
		}
		if got := w.Platforms(); got[0].Y != 310 || got[1].Y != 110 {
			t.Error("platforms moved without a scroll")
		}
	})
}

func TestWorldPrune(t *testing.T) {
	w := newTestWorld(1)
	w.Add(testPlatform(100, 650, KindNormal))
	w.Add(testPlatform(100, 650.5, KindNormal))
	w.Add(testPlatform(100, 20, KindBreakable))

	if removed := w.Prune(); removed != 1 {
		t.Errorf("Prune() = %d, expected 1", removed)
	}
	for _, pl := range w.Platforms() {
		if pl.Y > 650 {
			t.Errorf("platform at Y=%v should have been pruned", pl.Y)
		}
	}
	if len(w.Platforms()) != 2 {
		t.Errorf("len = %d, expected 2", len(w.Platforms()))
	}
}

func TestWorldFillTerminates(t *testing.T) {
	tests := []struct {
		name   string
		cursor float64
	}{
		{"cursor already in band", -40},
		{"cursor at band edge", 80},
		{"cursor deep in screen", 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(5)
			w.Generator().SetCursor(tc.cursor)

			spawned := w.Fill()

			bound := 1
			if tc.cursor >= 80 {
				bound = int(math.Floor((tc.cursor-80)/40)) + 2
			}
			if spawned < 1 || spawned > bound {
				t.Errorf("Fill() spawned %d, expected between 1 and %d", spawned, bound)
			}
			if !w.TopFilled() {
				t.Error("top band should be filled")
			}
		})
	}
}

func TestWorldFillNoopWhenFilled(t *testing.T) {
	w := newTestWorld(5)
	w.Add(testPlatform(100, 79, KindNormal))

	if spawned := w.Fill(); spawned != 0 {
		t.Errorf("Fill() = %d, expected 0", spawned)
	}
}

func TestWorldLandRemovesBreakable(t *testing.T) {
	w := newTestWorld(1)
	pl := testPlatform(100, 300, KindBreakable)
	w.Add(pl)
	p := fallingOnto(pl, 120, 1, 4)

	if landed := w.Land(p); landed != 1 {
		t.Fatalf("Land() = %d, expected 1", landed)
	}
	if len(w.Platforms()) != 0 {
		t.Error("breakable platform should be gone")
	}
}
