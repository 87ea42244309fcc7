package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultJumperConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: core.DefaultConfig().TickRate, Seed: seed})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// scriptedInput returns a repeatable input pattern for a given tick.
func scriptedInput(tick int) core.InputFrame {
	switch {
	case tick%45 == 0:
		return input(core.ActionJump)
	case tick%11 < 3:
		return input(core.ActionRight)
	case tick%17 < 2:
		return input(core.ActionLeft)
	default:
		return core.NewInputFrame()
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 12345
	const ticks = 1500

	g1 := newTestGame(seed)
	g2 := newTestGame(seed)

	for i := 0; i < ticks; i++ {
		r1 := g1.Step(scriptedInput(i))
		r2 := g2.Step(scriptedInput(i))

		if r1 != r2 {
			t.Fatalf("tick %d: step results diverged: %+v vs %+v", i, r1, r2)
		}
		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots diverged:\n  g1: %+v\n  g2: %+v", i, s1, s2)
		}
		if !r1.Ticking {
			break
		}
	}
}

func TestDifferentSeedsDifferentLayouts(t *testing.T) {
	p1 := newTestGame(1).Session().Platforms()
	p2 := newTestGame(2).Session().Platforms()

	same := true
	for i := range p1 {
		if p1[i].X != p2[i].X {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical ladders")
	}
}

func TestStepAppliesEachPressOnce(t *testing.T) {
	g := newTestGame(7)

	g.Step(input(core.ActionLeft, core.ActionLeft))

	if x := g.Session().Player().X; x != 155 {
		t.Errorf("X = %v, expected 155 after two left presses", x)
	}

	g.Step(core.NewInputFrame())
	if x := g.Session().Player().X; x != 155 {
		t.Errorf("X = %v, expected no movement without input", x)
	}
}

func TestStepJump(t *testing.T) {
	g := newTestGame(7)

	res := g.Step(input(core.ActionJump))

	if !res.Ticking || res.State.GameOver {
		t.Fatalf("unexpected result after jump: %+v", res)
	}
	if v := g.Session().Player().VelY; v != -11.5 {
		t.Errorf("VelY = %v, expected -11.5", v)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(7)
	g.Step(input(core.ActionJump))
	before := g.Snapshot()

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused || !res.Ticking {
		t.Fatalf("expected paused and still ticking, got %+v", res)
	}

	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionLeft))
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("state changed while paused:\n  before: %+v\n  after:  %+v", before, after)
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Error("resuming should advance the session")
	}
}

func TestStepStopsTickingAtGameOver(t *testing.T) {
	g := newTestGame(9)

	p := g.Session().player
	p.Grounded = false
	p.X = 0
	p.Y = 590
	p.VelY = 10

	res := g.Step(core.NewInputFrame())
	if res.Ticking {
		t.Error("Ticking should be false once the game is over")
	}
	if !res.State.GameOver {
		t.Error("State.GameOver should be true")
	}

	snap := g.Snapshot()
	res = g.Step(input(core.ActionJump, core.ActionPause))
	if res.Ticking || res.State.Paused || g.Snapshot() != snap {
		t.Error("steps after game over should be no-ops")
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(9)
	for i := 0; i < 200; i++ {
		g.Step(scriptedInput(i))
	}

	g.Reset(core.RuntimeConfig{Seed: 9})

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Phase != PhasePlaying {
		t.Errorf("Reset did not restart the session: %+v", snap)
	}
	if snap.PlayerX != 165 || snap.PlayerY != 460 || !snap.Grounded {
		t.Errorf("player not on the start platform after Reset: %+v", snap)
	}
	if g.State().Paused {
		t.Error("Reset should clear pause")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player should be drawn")
	}
	if !strings.ContainsRune(out, NormalChar) {
		t.Error("platforms should be drawn")
	}

	// The start platform at (150, 500) lands on row 20 at 80x24
	if screen.GetCell(30, 20).Rune != NormalChar {
		t.Errorf("start platform cell = %q, expected %q", screen.GetCell(30, 20).Rune, NormalChar)
	}
	if screen.GetCell(2, 0).Color != core.ColorBrightYellow {
		t.Error("HUD should be bright yellow")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(3)
	screen := core.NewScreen(80, 24)

	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Step(input(core.ActionPause))
	p := g.Session().player
	p.Grounded = false
	p.X = 0
	p.Y = 590
	p.VelY = 10
	g.Step(core.NewInputFrame())

	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", GameID, err)
	}
	if g.ID() != GameID || g.Title() != "Jumper" {
		t.Errorf("registered game = %s/%s", g.ID(), g.Title())
	}
}
