package jumper

import (
	"testing"
)

const testTolerance = 5

func testPlatform(x, y float64, kind Kind) Platform {
	return Platform{X: x, Y: y, W: 70, H: 12, Kind: kind}
}

// fallingOnto places a 40x40 player whose bottom edge is depth units below
// the platform's top and who is falling at vel.
func fallingOnto(pl Platform, x, depth, vel float64) *Player {
	p := testPlayer(x, pl.Y-40+depth)
	p.VelY = vel
	return p
}

func TestIsLanding(t *testing.T) {
	pl := testPlatform(100, 300, KindNormal)

	tests := []struct {
		name     string
		x        float64
		depth    float64
		vel      float64
		expected bool
	}{
		{"bottom exactly on top", 120, 0, 4, true},
		{"inside tolerance band", 120, 6, 4, true},
		{"at far end of band", 120, 9, 4, true},
		{"past far end of band", 120, 9.5, 4, false},
		{"above platform", 120, -1, 4, false},
		{"ascending", 120, 2, -4, false},
		{"stationary", 120, 0, 0, false},
		{"fast fall widens band", 120, 25, 20, true},
		{"touching left edge", 60, 2, 4, false},
		{"touching right edge", 170, 2, 4, false},
		{"one unit over left edge", 61, 2, 4, true},
		{"one unit over right edge", 169, 2, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := fallingOnto(pl, tc.x, tc.depth, tc.vel)
			if got := IsLanding(p, pl, testTolerance); got != tc.expected {
				t.Errorf("IsLanding() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLandOnNormalPlatform(t *testing.T) {
	pl := testPlatform(100, 300, KindNormal)
	p := fallingOnto(pl, 120, 3, 4)

	kept, landed := ResolveLandings(p, []Platform{pl}, testTolerance)

	if landed != 1 {
		t.Fatalf("landed = %d, expected 1", landed)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, expected 0", p.VelY)
	}
	if !p.Grounded {
		t.Error("player should be grounded")
	}
	if p.Bounds().Bottom() != pl.Y {
		t.Errorf("player bottom = %v, expected platform top %v", p.Bounds().Bottom(), pl.Y)
	}
	if len(kept) != 1 || kept[0] != pl {
		t.Errorf("normal platform should remain, got %+v", kept)
	}
}

func TestLandOnBreakablePlatform(t *testing.T) {
	normal := testPlatform(300, 100, KindNormal)
	breakable := testPlatform(100, 300, KindBreakable)
	p := fallingOnto(breakable, 120, 3, 4)

	kept, landed := ResolveLandings(p, []Platform{normal, breakable}, testTolerance)

	if landed != 1 {
		t.Fatalf("landed = %d, expected 1", landed)
	}
	if p.VelY != 0 || !p.Grounded || p.Bounds().Bottom() != breakable.Y {
		t.Errorf("landing response not applied: Y=%v VelY=%v Grounded=%v", p.Y, p.VelY, p.Grounded)
	}
	if len(kept) != 1 || kept[0] != normal {
		t.Errorf("breakable platform should be removed, got %+v", kept)
	}
}

func TestResolveLandingsNoCandidate(t *testing.T) {
	platforms := []Platform{
		testPlatform(100, 300, KindBreakable),
		testPlatform(250, 200, KindNormal),
	}
	p := testPlayer(10, 10)
	p.VelY = 3

	kept, landed := ResolveLandings(p, platforms, testTolerance)

	if landed != 0 || len(kept) != 2 {
		t.Errorf("landed=%d kept=%d, expected 0 and 2", landed, len(kept))
	}
	if p.Grounded || p.VelY != 3 {
		t.Error("player should be untouched without a landing")
	}
}

func TestResolveLandingsMultipleCandidates(t *testing.T) {
	first := testPlatform(100, 300, KindBreakable)
	second := testPlatform(110, 302, KindBreakable)
	p := fallingOnto(first, 120, 3, 4)

	kept, landed := ResolveLandings(p, []Platform{first, second}, testTolerance)

	if landed != 2 {
		t.Fatalf("landed = %d, expected both platforms to be processed", landed)
	}
	if len(kept) != 0 {
		t.Errorf("both breakable platforms should be removed, got %+v", kept)
	}
	if !p.Grounded || p.VelY != 0 {
		t.Error("player should be grounded after landing")
	}
}

func TestResolveLandingsTwiceIsSafe(t *testing.T) {
	pl := testPlatform(100, 300, KindBreakable)
	p := fallingOnto(pl, 120, 3, 4)

	kept, _ := ResolveLandings(p, []Platform{pl}, testTolerance)
	kept, landed := ResolveLandings(p, kept, testTolerance)

	if landed != 0 {
		t.Errorf("second pass landed = %d, expected 0", landed)
	}
	if len(kept) != 0 {
		t.Errorf("kept = %+v, expected empty", kept)
	}
	if p.Bounds().Bottom() != pl.Y {
		t.Errorf("second pass moved the player to bottom %v", p.Bounds().Bottom())
	}
}

func TestPlatformKindString(t *testing.T) {
	if KindNormal.String() != "normal" || KindBreakable.String() != "breakable" {
		t.Error("unexpected kind names")
	}
	if Kind(7).String() != "unknown" {
		t.Error("unknown kinds should say so")
	}
}
