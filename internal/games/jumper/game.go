// Package jumper implements a vertical platform-jumping game.
// The player hops upward across procedurally spawned platforms while the
// world scrolls down beneath them; the score is the height climbed.
package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// GameID is the registry identifier of the jumper game.
const GameID = "jumper"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's registry.Game contract.
type Game struct {
	session *Session
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new jumper game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that ignores the config search path.
func NewWithConfig(cfg config.JumperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// Reset starts a brand-new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	if g.cfg == (config.JumperConfig{}) {
		cfg, err := config.LoadJumper(configPath)
		if err != nil {
			cfg = config.DefaultJumperConfig()
		}
		g.cfg = cfg
	}

	g.session = NewSession(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Step applies the frame's input events in arrival order, then advances the
// session by one tick. Once the game is over the result asks the platform
// to stop ticking.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State(), Ticking: true}
	}

	for _, a := range in.Events {
		switch a {
		case core.ActionLeft:
			g.session.MoveLeft()
		case core.ActionRight:
			g.session.MoveRight()
		case core.ActionJump:
			g.session.Jump()
		}
	}

	phase := g.session.Tick()
	return core.StepResult{
		State:   g.State(),
		Ticking: phase == PhasePlaying,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	PlayerX    float64
	PlayerY    float64
	PlayerVelY float64
	Grounded   bool
	Platforms  int
	Breakables int
	Created    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.session.Player()
	platforms := g.session.Platforms()

	breakables := 0
	for _, pl := range platforms {
		if pl.Kind == KindBreakable {
			breakables++
		}
	}

	return Snapshot{
		Tick:       g.session.Ticks(),
		Phase:      g.session.Phase(),
		Score:      g.session.Score(),
		PlayerX:    p.X,
		PlayerY:    p.Y,
		PlayerVelY: p.VelY,
		Grounded:   p.Grounded,
		Platforms:  len(platforms),
		Breakables: breakables,
		Created:    g.session.Created(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
