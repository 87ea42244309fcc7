package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Phase is the session state. The only transition is Playing -> GameOver.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns one run of the game: the player, the world and the score.
// It is driven by exactly one caller; nothing in it is safe for concurrent use.
type Session struct {
	cfg        config.JumperConfig
	world      *World
	player     *Player
	score      int
	phase      Phase
	ticks      uint64
	onGameOver func(finalScore int)
}

// NewSession creates a session whose platform layout is drawn from rng and
// starts its first game.
func NewSession(cfg config.JumperConfig, rng *rand.Rand) *Session {
	s := &Session{cfg: cfg}
	s.world = NewWorld(cfg, NewGenerator(rng, cfg))
	s.StartNewGame()
	return s
}

// OnGameOver registers a callback invoked once with the final score when the
// player falls off the bottom of the screen.
func (s *Session) OnGameOver(fn func(finalScore int)) {
	s.onGameOver = fn
}

// StartNewGame builds the opening layout: a start platform at the anchor,
// the player standing centered on it, and a ladder of normal platforms
// above it. The generation cursor continues where the ladder ends.
func (s *Session) StartNewGame() {
	s.score = 0
	s.phase = PhasePlaying
	s.ticks = 0
	s.world.Reset()

	gen := s.world.Generator()
	start := s.cfg.Start

	anchor := gen.Place(start.AnchorX, start.AnchorY)
	s.world.Add(anchor)

	s.player = NewPlayer(
		anchor.X+(anchor.W-s.cfg.Player.Width)/2,
		anchor.Y-s.cfg.Player.Height,
		s.cfg.Player,
	)
	s.player.Grounded = true

	for i := 0; i < start.LadderCount; i++ {
		y := start.LadderBaseY - float64(i)*start.LadderSpacing
		s.world.Add(gen.Place(gen.RandomX(), y))
		gen.SetCursor(y - start.LadderSpacing)
	}
}

// Tick advances the simulation by one step and returns the resulting phase.
// Ticks after game over do nothing.
func (s *Session) Tick() Phase {
	if s.phase == PhaseGameOver {
		return s.phase
	}
	s.ticks++

	p := s.player
	p.Grounded = false
	p.Update()

	s.world.Wrap(p)
	s.world.Land(p)

	if dy := s.world.Scroll(p); dy > 0 {
		s.score += int(dy)
		s.world.Prune()
		s.world.Fill()
	}

	if p.Y > s.cfg.World.Height {
		s.phase = PhaseGameOver
		if s.onGameOver != nil {
			s.onGameOver(s.score)
		}
	}

	return s.phase
}

// MoveLeft steps the player left. Ignored after game over.
func (s *Session) MoveLeft() {
	if s.phase == PhasePlaying {
		s.player.MoveLeft()
	}
}

// MoveRight steps the player right. Ignored after game over.
func (s *Session) MoveRight() {
	if s.phase == PhasePlaying {
		s.player.MoveRight()
	}
}

// Jump makes a grounded player jump. Ignored after game over.
func (s *Session) Jump() {
	if s.phase == PhasePlaying {
		s.player.Jump()
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the height climbed so far.
func (s *Session) Score() int {
	return s.score
}

// FinalScore returns the score and true once the game is over.
func (s *Session) FinalScore() (int, bool) {
	return s.score, s.phase == PhaseGameOver
}

// Ticks returns the number of simulated ticks since StartNewGame.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return *s.player
}

// Platforms returns a copy of the live platforms.
func (s *Session) Platforms() []Platform {
	out := make([]Platform, len(s.world.Platforms()))
	copy(out, s.world.Platforms())
	return out
}

// Created returns the number of platforms created since StartNewGame.
func (s *Session) Created() int {
	return s.world.Generator().Created()
}
