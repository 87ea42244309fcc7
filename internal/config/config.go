// Package config provides YAML-based game configuration loading for the
// jumper game.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all configuration for the jumper game.
// Distances are in world units; the world is drawn scaled onto the terminal.
type JumperConfig struct {
	World     JumperWorld     `yaml:"world"`
	Player    JumperPlayer    `yaml:"player"`
	Platforms JumperPlatforms `yaml:"platforms"`
	Start     JumperStart     `yaml:"start"`
}

// JumperWorld defines the play-field and scroll parameters.
type JumperWorld struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ScrollTriggerY float64 `yaml:"scroll_trigger_y"` // Player is never drawn above this line
	PruneMargin    float64 `yaml:"prune_margin"`     // Platforms below Height+margin are dropped
	TopBand        float64 `yaml:"top_band"`         // Fill keeps at least one platform with Y above this
}

// JumperPlayer defines player size and physics.
type JumperPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Magnitude; applied upward
	MoveSpeed   float64 `yaml:"move_speed"`
}

// JumperPlatforms defines platform size and the generation policy.
type JumperPlatforms struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	EdgeMargin       float64 `yaml:"edge_margin"`
	Spacing          float64 `yaml:"spacing"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	NormalFirst      int     `yaml:"normal_first"`     // Platforms created before breakables may appear
	BreakableChance  float64 `yaml:"breakable_chance"` // Probability per platform after NormalFirst
}

// JumperStart defines the layout built by a new game.
type JumperStart struct {
	AnchorX       float64 `yaml:"anchor_x"`
	AnchorY       float64 `yaml:"anchor_y"`
	LadderCount   int     `yaml:"ladder_count"`
	LadderBaseY   float64 `yaml:"ladder_base_y"`
	LadderSpacing float64 `yaml:"ladder_spacing"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid jumper config")

// Validate checks the preconditions the simulation relies on.
func (c JumperConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalidConfig)
	case c.Platforms.Spacing <= 0:
		return fmt.Errorf("%w: platform spacing must be positive", ErrInvalidConfig)
	case c.Platforms.EdgeMargin < 0:
		return fmt.Errorf("%w: edge margin must not be negative", ErrInvalidConfig)
	case c.World.Width <= c.Platforms.Width+2*c.Platforms.EdgeMargin:
		return fmt.Errorf("%w: world width %.0f leaves no room for platforms of width %.0f with margin %.0f",
			ErrInvalidConfig, c.World.Width, c.Platforms.Width, c.Platforms.EdgeMargin)
	case c.Platforms.BreakableChance < 0 || c.Platforms.BreakableChance > 1:
		return fmt.Errorf("%w: breakable chance must be within [0, 1]", ErrInvalidConfig)
	case c.Player.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Start.LadderCount < 0:
		return fmt.Errorf("%w: ladder count must not be negative", ErrInvalidConfig)
	}
	return nil
}
