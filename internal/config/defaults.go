package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: JumperWorld{
			Width:          400,
			Height:         600,
			ScrollTriggerY: 250,
			PruneMargin:    50,
			TopBand:        80,
		},
		Player: JumperPlayer{
			Width:       40,
			Height:      40,
			Gravity:     0.5,
			JumpImpulse: 12,
			MoveSpeed:   5,
		},
		Platforms: JumperPlatforms{
			Width:            70,
			Height:           12,
			EdgeMargin:       50,
			Spacing:          40,
			LandingTolerance: 5,
			NormalFirst:      8,
			BreakableChance:  0.2,
		},
		Start: JumperStart{
			AnchorX:       150,
			AnchorY:       500,
			LadderCount:   6,
			LadderBaseY:   440,
			LadderSpacing: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
