package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in world constants.
func Default() FlappyConfig {
	return FlappyConfig{
		Canvas: CanvasConfig{
			Width:  1000,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:     0.7,
			ScrollSpeed: 3,
			JumpImpulse: -9,
			JumpMode:    JumpAirborne,
		},
		Player: PlayerConfig{
			X:      50,
			Y:      400 - 600, // Starts above the visible canvas and falls in
			Width:  50,
			Height: 50,
		},
		Obstacles: ObstacleConfig{
			ColumnWidth: 60,
			GapWidth:    150,
		},
		Collectible: CollectibleConfig{
			Size:  20,
			Award: 10,
		},
		Score: ScoreConfig{
			Increment: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
