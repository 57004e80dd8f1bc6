// Package config provides YAML-based configuration of the flappy world
// constants.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all world constants for the game.
type FlappyConfig struct {
	Canvas      CanvasConfig      `yaml:"canvas"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Score       ScoreConfig       `yaml:"score"`
}

// CanvasConfig defines the logical drawing surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64  `yaml:"gravity"`
	ScrollSpeed float64  `yaml:"scroll_speed"`
	JumpImpulse float64  `yaml:"jump_impulse"` // Negative = up
	JumpMode    JumpMode `yaml:"jump_mode"`
}

// PlayerConfig defines the player's spawn position and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines column geometry.
type ObstacleConfig struct {
	ColumnWidth float64 `yaml:"column_width"`
	GapWidth    float64 `yaml:"gap_width"`
}

// CollectibleConfig defines collectible geometry and value.
type CollectibleConfig struct {
	Size  float64 `yaml:"size"`
	Award int     `yaml:"award"`
}

// ScoreConfig holds score constants.
type ScoreConfig struct {
	Increment int `yaml:"increment"`
}

// JumpMode selects when a jump request is honored.
type JumpMode string

const (
	// JumpAirborne allows a jump from the floor or whenever vertical velocity
	// is non-zero, which in practice means almost any time after the first fall.
	JumpAirborne JumpMode = "airborne"
	// JumpGrounded allows a jump only while the player rests on the floor.
	JumpGrounded JumpMode = "grounded"
)

// ParseJumpMode converts a CLI/YAML string to a JumpMode.
func ParseJumpMode(s string) (JumpMode, error) {
	switch JumpMode(s) {
	case JumpAirborne, JumpGrounded:
		return JumpMode(s), nil
	default:
		return "", fmt.Errorf("config: unknown jump mode %q (want %q or %q)", s, JumpAirborne, JumpGrounded)
	}
}

// Validate reports every invalid field at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Canvas.Width > 0, "canvas.width must be positive, got %v", c.Canvas.Width)
	check(c.Canvas.Height > 0, "canvas.height must be positive, got %v", c.Canvas.Height)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	if _, err := ParseJumpMode(string(c.Physics.JumpMode)); err != nil {
		errs = append(errs, err)
	}
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Obstacles.ColumnWidth > 0, "obstacles.column_width must be positive, got %v", c.Obstacles.ColumnWidth)
	check(c.Obstacles.GapWidth > 0, "obstacles.gap_width must be positive, got %v", c.Obstacles.GapWidth)
	check(c.Obstacles.GapWidth < c.Canvas.Height, "obstacles.gap_width (%v) must be smaller than canvas.height (%v)", c.Obstacles.GapWidth, c.Canvas.Height)
	check(c.Collectible.Size > 0, "collectible.size must be positive, got %v", c.Collectible.Size)
	check(c.Collectible.Size <= c.Obstacles.ColumnWidth && c.Collectible.Size <= c.Obstacles.GapWidth,
		"collectible.size (%v) must fit the gap, at most column_width (%v) and gap_width (%v)",
		c.Collectible.Size, c.Obstacles.ColumnWidth, c.Obstacles.GapWidth)

	return errors.Join(errs...)
}
