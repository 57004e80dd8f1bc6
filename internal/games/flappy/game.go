// Package flappy implements a Flappy Bird-style side-scroller.
// The player falls under gravity, jumps on input and must pass through the
// gaps of scrolling column pairs, picking up the collectible in each gap.
// The run ends on the first collision with a column.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Player is the controllable sprite.
type Player struct {
	X, Y      float64
	Width     float64
	Height    float64
	VelocityY float64
	Score     int
	Alive     bool
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Game implements the flappy game logic.
type Game struct {
	cfg       config.FlappyConfig
	runtime   core.RuntimeConfig
	player    Player
	world     *World
	tickCount int
}

// New creates a game with the given world constants. Call Reset before Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset discards the current run and starts a new one from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickCount = 0
	g.player = Player{
		X:      g.cfg.Player.X,
		Y:      g.cfg.Player.Y,
		Width:  g.cfg.Player.Width,
		Height: g.cfg.Player.Height,
		Alive:  true,
	}

	if g.world == nil {
		g.world = NewWorld(runtime.Seed, &g.cfg)
	} else {
		g.world.Reset(runtime.Seed)
	}
}

// Config returns the world constants in use.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Player returns a copy of the player record.
func (g *Game) Player() Player {
	return g.player
}

// World returns the scrolling entities.
func (g *Game) World() *World {
	return g.world
}

// onFloor reports whether the player's bottom edge rests on (or below) the floor.
func (g *Game) onFloor() bool {
	return g.player.Y+g.player.Height >= g.cfg.Canvas.Height
}

// Jump applies the upward impulse if the player may jump right now.
// In airborne mode a non-zero vertical velocity is enough, so the player can
// re-jump at almost any point of a flight; grounded mode requires the floor.
// Returns whether the impulse was applied.
func (g *Game) Jump() bool {
	if !g.player.Alive {
		return false
	}

	allowed := g.onFloor()
	if g.cfg.Physics.JumpMode != config.JumpGrounded {
		allowed = allowed || g.player.VelocityY != 0
	}
	if !allowed {
		return false
	}

	g.player.VelocityY = g.cfg.Physics.JumpImpulse
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.player.Alive {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	if in.Has(core.ActionJump) {
		g.Jump()
	}

	// Position first, then gravity
	g.player.Y += g.player.VelocityY
	g.player.VelocityY += g.cfg.Physics.Gravity

	if g.player.Y+g.player.Height > g.cfg.Canvas.Height {
		g.player.Y = g.cfg.Canvas.Height - g.player.Height
		g.player.VelocityY = 0
	}

	// Past the midpoint the player is pulled back while the world scrolls
	if g.player.X > g.cfg.Canvas.Width/2 {
		g.player.X -= g.cfg.Physics.ScrollSpeed
	}

	if g.world.ShouldSpawn() {
		g.world.SpawnPair()
		events = append(events, core.Event{Kind: core.EventSpawn, Score: g.player.Score})
	}

	playerRect := g.player.Rect()

	if g.world.AdvanceObstacles(playerRect) {
		g.player.Alive = false
		events = append(events, core.Event{Kind: core.EventCrash, Score: g.player.Score})
		return core.StepResult{State: g.State(), Events: events}
	}

	for range g.world.AdvanceCollectibles(playerRect) {
		g.player.Score += g.cfg.Collectible.Award
		events = append(events, core.Event{Kind: core.EventCollect, Score: g.player.Score})
	}

	g.world.Prune()

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		GameOver: !g.player.Alive,
		Ticks:    g.tickCount,
	}
}

// Summary returns the end-of-run message.
func (g *Game) Summary() string {
	return fmt.Sprintf("Game over! Final score: %d", g.player.Score)
}

var _ core.Game = (*Game)(nil)
