package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Obstacle is one column of a pair. Top columns start at y=0; bottom
// columns start right below the gap.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64 // May be <= 0 for a bottom column under a very tall top
	Top    bool
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Collectible is a scoring pickup centered in the gap of its pair.
type Collectible struct {
	X, Y float64
	Size float64
}

// Rect returns the collectible's collision rectangle.
func (c Collectible) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// World holds the scrolling entities. Slices are kept in insertion order,
// which is also left-to-right order.
type World struct {
	obstacles    []Obstacle
	collectibles []Collectible
	rng          *rand.Rand
	cfg          *config.FlappyConfig
}

// NewWorld creates an empty world seeded for deterministic generation.
func NewWorld(seed int64, cfg *config.FlappyConfig) *World {
	w := &World{
		obstacles:    make([]Obstacle, 0, 16),
		collectibles: make([]Collectible, 0, 8),
		cfg:          cfg,
	}
	w.Reset(seed)
	return w
}

// Reset clears all entities and reseeds the RNG.
func (w *World) Reset(seed int64) {
	w.obstacles = w.obstacles[:0]
	w.collectibles = w.collectibles[:0]
	w.rng = rand.New(rand.NewSource(seed))
}

// Obstacles returns the current columns in spawn order.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Collectibles returns the current collectibles in spawn order.
func (w *World) Collectibles() []Collectible {
	return w.collectibles
}

// ShouldSpawn reports whether the rightmost column has scrolled far enough
// left for a new pair.
func (w *World) ShouldSpawn() bool {
	if len(w.obstacles) == 0 {
		return true
	}
	threshold := w.cfg.Canvas.Width - 4*w.cfg.Obstacles.ColumnWidth - w.cfg.Obstacles.GapWidth
	return w.obstacles[len(w.obstacles)-1].X < threshold
}

// SpawnPair appends a top/bottom column pair and the collectible in its gap.
func (w *World) SpawnPair() {
	colW := w.cfg.Obstacles.ColumnWidth
	gap := w.cfg.Obstacles.GapWidth
	canvasH := w.cfg.Canvas.Height

	x := w.cfg.Canvas.Width
	if n := len(w.obstacles); n > 0 {
		x = w.obstacles[n-1].X + 3*colW + gap
	}

	// Biased so the gap never starts in the top 40% of the free space.
	topHeight := (0.4 + w.rng.Float64()) * (canvasH - gap)

	w.obstacles = append(w.obstacles,
		Obstacle{X: x, Y: 0, Width: colW, Height: topHeight, Top: true},
		Obstacle{X: x, Y: topHeight + gap, Width: colW, Height: canvasH - topHeight - gap},
	)

	size := w.cfg.Collectible.Size
	w.collectibles = append(w.collectibles, Collectible{
		X:    x + (colW-size)/2,
		Y:    topHeight + (gap-size)/2,
		Size: size,
	})
}

// AdvanceObstacles scrolls each column left and tests it against the player
// in order. It stops at the first hit and reports it; columns after the hit
// are left untouched for this tick.
func (w *World) AdvanceObstacles(player core.Rect) bool {
	speed := w.cfg.Physics.ScrollSpeed
	for i := range w.obstacles {
		w.obstacles[i].X -= speed
		if player.Intersects(w.obstacles[i].Rect()) {
			return true
		}
	}
	return false
}

// AdvanceCollectibles scrolls each collectible left, removes those touching
// the player and returns how many were picked up.
func (w *World) AdvanceCollectibles(player core.Rect) int {
	speed := w.cfg.Physics.ScrollSpeed
	picked := 0
	kept := w.collectibles[:0]
	for _, c := range w.collectibles {
		c.X -= speed
		if player.Intersects(c.Rect()) {
			picked++
			continue
		}
		kept = append(kept, c)
	}
	w.collectibles = kept
	return picked
}

// Prune drops entities that have fully left the visible region.
func (w *World) Prune() {
	obstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.X+o.Width >= 0 {
			obstacles = append(obstacles, o)
		}
	}
	w.obstacles = obstacles

	collectibles := w.collectibles[:0]
	for _, c := range w.collectibles {
		if c.X+c.Size >= 0 {
			collectibles = append(collectibles, c)
		}
	}
	w.collectibles = collectibles
}
