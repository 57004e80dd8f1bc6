package core

import (
	"context"
	"errors"
	"testing"
)

// countdownGame ends after a fixed number of steps.
type countdownGame struct {
	left  int
	steps int
	jumps int
}

func (g *countdownGame) ID() string              { return "countdown" }
func (g *countdownGame) Title() string           { return "Countdown" }
func (g *countdownGame) Reset(cfg RuntimeConfig) {}
func (g *countdownGame) Render(dst *Screen)      {}

func (g *countdownGame) Step(in InputFrame) StepResult {
	if g.left == 0 {
		return StepResult{State: g.State()}
	}
	g.steps++
	g.left--
	if in.Has(ActionJump) {
		g.jumps++
	}
	res := StepResult{State: g.State()}
	if g.left == 0 {
		res.Events = append(res.Events, Event{Kind: EventCrash})
	}
	return res
}

func (g *countdownGame) State() GameState {
	return GameState{GameOver: g.left == 0, Ticks: g.steps}
}

func TestSchedulerStopsAtGameOver(t *testing.T) {
	g := &countdownGame{left: 5}
	s := Scheduler{MaxFrames: 100}

	summary, err := s.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Frames != 5 {
		t.Errorf("Frames = %d, expected 5", summary.Frames)
	}
	if g.steps != 5 {
		t.Errorf("game stepped %d times after game over, expected 5", g.steps)
	}
	if !summary.State.GameOver {
		t.Error("summary should report game over")
	}
	if summary.Events[EventCrash] != 1 {
		t.Errorf("crash events = %d, expected 1", summary.Events[EventCrash])
	}
}

func TestSchedulerFrameBudget(t *testing.T) {
	g := &countdownGame{left: 50}
	s := Scheduler{MaxFrames: 10, Input: JumpEvery(3)}

	summary, err := s.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Frames != 10 {
		t.Errorf("Frames = %d, expected 10", summary.Frames)
	}
	// frames 0, 3, 6, 9
	if g.jumps != 4 {
		t.Errorf("jumps = %d, expected 4", g.jumps)
	}
}

func TestSchedulerOnFrame(t *testing.T) {
	g := &countdownGame{left: 3}
	var seen []int
	s := Scheduler{OnFrame: func(frame int, res StepResult) {
		seen = append(seen, frame)
	}}

	if _, err := s.Run(context.Background(), g); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(seen) != 3 || seen[0] != 0 || seen[2] != 2 {
		t.Errorf("OnFrame saw %v, expected [0 1 2]", seen)
	}
}

func TestSchedulerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &countdownGame{left: 5}
	s := Scheduler{}
	summary, err := s.Run(ctx, g)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if summary.Frames != 0 {
		t.Errorf("Frames = %d, expected 0 for a cancelled run", summary.Frames)
	}
}

func TestJumpEveryDisabled(t *testing.T) {
	src := JumpEvery(0)
	for i := 0; i < 5; i++ {
		in := src(i)
		if in.Has(ActionJump) {
			t.Fatalf("JumpEvery(0) should never jump, jumped at frame %d", i)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	res := StepResult{Events: []Event{{Kind: EventSpawn}, {Kind: EventCollect, Score: 10}}}
	if !res.Has(EventCollect) {
		t.Error("Has(EventCollect) should be true")
	}
	if res.Has(EventCrash) {
		t.Error("Has(EventCrash) should be false")
	}
}
