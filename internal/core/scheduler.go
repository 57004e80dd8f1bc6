package core

import "context"

// InputSource supplies the input for a given frame number (0-based).
type InputSource func(frame int) InputFrame

// FrameHook observes each completed frame.
type FrameHook func(frame int, res StepResult)

// Scheduler drives a Game frame by frame without any rendering surface.
// It plays the role of the host's animation-frame callback: each frame is
// stepped exactly once, and no further frame is scheduled after the game
// reports game over.
type Scheduler struct {
	MaxFrames int         // Frame budget; <= 0 means run until game over
	Input     InputSource // Nil means no input
	OnFrame   FrameHook   // Optional
}

// RunSummary describes a finished headless run.
type RunSummary struct {
	Frames int
	State  GameState
	Events map[EventKind]int
}

// JumpEvery returns an InputSource that triggers a jump on every n-th frame.
func JumpEvery(n int) InputSource {
	return func(frame int) InputFrame {
		in := NewInputFrame()
		if n > 0 && frame%n == 0 {
			in.Set(ActionJump)
		}
		return in
	}
}

// Run steps g until it is over, the frame budget is spent, or ctx is done.
// The game is not reset; callers decide when a run starts.
func (s *Scheduler) Run(ctx context.Context, g Game) (RunSummary, error) {
	summary := RunSummary{
		State:  g.State(),
		Events: make(map[EventKind]int),
	}

	for frame := 0; s.MaxFrames <= 0 || frame < s.MaxFrames; frame++ {
		if summary.State.GameOver {
			break
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		in := NewInputFrame()
		if s.Input != nil {
			in = s.Input(frame)
		}

		res := g.Step(in)
		summary.Frames++
		summary.State = res.State
		for _, e := range res.Events {
			summary.Events[e.Kind]++
		}
		if s.OnFrame != nil {
			s.OnFrame(frame, res)
		}
	}

	return summary, nil
}
