package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// scriptedGame ends its run after a fixed number of steps.
type scriptedGame struct {
	length int
	steps  int
	jumps  int
	resets []int64
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.resets = append(g.resets, cfg.Seed)
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.steps >= g.length {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if in.Has(core.ActionJump) {
		g.jumps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.length, Ticks: g.steps}
}

func newTestModel(g core.Game) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7}, log.New(io.Discard))
	seed := int64(100)
	m.seedFn = func() int64 {
		seed++
		return seed
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModelInitResetsGame(t *testing.T) {
	g := &scriptedGame{length: 3}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if len(g.resets) != 1 || g.resets[0] != 7 {
		t.Errorf("Init should reset with the configured seed, resets = %v", g.resets)
	}
}

func TestModelJumpReachesNextTick(t *testing.T) {
	g := &scriptedGame{length: 10}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if g.jumps != 1 {
		t.Errorf("jump should apply to exactly one tick, got %d", g.jumps)
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	g := &scriptedGame{length: 2}
	m := newTestModel(g)
	m.Init()

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("a live run should schedule the next tick")
	}

	m, cmd = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("run should be over after two steps")
	}
	if cmd != nil {
		t.Error("the tick that ends the run must not schedule another")
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd != nil || g.steps != 2 {
		t.Errorf("stale ticks after game over should be ignored, steps = %d", g.steps)
	}

	// Jump is disabled while the game-over message is up
	m, _ = update(t, m, spaceKey)
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("jump should be ignored after game over")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{length: 1}
	m := newTestModel(g)
	m.Init()

	// Enter does nothing while the run is live
	m, cmd := update(t, m, enterKey)
	if cmd != nil || len(g.resets) != 1 {
		t.Fatal("enter should not restart a live run")
	}

	m, _ = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("setup: run should be over")
	}

	m, cmd = update(t, m, enterKey)
	if cmd == nil {
		t.Error("restart should resume the tick loop")
	}
	if m.State().GameOver {
		t.Error("restart should start a fresh run")
	}
	if len(g.resets) != 2 || g.resets[1] != 101 {
		t.Errorf("restart should reset with a new seed, resets = %v", g.resets)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{length: 5})
	m.Init()

	m, cmd := update(t, m, quitKey)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{length: 10}
	m := newTestModel(g)
	m.Init()
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 20-helpHeight {
		t.Errorf("screen = %dx%d, expected 60x%d", m.screen.Width(), m.screen.Height(), 20-helpHeight)
	}
	if len(g.resets) != 1 || g.steps != 1 {
		t.Error("resize should not restart the run")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{length: 5})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Errorf("view should contain the game render, got %q", view)
	}
	if !strings.Contains(view, "jump") {
		t.Errorf("view should contain the help footer, got %q", view)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "Score", core.ColorWhite)
	s.DrawTextColored(6, 0, "██", core.ColorGreen)
	s.DrawText(0, 1, "floor")

	out := RenderScreen(s)
	for _, want := range []string{"Score", "██", "floor"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestKeyMapGameOverToggle(t *testing.T) {
	k := DefaultKeyMap()
	if !k.Jump.Enabled() || k.Confirm.Enabled() {
		t.Fatal("default key map should allow jump only")
	}

	k.setGameOver(true)
	if k.Jump.Enabled() || !k.Confirm.Enabled() {
		t.Error("game over should allow play-again only")
	}

	k.setGameOver(false)
	if !k.Jump.Enabled() || k.Confirm.Enabled() {
		t.Error("restart should re-enable jump")
	}
}

func TestNewSSHServerRequiresGame(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), log.New(io.Discard)); err == nil {
		t.Error("NewSSHServer without NewGame should fail")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".flappy", "host_key"); path != want {
		t.Errorf("path = %q, expected %q", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Error("host key directory should be created")
	}

	custom := filepath.Join(t.TempDir(), "keys", "id")
	path, err = resolveHostKeyPath(custom)
	if err != nil || path != custom {
		t.Errorf("custom path = %q, %v", path, err)
	}
}
