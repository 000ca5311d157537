package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gunner/internal/core"
	"github.com/vovakirdan/gunner/internal/storage"
)

// stubGame records what the host feeds it. Screen cells map to world
// coordinates one to one inside a 10x10 playfield.
type stubGame struct {
	resets  int
	steps   int
	actions []core.Action
	taps    []core.Vec2
	state   core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	g.taps = append(g.taps, in.Taps...)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) ScreenToWorld(col, row int) (float64, float64, bool) {
	if col >= 10 || row >= 10 {
		return 0, 0, false
	}
	return float64(col), float64(row), true
}

func newTestModel(g *stubGame, store *storage.Store) Model {
	return NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)

	if g.steps != 1 || len(g.actions) != 1 || g.actions[0] != core.ActionLeft {
		t.Fatalf("steps=%d actions=%v, expected one Left", g.steps, g.actions)
	}

	tick(t, m)
	if len(g.actions) != 1 {
		t.Errorf("input should be cleared between ticks, got %v", g.actions)
	}
}

func TestModelMouseTaps(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 30, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(t, m)

	if len(g.taps) != 1 || g.taps[0] != core.V(3, 4) {
		t.Errorf("taps = %v, expected only the press inside the playfield", g.taps)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	// Restart is ignored while the game runs
	m, _ = send(t, m, runeKey('r'))
	m = tick(t, m)
	if g.resets != 0 {
		t.Fatal("restart should need a finished game")
	}

	g.state.GameOver = true
	m = tick(t, m)
	m, _ = send(t, m, runeKey('r'))
	tick(t, m)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(g, store)
	g.state = core.GameState{Score: 5, GameOver: true}
	m = tick(t, m)
	tick(t, m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 5 {
		t.Errorf("scores = %+v, expected a single 5", scores)
	}
}

func TestModelCopyToClipboard(t *testing.T) {
	var copied string
	m := newTestModel(&stubGame{}, nil)
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.HasPrefix(copied, "stub") {
		t.Errorf("copied %q, expected the rendered screen", copied)
	}
	if !strings.Contains(m.View(), "screen copied") {
		t.Error("copy should show a status message")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorMagenta)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "#"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 0 %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("row 1 %q missing xyz", lines[1])
	}
}
