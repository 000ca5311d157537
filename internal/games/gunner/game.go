package gunner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
	"github.com/vovakirdan/gunner/internal/registry"
)

// Package-level settings applied on every Reset, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game lifecycle logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Scene to the platform's fixed-step game loop.
type Game struct {
	cfg     config.GunnerConfig
	runtime core.RuntimeConfig
	scene   *Scene
	view    viewport
	paused  bool
	ended   bool // game over already reported
}

// New creates a new gunner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gunner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gunner"
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadGunner(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "err", err)
	}
	config.ApplyGunnerPreset(&cfg, difficultyPreset)
	g.ResetWith(cfg, rc)
}

// ResetWith starts a fresh run with an explicit configuration.
func (g *Game) ResetWith(cfg config.GunnerConfig, rc core.RuntimeConfig) {
	g.cfg = cfg
	g.runtime = rc
	g.scene = NewScene(cfg, rand.New(rand.NewSource(rc.Seed)))
	g.view = newViewport(rc.ScreenW, rc.ScreenH)
	g.paused = false
	g.ended = false

	logger.Debug("run started", "seed", rc.Seed, "difficulty", cfg.Difficulty.Enabled, "asteroids", cfg.Asteroids.InitialCount)
}

// Step applies this tick's input and advances the scene by one fixed step.
// Input is ignored once the run is over; the scene keeps moving behind the banner.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.scene.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.scene.IsOver() {
		g.applyInput(in)
	}

	g.scene.Tick(g.runtime.FrameDelta())

	if g.scene.IsOver() && !g.ended {
		g.ended = true
		logger.Info("game over", "score", g.scene.Score(), "ticks", g.scene.Ticks())
	}

	return core.StepResult{State: g.State()}
}

// applyInput turns key actions into shots relative to the ship and pointer
// taps into shots at the tapped column.
func (g *Game) applyInput(in core.InputFrame) {
	x := g.scene.Ship().Position.X
	step := g.cfg.Ship.MaxStep

	switch {
	case in.Has(core.ActionLeft):
		g.scene.FireAt(x-step, 0)
	case in.Has(core.ActionRight):
		g.scene.FireAt(x+step, 0)
	case in.Has(core.ActionFire):
		g.scene.FireAt(x, 0)
	}

	for _, tap := range in.Taps {
		g.scene.FireAt(tap.X, tap.Y)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scene.Score(),
		GameOver: g.scene.IsOver(),
		Paused:   g.paused,
	}
}

// Scene exposes the underlying simulation.
func (g *Game) Scene() *Scene {
	return g.scene
}

// ScreenToWorld maps a terminal cell to world coordinates using the layout of
// the last rendered frame. ok is false outside the playfield.
func (g *Game) ScreenToWorld(col, row int) (x, y float64, ok bool) {
	if !g.view.contains(col, row) {
		return 0, 0, false
	}
	p := g.view.toWorld(col, row)
	return p.X, p.Y, true
}

// Register the game with the registry
func init() {
	registry.Register("gunner", func() registry.Game {
		return New()
	})
}
