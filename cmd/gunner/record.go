package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunner/internal/config"
	"github.com/vovakirdan/gunner/internal/core"
	"github.com/vovakirdan/gunner/internal/games/gunner"
)

var (
	flagTicks      int
	flagOut        string
	flagFireEvery  int
	flagStopOnOver bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Run a headless game and save its frames",
	Long: `Run the scene without a terminal. The ship aims at the lowest rock and
fires every --fire-every ticks. Each tick is written as one msgpack frame.

A fixed --seed makes the recording reproducible.

Examples:
  gunner record --seed 7
  gunner record --seed 7 --ticks 3600 --difficulty hard --out hard.frames
  gunner inspect hard.frames`,
	Args: cobra.NoArgs,
	Run:  runRecord,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a recorded frame file",
	Args:  cobra.ExactArgs(1),
	Run:   runInspect,
}

func init() {
	recordCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum number of ticks to simulate")
	recordCmd.Flags().StringVarP(&flagOut, "out", "o", "gunner.frames", "Output file for msgpack frames")
	recordCmd.Flags().IntVar(&flagFireEvery, "fire-every", 10, "Fire once every N ticks (0 = never)")
	recordCmd.Flags().BoolVar(&flagStopOnOver, "stop-on-over", true, "Stop recording at game over")
}

func runRecord(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := config.LoadGunner(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	config.ApplyGunnerPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dt := core.RuntimeConfig{TickRate: flagFPS}.FrameDelta()

	f, err := os.Create(flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	frames := gunner.NewFrameWriter(buf)
	scene := gunner.NewScene(cfg, rand.New(rand.NewSource(seed)))

	logger.Debug("recording", "seed", seed, "ticks", flagTicks, "dt", dt)
	for i := 0; i < flagTicks; i++ {
		if flagFireEvery > 0 && i%flagFireEvery == 0 {
			scene.FireAt(gunner.AimX(scene), 0)
		}
		scene.Tick(dt)
		if err := frames.Write(scene.Frame()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing frame: %v\n", err)
			os.Exit(1)
		}
		if scene.IsOver() && flagStopOnOver {
			break
		}
	}

	if err := buf.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, err)
		os.Exit(1)
	}

	logger.Info("recording finished",
		"out", flagOut,
		"frames", frames.Count(),
		"score", scene.Score(),
		"over", scene.IsOver(),
		"seed", seed,
	)
	if scene.IsOver() {
		fmt.Println(scene.GameOverText())
	}
}

func runInspect(_ *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", args[0], err)
		os.Exit(1)
	}
	defer f.Close()

	r := gunner.NewFrameReader(bufio.NewReader(f))
	var (
		count       int
		last        gunner.Frame
		maxEntities int
		kinds       = map[gunner.Kind]int{}
	)
	for {
		frame, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading frame %d: %v\n", count, err)
			os.Exit(1)
		}
		count++
		last = frame
		maxEntities = max(maxEntities, len(frame.Entities))
		for _, e := range frame.Entities {
			kinds[e.Kind]++
		}
	}

	if count == 0 {
		fmt.Println("No frames recorded.")
		return
	}

	fmt.Printf("Frames:       %d (ticks 1..%d)\n", count, last.Tick)
	fmt.Printf("Final score:  %d\n", last.Score)
	fmt.Printf("Max entities: %d\n", maxEntities)
	for _, k := range []gunner.Kind{gunner.KindShip, gunner.KindProjectile, gunner.KindAsteroid, gunner.KindFragment} {
		fmt.Printf("  %-11s %d entity-frames\n", k.String()+":", kinds[k])
	}
	if last.Over {
		fmt.Println(last.Message)
	}
}
