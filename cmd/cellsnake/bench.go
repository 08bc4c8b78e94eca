package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellsnake/config"
	"github.com/lixenwraith/cellsnake/game"
	"github.com/lixenwraith/cellsnake/input"
	"github.com/lixenwraith/cellsnake/render"
	"github.com/lixenwraith/cellsnake/terminal"
)

type benchOptions struct {
	width, height int
	frames        int
}

// benchResult aggregates diff output against a full repaint every frame
type benchResult struct {
	Frames    int
	Rounds    int
	BestScore int
	Runs      int
	Cells     int
	Bytes     int
	Baseline  int
	Elapsed   time.Duration
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the game headless on an in-memory surface and report diff output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logCloser, err := setupLogging(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			if logCloser != nil {
				defer logCloser.Close()
			}

			res, err := runBench(cfg, opts)
			if err != nil {
				return err
			}
			res.print(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 80, "surface width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 24, "surface height in cells")
	cmd.Flags().IntVar(&opts.frames, "frames", 1000, "frames to render")
	return cmd
}

// slotKeys exposes a slot as the game's key source
type slotKeys struct {
	*input.Slot
}

func (k slotKeys) Latest() input.Code { return k.Load() }

// circuit steers the snake around a square centred on its start cell
func circuit(width, height int) []input.Code {
	side := max(min(width-2, height-3)/3, 1)
	codes := make([]input.Code, 0, 4*side)
	for _, c := range []input.Code{input.KeyW, input.KeyD, input.KeyS, input.KeyA} {
		for range side {
			codes = append(codes, c)
		}
	}
	return codes
}

// runBench pumps a scripted hook once per frame so runs are deterministic for a fixed seed
// A fresh renderer and game replace a dead snake until the frame budget is spent
func runBench(cfg *config.Config, opts benchOptions) (benchResult, error) {
	if opts.width <= 0 || opts.height <= 0 || opts.frames <= 0 {
		return benchResult{}, errors.New("bench: width, height and frames must be positive")
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	surface := terminal.NewMemorySurface(opts.width, opts.height, cfg.Blank)
	hook := input.NewScriptHook(true, circuit(opts.width, opts.height)...)
	if err := hook.Install(); err != nil {
		return benchResult{}, err
	}
	defer hook.Uninstall()

	var res benchResult
	start := time.Now()
	for res.Frames < opts.frames {
		r, err := render.New(surface, render.Config{Blank: cfg.Blank, Filled: cfg.Glyph})
		if err != nil {
			return res, err
		}
		slot := input.NewSlot(input.KeyW)
		g := game.New(opts.width, opts.height, r, slotKeys{slot}, game.Config{
			Apples:     cfg.Apples,
			SpawnEvery: cfg.SpawnEvery,
			Seed:       cfg.Seed + uint64(res.Rounds),
		})
		res.Rounds++

		for res.Frames < opts.frames && g.Alive() {
			hook.Pump()
			if c, ok := hook.Latest(); ok {
				slot.Store(c)
			}
			g.Update()
			if err := r.Render(); err != nil {
				return res, err
			}
			st := r.Stats()
			res.Frames++
			res.Runs += st.Runs
			res.Cells += st.Cells
		}
		res.BestScore = max(res.BestScore, g.Score())
	}
	res.Elapsed = time.Since(start)
	res.Bytes = surface.BytesWritten()
	res.Baseline = res.Frames * opts.width * opts.height
	return res, nil
}

func (r benchResult) print(w io.Writer) {
	ratio := 0.0
	if r.Baseline > 0 {
		ratio = float64(r.Cells) / float64(r.Baseline) * 100
	}
	perFrame := time.Duration(0)
	if r.Frames > 0 {
		perFrame = r.Elapsed / time.Duration(r.Frames)
	}
	fmt.Fprintf(w, "frames      %d\n", r.Frames)
	fmt.Fprintf(w, "rounds      %d\n", r.Rounds)
	fmt.Fprintf(w, "best score  %d\n", r.BestScore)
	fmt.Fprintf(w, "runs        %d\n", r.Runs)
	fmt.Fprintf(w, "cells       %d (%.2f%% of full repaint %d)\n", r.Cells, ratio, r.Baseline)
	fmt.Fprintf(w, "bytes       %d\n", r.Bytes)
	fmt.Fprintf(w, "per frame   %s\n", perFrame)
}
