// Command cellsnake plays snake in the terminal on the diff-rendering cell engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cellsnake/audio"
	"github.com/lixenwraith/cellsnake/config"
	"github.com/lixenwraith/cellsnake/core"
	"github.com/lixenwraith/cellsnake/game"
	"github.com/lixenwraith/cellsnake/input"
	"github.com/lixenwraith/cellsnake/render"
	"github.com/lixenwraith/cellsnake/service"
	"github.com/lixenwraith/cellsnake/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cellsnake",
		Short:        "Snake on a double-buffered diff renderer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg)
		},
	}

	d := config.Default()
	fs := root.PersistentFlags()
	fs.String("config", "", "TOML config file")
	fs.String("backend", d.Backend, "display backend: "+strings.Join(config.Backends, ", "))
	fs.Duration("tick", d.Tick, "game tick interval")
	fs.Duration("poll", d.Poll, "input sampling interval")
	fs.Uint8("blank", d.Blank, "byte for empty cells")
	fs.Uint8("glyph", d.Glyph, "byte for filled cells")
	fs.Int("apples", d.Apples, "apple pool size")
	fs.Uint64("spawn-every", d.SpawnEvery, "ticks between apple spawns")
	fs.Uint64("seed", d.Seed, "random seed, 0 for time based")
	fs.Bool("sound", d.Sound, "play a chime on apple pickup")
	fs.String("log-file", d.LogFile, "debug log path, empty disables logging")
	fs.String("log-level", d.LogLevel, "log level: trace, debug, info, warn, error")

	root.AddCommand(newBenchCmd())
	return root
}

// loadConfig binds flags to their config keys and resolves layering
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	known := config.Keys()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !slices.Contains(known, key) {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return nil, bindErr
	}

	path, _ := cmd.Flags().GetString("config")
	return config.Load(v, path)
}

// display is a surface plus the hook that reads keys from the same console
type display interface {
	render.Surface
	terminal.Display
}

func newDisplay(backend string) (display, input.Hook, error) {
	switch backend {
	case config.BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("tcell screen: %w", err)
		}
		return terminal.NewTcellSurface(screen), terminal.NewTcellHook(screen), nil
	default:
		return terminal.NewANSISurface(), terminal.NewStdinHook(), nil
	}
}

func play(ctx context.Context, cfg *config.Config) error {
	logCloser, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	disp, hook, err := newDisplay(cfg.Backend)
	if err != nil {
		return err
	}
	core.SetResetHook(disp.Fini)

	slot := input.NewSlot(input.KeyW)
	sampler := input.NewSampler(hook, slot, cfg.Poll)
	sampler.SetCrashHandler(core.HandleCrash)

	hub := service.NewHub()
	services := []service.Service{
		terminal.NewDisplayService(disp),
		service.Wrap("input", []string{"display"}, sampler),
	}
	var sound *audio.AudioService
	if cfg.Sound {
		sound = audio.NewService(audio.NewPlayer(audio.DefaultSampleRate, audio.DefaultVolume))
		services = append(services, sound)
	}
	for _, svc := range services {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.StartAll(); err != nil {
		return err
	}

	score, runErr := run(ctx, cfg, disp, sampler, sound)

	// Restore the terminal before anything is printed
	hub.StopAll()
	if runErr != nil {
		return runErr
	}
	fmt.Printf("score %d\n", score)
	return nil
}

func run(ctx context.Context, cfg *config.Config, surface render.Surface, keys input.Source, sound *audio.AudioService) (int, error) {
	r, err := render.New(surface, render.Config{Blank: cfg.Blank, Filled: cfg.Glyph})
	if err != nil {
		return 0, fmt.Errorf("renderer: %w", err)
	}

	width, height := r.Size()
	g := game.New(width, height, r, keys, game.Config{
		Apples:     cfg.Apples,
		SpawnEvery: cfg.SpawnEvery,
		Seed:       cfg.Seed,
	})
	if sound != nil {
		g.OnEat(func(int) { sound.PlayChime() })
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = supervise(ctx, cfg.Tick, g, r, keys)
	return g.Score(), err
}

// errSamplerExited reports an input source that stopped while the game was still running
var errSamplerExited = errors.New("input sampler exited")

// supervise runs the tick loop and watches the input source; the first to fail ends both
func supervise(ctx context.Context, tick time.Duration, g *game.Game, r *render.Renderer, keys input.Source) error {
	eg, ctx := errgroup.WithContext(ctx)
	ctx, finish := context.WithCancel(ctx)
	defer finish()

	eg.Go(func() error {
		defer finish()
		defer func() {
			if p := recover(); p != nil {
				core.HandleCrash(p)
			}
		}()
		return tickLoop(ctx, tick, g, r)
	})

	eg.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-keys.Done():
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Msg("input sampler exited before game end")
			return errSamplerExited
		}
	})

	return eg.Wait()
}

// tickLoop sleeps one tick, then updates and renders, until the game ends or ctx is cancelled
func tickLoop(ctx context.Context, tick time.Duration, g *game.Game, r *render.Renderer) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Err(context.Cause(ctx)).Msg("tick loop cancelled")
			return nil
		case <-ticker.C:
		}

		g.Update()
		if err := r.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if !g.Alive() {
			log.Info().Int("score", g.Score()).Uint64("ticks", g.Tick()).Msg("game over")
			return nil
		}
	}
}
