package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellsnake/config"
	"github.com/lixenwraith/cellsnake/input"
	"github.com/lixenwraith/cellsnake/terminal"
)

// fixedSource reports one key forever; closing done simulates the sampler exiting
type fixedSource struct {
	code input.Code
	done chan struct{}
}

func (s *fixedSource) Latest() input.Code    { return s.code }
func (s *fixedSource) Stop() error           { return nil }
func (s *fixedSource) Done() <-chan struct{} { return s.done }

func runWithin(t *testing.T, ctx context.Context, cfg *config.Config, src input.Source) (int, error) {
	t.Helper()
	type result struct {
		score int
		err   error
	}
	out := make(chan result, 1)
	go func() {
		score, err := run(ctx, cfg, terminal.NewMemorySurface(40, 16, cfg.Blank), src, nil)
		out <- result{score, err}
	}()

	select {
	case res := <-out:
		return res.score, res.err
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
		return 0, nil
	}
}

func TestRunFailsWhenSamplerExits(t *testing.T) {
	cfg := config.Default()
	cfg.Tick = time.Hour

	src := &fixedSource{code: input.KeyW, done: make(chan struct{})}
	close(src.done)

	_, err := runWithin(t, context.Background(), &cfg, src)
	assert.ErrorIs(t, err, errSamplerExited)
}

func TestRunEndsCleanlyOnQuit(t *testing.T) {
	cfg := config.Default()
	cfg.Tick = 5 * time.Millisecond

	src := &fixedSource{code: input.KeyQ, done: make(chan struct{})}
	score, err := runWithin(t, context.Background(), &cfg, src)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Tick = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fixedSource{code: input.KeyW, done: make(chan struct{})}
	_, err := runWithin(t, ctx, &cfg, src)
	assert.NoError(t, err)
}

func TestRunAcceptsSampler(t *testing.T) {
	cfg := config.Default()
	cfg.Tick = 5 * time.Millisecond

	s := input.NewSampler(input.NewScriptHook(true, input.KeyQ), input.NewSlot(input.KeyW), time.Millisecond)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	_, err := runWithin(t, context.Background(), &cfg, s)
	assert.NoError(t, err)
}
