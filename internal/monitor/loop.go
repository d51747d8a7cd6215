// Package monitor drives the sample-render-sleep cycle.
package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Dicklesworthstone/feo/internal/logger"
	"github.com/Dicklesworthstone/feo/internal/model"
)

// State of the sample loop.
type State int

const (
	// Priming: the first CPU-time sample is taken and nothing is drawn yet.
	Priming State = iota
	// Running: sample, render, sleep, repeat until interrupted.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "priming"
}

// Source provides the readings the loop needs. *sampler.Sampler implements it.
type Source interface {
	TotalMemory() (model.TotalMemory, error)
	CoreCount(ctx context.Context) (int, error)
	CPUTimes(cores int) (model.CPUTimes, error)
	Snapshot(ctx context.Context, cores int) (model.Snapshot, error)
}

// Renderer draws one frame. *ui.Renderer implements it.
type Renderer interface {
	Render(f model.Frame) error
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop owns the previous CPU-time sample between ticks.
type Loop struct {
	source       Source
	renderer     Renderer
	delaySeconds int
	sleep        SleepFunc
	log          *zap.Logger
	state        State

	// Set after the first warning of each kind; anomalies log once per run.
	warnedCounter bool
	warnedMemory  bool
}

// New builds a loop that samples every delay, truncated to whole seconds.
// A delay under one second is treated as 2 seconds.
func New(source Source, renderer Renderer, delay time.Duration, log *zap.Logger) *Loop {
	delaySeconds := int(delay / time.Second)
	if delaySeconds <= 0 {
		delaySeconds = 2
	}
	return &Loop{
		source:       source,
		renderer:     renderer,
		delaySeconds: delaySeconds,
		sleep:        sleepContext,
		log:          logger.OrNop(log),
		state:        Priming,
	}
}

// WithSleep replaces the sleep between ticks.
func (l *Loop) WithSleep(fn SleepFunc) *Loop {
	l.sleep = fn
	return l
}

// State reports the current loop state.
func (l *Loop) State() State { return l.state }

// Run samples and renders until ctx is cancelled, which returns nil.
// Any other read or render failure stops the loop and is returned unchanged.
func (l *Loop) Run(ctx context.Context) error {
	total, err := l.source.TotalMemory()
	if err != nil {
		return err
	}
	cores, err := l.source.CoreCount(ctx)
	if err != nil {
		return l.unlessCancelled(ctx, err)
	}
	prev, err := l.source.CPUTimes(cores)
	if err != nil {
		return err
	}

	l.state = Running
	l.log.Debug("sample loop running",
		zap.Int("cores", cores),
		zap.Int("delay_seconds", l.delaySeconds))

	delay := time.Duration(l.delaySeconds) * time.Second
	for {
		prev, err = l.tick(ctx, total, prev)
		if err != nil {
			return l.unlessCancelled(ctx, err)
		}
		if err := l.sleep(ctx, delay); err != nil {
			l.log.Debug("sample loop stopped", zap.Error(err))
			return nil
		}
	}
}

// unlessCancelled drops err when ctx was cancelled while a command ran,
// since the command was killed by the cancellation.
func (l *Loop) unlessCancelled(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		l.log.Debug("sample loop interrupted", zap.Error(err))
		return nil
	}
	return err
}

// tick takes one snapshot, renders it, and returns the sample to keep.
func (l *Loop) tick(ctx context.Context, total model.TotalMemory, prev model.CPUTimes) (model.CPUTimes, error) {
	snap, err := l.source.Snapshot(ctx, len(prev))
	if err != nil {
		return nil, err
	}

	loads := CPULoad(prev, snap.CPUTimes, l.delaySeconds)
	for i := range loads {
		if snap.CPUTimes[i] < prev[i] && !l.warnedCounter {
			l.warnedCounter = true
			l.log.Warn("cpu tick counter went backwards",
				zap.Int("core", i),
				zap.Uint64("previous", prev[i]),
				zap.Uint64("current", snap.CPUTimes[i]))
		}
	}
	if _, ok := total.Used(snap.MemFree); !ok && !l.warnedMemory {
		l.warnedMemory = true
		l.log.Warn("free memory exceeds total",
			zap.Float64("total_ram_kib", total.RAMKiB),
			zap.Float64("free_ram_kib", snap.MemFree.RAMKiB),
			zap.Float64("total_swap_kib", total.SwapKiB),
			zap.Float64("free_swap_kib", snap.MemFree.SwapKiB))
	}

	if err := l.renderer.Render(model.Frame{
		Snapshot: snap,
		Previous: prev,
		Loads:    loads,
		Total:    total,
	}); err != nil {
		return nil, err
	}
	return snap.CPUTimes, nil
}

// CPULoad returns (current-previous)/delaySeconds per core, truncated.
// The result is not clamped to 100. A core whose counter decreased reports 0.
func CPULoad(prev, cur model.CPUTimes, delaySeconds int) []int {
	if delaySeconds <= 0 {
		delaySeconds = 2
	}
	n := len(cur)
	if len(prev) < n {
		n = len(prev)
	}
	loads := make([]int, n)
	for i := 0; i < n; i++ {
		if cur[i] < prev[i] {
			continue
		}
		loads[i] = int((cur[i] - prev[i]) / uint64(delaySeconds))
	}
	return loads
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
