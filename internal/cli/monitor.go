package cli

import (
	"context"
	"io"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/Dicklesworthstone/feo/internal/config"
	"github.com/Dicklesworthstone/feo/internal/logger"
	"github.com/Dicklesworthstone/feo/internal/monitor"
	"github.com/Dicklesworthstone/feo/internal/sampler"
	"github.com/Dicklesworthstone/feo/internal/ui"
)

// monitorCommand checks the host once, then draws the dashboard until ctx is cancelled.
func monitorCommand(ctx context.Context, cfg config.Config, out io.Writer) error {
	log, err := logger.New(false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s := sampler.New(sampler.Options{GPU: cfg.GPU, Logger: log})
	if err := s.Preflight(ctx); err != nil {
		return err
	}

	theme := ui.ParseTheme(cfg.Theme)
	log.Debug("starting monitor",
		zap.Duration("delay", cfg.EffectiveDelay()),
		zap.Bool("gpu", s.GPU()),
		zap.Stringer("theme", theme))

	profile := termenv.NewOutput(out).EnvColorProfile()
	r := ui.NewRenderer(out, theme.Colors(), profile)
	return monitor.New(s, r, cfg.EffectiveDelay(), log).Run(ctx)
}
