package sampler

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

func gopsutilHostInfo(ctx context.Context) (string, string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", "", err
	}
	return info.OS, info.Platform, nil
}

// Preflight checks once that every source is reachable, so an unsupported
// host is reported before the first frame is drawn.
func (s *Sampler) Preflight(ctx context.Context) error {
	osName, platform, err := s.hostInfo(ctx)
	if err != nil {
		return errors.Wrap(err, "Could not identify the host operating system")
	}
	if osName != "linux" {
		return errors.New(errors.ErrSource,
			fmt.Sprintf("Unsupported host OS %q", osName),
			"feo reads /proc and /sys and only runs on Linux")
	}
	s.log.Debug("host identified", zap.String("os", osName), zap.String("platform", platform))

	sources := []struct{ path, what string }{
		{s.paths.Thermal, "CPU temperature"},
		{s.paths.Stat, "cpu times"},
		{s.paths.MemInfo, "memory statistics"},
		{s.paths.Uptime, "uptime"},
	}
	for _, src := range sources {
		if _, err := s.readFile(src.path, src.what); err != nil {
			return err
		}
		s.log.Debug("source readable", zap.String("path", src.path))
	}

	if _, err := s.runText(ctx, "Install coreutils so that nproc is available", coreCountCommand); err != nil {
		return err
	}
	if s.gpu {
		if _, err := s.runText(ctx, "GPU temperature monitoring only works on a Raspberry Pi",
			gpuTempCommand, gpuTempArg); err != nil {
			return err
		}
	}
	return nil
}
