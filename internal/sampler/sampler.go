package sampler

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Dicklesworthstone/feo/internal/errors"
	"github.com/Dicklesworthstone/feo/internal/logger"
	"github.com/Dicklesworthstone/feo/internal/model"
)

// Paths locates the kernel-exposed text sources.
type Paths struct {
	MemInfo string
	Stat    string
	Thermal string
	Uptime  string
}

// DefaultPaths returns the standard Linux locations.
func DefaultPaths() Paths {
	return Paths{
		MemInfo: "/proc/meminfo",
		Stat:    "/proc/stat",
		Thermal: "/sys/class/thermal/thermal_zone0/temp",
		Uptime:  "/proc/uptime",
	}
}

// withDefaults fills each empty path from def.
func (p Paths) withDefaults(def Paths) Paths {
	if p.MemInfo == "" {
		p.MemInfo = def.MemInfo
	}
	if p.Stat == "" {
		p.Stat = def.Stat
	}
	if p.Thermal == "" {
		p.Thermal = def.Thermal
	}
	if p.Uptime == "" {
		p.Uptime = def.Uptime
	}
	return p
}

// HostInfoFunc reports the host operating system and platform name.
type HostInfoFunc func(ctx context.Context) (osName, platform string, err error)

// Options configures a Sampler. Zero fields fall back to the real host.
type Options struct {
	Fs       afero.Fs
	Runner   Runner
	Paths    Paths
	GPU      bool
	HostInfo HostInfoFunc
	Logger   *zap.Logger
}

// Sampler reads one point-in-time Snapshot from procfs, sysfs, and helper commands.
// It holds no state between snapshots.
type Sampler struct {
	fs       afero.Fs
	run      Runner
	paths    Paths
	gpu      bool
	hostInfo HostInfoFunc
	log      *zap.Logger
}

func New(opts Options) *Sampler {
	s := &Sampler{
		fs:       opts.Fs,
		run:      opts.Runner,
		paths:    opts.Paths,
		gpu:      opts.GPU,
		hostInfo: opts.HostInfo,
		log:      logger.OrNop(opts.Logger),
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.run == nil {
		s.run = ExecRunner{}
	}
	s.paths = s.paths.withDefaults(DefaultPaths())
	if s.hostInfo == nil {
		s.hostInfo = gopsutilHostInfo
	}
	return s
}

// GPU reports whether GPU temperature is sampled.
func (s *Sampler) GPU() bool { return s.gpu }

// Snapshot reads every source once. Reads are sequential and not atomic
// across sources. Any failure aborts the whole snapshot.
func (s *Sampler) Snapshot(ctx context.Context, cores int) (model.Snapshot, error) {
	cpuTemp, err := s.CPUTemp()
	if err != nil {
		return model.Snapshot{}, err
	}

	temps := model.Temperatures{CPU: cpuTemp}
	if s.gpu {
		gpuTemp, err := s.GPUTemp(ctx)
		if err != nil {
			return model.Snapshot{}, err
		}
		temps.GPU = &gpuTemp
	}

	times, err := s.CPUTimes(cores)
	if err != nil {
		return model.Snapshot{}, err
	}

	free, err := s.FreeMemory()
	if err != nil {
		return model.Snapshot{}, err
	}

	uptime, err := s.Uptime()
	if err != nil {
		return model.Snapshot{}, err
	}

	return model.Snapshot{
		Temps:    temps,
		CPUTimes: times,
		MemFree:  free,
		Uptime:   uptime,
	}, nil
}

// Helpers
func (s *Sampler) readFile(path, what string) (string, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSource,
			fmt.Sprintf("Could not read %s from %s", what, path),
			"feo is designed to run on Linux with procfs and sysfs mounted")
	}
	return string(b), nil
}
