package sampler

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

const (
	testMeminfo = `MemTotal:        3884328 kB
MemFree:          934580 kB
MemAvailable:    2796708 kB
Buffers:          145560 kB
Cached:          1762004 kB
SwapCached:            0 kB
SwapTotal:        102396 kB
SwapFree:          92156 kB
`
	testStat = `cpu  2255 34 2290 22625563 6290 127 456 0 0 0
cpu0 1132 34 1441 11311718 3675 127 438 0 0 0
cpu1 1123 0 849 11313845 2614 0 18 0 0 0
intr 114930548 113199788 3 0 5 263 0 4 [... lots more numbers ...]
ctxt 1990473
btime 1062191376
processes 2915
`
	testThermal = "48312\n"
	testUptime  = "350735.47 234388.90\n"
)

// fakeRunner serves canned command output keyed by the full command line.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	out, ok := f.outputs[key]
	if !ok {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return []byte(out), nil
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: map[string]string{
			"nproc":                 "2\n",
			"vcgencmd measure_temp": "temp=47.2'C\n",
		},
		errs: map[string]error{},
	}
}

func linuxHost(context.Context) (string, string, error) { return "linux", "raspbian", nil }

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	p := DefaultPaths()
	require.NoError(t, afero.WriteFile(fs, p.MemInfo, []byte(testMeminfo), 0o444))
	require.NoError(t, afero.WriteFile(fs, p.Stat, []byte(testStat), 0o444))
	require.NoError(t, afero.WriteFile(fs, p.Thermal, []byte(testThermal), 0o444))
	require.NoError(t, afero.WriteFile(fs, p.Uptime, []byte(testUptime), 0o444))
	return fs
}

func newTestSampler(t *testing.T, gpu bool) (*Sampler, afero.Fs, *fakeRunner) {
	t.Helper()
	fs := newTestFs(t)
	run := newFakeRunner()
	s := New(Options{
		Fs:       fs,
		Runner:   run,
		GPU:      gpu,
		HostInfo: linuxHost,
	})
	return s, fs, run
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{})

	assert.Equal(t, DefaultPaths(), s.paths)
	assert.IsType(t, ExecRunner{}, s.run)
	assert.NotNil(t, s.fs)
	assert.NotNil(t, s.hostInfo)
	assert.NotNil(t, s.log)
	assert.False(t, s.GPU())
}

func TestSnapshot(t *testing.T) {
	s, _, run := newTestSampler(t, false)

	snap, err := s.Snapshot(context.Background(), 2)
	require.NoError(t, err)

	assert.InDelta(t, 48.312, snap.Temps.CPU, 1e-9)
	assert.Nil(t, snap.Temps.GPU)
	assert.Equal(t, []uint64{1132 + 1441, 1123 + 849}, []uint64(snap.CPUTimes))
	assert.Equal(t, 2796708.0, snap.MemFree.RAMKiB)
	assert.Equal(t, 92156.0, snap.MemFree.SwapKiB)
	assert.InDelta(t, 350735.47, snap.Uptime, 1e-9)
	assert.Empty(t, run.calls, "no command should run without GPU monitoring")
}

func TestSnapshot_WithGPU(t *testing.T) {
	s, _, run := newTestSampler(t, true)

	snap, err := s.Snapshot(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, snap.Temps.GPU)
	assert.InDelta(t, 47.2, *snap.Temps.GPU, 1e-9)
	assert.Equal(t, []string{"vcgencmd measure_temp"}, run.calls)
}

func TestSnapshot_FailurePropagates(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(fs afero.Fs, run *fakeRunner)
		gpu      bool
		wantCode string
	}{
		{
			name:     "thermal zone missing",
			mutate:   func(fs afero.Fs, _ *fakeRunner) { _ = fs.Remove(DefaultPaths().Thermal) },
			wantCode: errors.ErrSource,
		},
		{
			name: "meminfo without MemAvailable",
			mutate: func(fs afero.Fs, _ *fakeRunner) {
				_ = afero.WriteFile(fs, DefaultPaths().MemInfo, []byte("MemTotal: 100 kB\nSwapFree: 0 kB\n"), 0o444)
			},
			wantCode: errors.ErrParse,
		},
		{
			name:     "vcgencmd missing",
			mutate:   func(_ afero.Fs, run *fakeRunner) { delete(run.outputs, "vcgencmd measure_temp") },
			gpu:      true,
			wantCode: errors.ErrSource,
		},
		{
			name:     "vcgencmd emits invalid utf-8",
			mutate:   func(_ afero.Fs, run *fakeRunner) { run.outputs["vcgencmd measure_temp"] = "temp=\xff\xfe'C" },
			gpu:      true,
			wantCode: errors.ErrEncoding,
		},
		{
			name:     "fewer cores in stat than requested",
			mutate:   func(fs afero.Fs, _ *fakeRunner) { _ = afero.WriteFile(fs, DefaultPaths().Stat, []byte("cpu0 1 2 3 4\n"), 0o444) },
			wantCode: errors.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs, run := newTestSampler(t, tt.gpu)
			tt.mutate(fs, run)

			_, err := s.Snapshot(context.Background(), 2)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestCustomPaths(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/fixtures/uptime", []byte("12.5 3.0\n"), 0o444))

	s := New(Options{Fs: fs, Paths: Paths{Uptime: "/fixtures/uptime"}})

	up, err := s.Uptime()
	require.NoError(t, err)
	assert.Equal(t, 12.5, up)

	_, err = s.CPUTemp()
	assert.True(t, errors.IsCode(err, errors.ErrSource))
}

func TestNew_DefaultsEachEmptyPath(t *testing.T) {
	def := DefaultPaths()
	tests := []struct {
		name  string
		paths Paths
		want  Paths
	}{
		{name: "all empty", paths: Paths{}, want: def},
		{
			name:  "only uptime set",
			paths: Paths{Uptime: "/fixtures/uptime"},
			want:  Paths{MemInfo: def.MemInfo, Stat: def.Stat, Thermal: def.Thermal, Uptime: "/fixtures/uptime"},
		},
		{
			name:  "only thermal empty",
			paths: Paths{MemInfo: "/m", Stat: "/s", Uptime: "/u"},
			want:  Paths{MemInfo: "/m", Stat: "/s", Thermal: def.Thermal, Uptime: "/u"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(Options{Paths: tt.paths}).paths)
		})
	}
}
