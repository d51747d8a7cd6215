package sampler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

// GPU temperature helper available on Raspberry Pi OS.
const (
	gpuTempCommand = "vcgencmd"
	gpuTempArg     = "measure_temp"
)

// ParseCPUTemp converts a millidegree reading to degrees Celsius.
func ParseCPUTemp(content string) (float64, error) {
	raw := strings.TrimSpace(content)
	milli, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Could not convert CPU temp %q to a number", raw), "")
	}
	return milli / 1000, nil
}

// ParseGPUTemp reads the temperature out of vcgencmd output such as
// "temp=48.3'C". The value is the second token after splitting on '=' and '\''.
func ParseGPUTemp(output string) (float64, error) {
	parts := strings.Split(strings.ReplaceAll(output, "'", "="), "=")
	if len(parts) < 2 {
		return 0, errors.Parsef("Unexpected GPU temp output %q", strings.TrimSpace(output))
	}
	raw := strings.TrimSpace(parts[1])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Couldn't convert GPU temp %q to a number", raw), "")
	}
	return v, nil
}

// CPUTemp reads thermal zone 0.
func (s *Sampler) CPUTemp() (float64, error) {
	content, err := s.readFile(s.paths.Thermal, "CPU temperature")
	if err != nil {
		return 0, err
	}
	return ParseCPUTemp(content)
}

// GPUTemp runs vcgencmd measure_temp.
func (s *Sampler) GPUTemp(ctx context.Context) (float64, error) {
	out, err := s.runText(ctx, "GPU temperature monitoring only works on a Raspberry Pi",
		gpuTempCommand, gpuTempArg)
	if err != nil {
		return 0, err
	}
	return ParseGPUTemp(out)
}
