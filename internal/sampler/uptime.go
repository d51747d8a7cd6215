package sampler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

// ParseUptime returns the first field of /proc/uptime in seconds.
func ParseUptime(content string) (float64, error) {
	fields := strings.Split(strings.TrimSpace(content), " ")
	raw := fields[0]
	if raw == "" {
		return 0, errors.Parsef("Uptime source is empty")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Failed to convert uptime %q to a number", raw), "")
	}
	if v < 0 {
		return 0, errors.Parsef("Negative uptime %q", raw)
	}
	return v, nil
}

func (s *Sampler) Uptime() (float64, error) {
	content, err := s.readFile(s.paths.Uptime, "uptime")
	if err != nil {
		return 0, err
	}
	return ParseUptime(content)
}
