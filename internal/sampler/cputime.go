package sampler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/feo/internal/errors"
	"github.com/Dicklesworthstone/feo/internal/model"
)

// ParseCPUTimes returns user+system ticks for cpu0..cpu{cores-1} from
// /proc/stat content, in core order regardless of line order.
func ParseCPUTimes(content string, cores int) (model.CPUTimes, error) {
	tokens := strings.FieldsFunc(content, func(r rune) bool {
		return r == ' ' || r == '\n'
	})

	// Fields after a cpuN label: user nice system idle iowait irq softirq ...
	labels := make(map[string]int)
	for i, tok := range tokens {
		if !strings.HasPrefix(tok, "cpu") {
			continue
		}
		if _, seen := labels[tok]; !seen {
			labels[tok] = i
		}
	}

	times := make(model.CPUTimes, 0, cores)
	for i := 0; i < cores; i++ {
		label := fmt.Sprintf("cpu%d", i)
		pos, ok := labels[label]
		if !ok {
			return nil, errors.Parsef("Couldn't find position of %s", label)
		}
		user, err := tickField(tokens, pos+1, label, "user")
		if err != nil {
			return nil, err
		}
		system, err := tickField(tokens, pos+3, label, "system")
		if err != nil {
			return nil, err
		}
		times = append(times, user+system)
	}
	return times, nil
}

func tickField(tokens []string, idx int, label, field string) (uint64, error) {
	if idx >= len(tokens) {
		return 0, errors.Parsef("Missing %s field for %s", field, label)
	}
	v, err := strconv.ParseUint(tokens[idx], 10, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Failed to parse %s field for %s", field, label), "")
	}
	return v, nil
}

// CPUTimes reads per-core busy ticks for the given core count.
func (s *Sampler) CPUTimes(cores int) (model.CPUTimes, error) {
	content, err := s.readFile(s.paths.Stat, "cpu times")
	if err != nil {
		return nil, err
	}
	return ParseCPUTimes(content, cores)
}
