package sampler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

const coreCountCommand = "nproc"

// ParseCoreCount parses nproc output.
func ParseCoreCount(output string) (int, error) {
	raw := strings.TrimSpace(output)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Couldn't convert CPU count %q to an integer", raw), "")
	}
	if n < 1 {
		return 0, errors.Parsef("Invalid CPU count %d", n)
	}
	return n, nil
}

// CoreCount asks nproc for the number of logical CPUs. Called once at startup.
func (s *Sampler) CoreCount(ctx context.Context) (int, error) {
	out, err := s.runText(ctx, "Install coreutils so that nproc is available", coreCountCommand)
	if err != nil {
		return 0, err
	}
	n, err := ParseCoreCount(out)
	if err != nil {
		return 0, err
	}
	s.log.Debug("detected logical cpus", zap.Int("cores", n))
	return n, nil
}
