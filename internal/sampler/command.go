package sampler

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

// Runner executes an external command and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. No timeout is applied; a hung
// command blocks the caller until ctx is cancelled.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// runText runs a command and returns its stdout as text.
func (s *Sampler) runText(ctx context.Context, suggestion, name string, args ...string) (string, error) {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	out, err := s.run.Output(ctx, name, args...)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSource,
			fmt.Sprintf("Failed to execute %s", cmdline), suggestion)
	}
	if !utf8.Valid(out) {
		return "", errors.New(errors.ErrEncoding,
			fmt.Sprintf("Output of %s is not valid UTF-8", cmdline), "")
	}
	return string(out), nil
}
