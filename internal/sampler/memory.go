package sampler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/feo/internal/errors"
	"github.com/Dicklesworthstone/feo/internal/model"
)

// /proc/meminfo keys.
const (
	KeyMemTotal     = "MemTotal"
	KeySwapTotal    = "SwapTotal"
	KeyMemAvailable = "MemAvailable"
	KeySwapFree     = "SwapFree"
)

// ParseMemory extracts the KiB values following ramKey and swapKey in
// meminfo-style content. Tokens are split on ':', ' ' and newline.
func ParseMemory(content, ramKey, swapKey string) (model.Memory, error) {
	tokens := strings.FieldsFunc(content, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\n'
	})

	ram, err := valueAfter(tokens, ramKey)
	if err != nil {
		return model.Memory{}, err
	}
	swap, err := valueAfter(tokens, swapKey)
	if err != nil {
		return model.Memory{}, err
	}
	return model.Memory{RAMKiB: ram, SwapKiB: swap}, nil
}

func valueAfter(tokens []string, key string) (float64, error) {
	for i, tok := range tokens {
		if tok != key {
			continue
		}
		if i+1 >= len(tokens) {
			return 0, errors.Parsef("No value follows %s", key)
		}
		raw := tokens[i+1]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Failed to convert %s value %q to a number", key, raw), "")
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.Parsef("Invalid %s value %q", key, raw)
		}
		return v, nil
	}
	return 0, errors.Parsef("Couldn't find position of %s", key)
}

func (s *Sampler) readMemory(ramKey, swapKey string) (model.Memory, error) {
	content, err := s.readFile(s.paths.MemInfo, "memory statistics")
	if err != nil {
		return model.Memory{}, err
	}
	return ParseMemory(content, ramKey, swapKey)
}

// TotalMemory reads total RAM and swap and formats their unit strings once.
func (s *Sampler) TotalMemory() (model.TotalMemory, error) {
	m, err := s.readMemory(KeyMemTotal, KeySwapTotal)
	if err != nil {
		return model.TotalMemory{}, err
	}
	return model.NewTotalMemory(m), nil
}

// FreeMemory reads available RAM and free swap.
func (s *Sampler) FreeMemory() (model.Memory, error) {
	return s.readMemory(KeyMemAvailable, KeySwapFree)
}
