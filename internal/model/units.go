package model

import (
	"fmt"
	"strconv"
)

// FormatMemory renders a KiB value with a binary unit suffix.
// Thresholds are decimal (1000, 1000000) while divisors are binary.
func FormatMemory(kib float64) string {
	switch {
	case kib > 1000000:
		return fmt.Sprintf("%.2fGi", kib/1048576)
	case kib > 1000:
		return fmt.Sprintf("%.2fMi", kib/1024)
	default:
		return strconv.FormatFloat(kib, 'f', -1, 64) + "Ki"
	}
}

// NewTotalMemory caches the formatted totals.
func NewTotalMemory(m Memory) TotalMemory {
	return TotalMemory{
		Memory:   m,
		RAMUnit:  FormatMemory(m.RAMKiB),
		SwapUnit: FormatMemory(m.SwapKiB),
	}
}
