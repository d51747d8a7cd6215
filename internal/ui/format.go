package ui

import (
	"fmt"
	"strings"
)

const barGlyph = "|"

// LoadBar draws one glyph per 5 percent, rounded to the nearest glyph.
// The bar is not capped, so loads above 100 overflow the 20-column frame.
func LoadBar(percent int) string {
	if percent <= 0 {
		return ""
	}
	return strings.Repeat(barGlyph, (percent+2)/5)
}

// FormatUptime renders seconds as HH:MM:SS. Hours are unbounded and
// fractional seconds are dropped.
func FormatUptime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := uint64(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
