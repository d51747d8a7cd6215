package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme selects the color set for the dashboard.
type Theme int

const (
	ThemeStandard Theme = iota
	ThemeWhite
	ThemeBlack
)

// ParseTheme decodes a theme selector. "w"/"white" and "b"/"black" pick the
// monochrome themes; anything else, including "s", falls back to ThemeStandard.
func ParseTheme(s string) Theme {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return ThemeWhite
	case "b", "black":
		return ThemeBlack
	default:
		return ThemeStandard
	}
}

func (t Theme) String() string {
	switch t {
	case ThemeWhite:
		return "white"
	case ThemeBlack:
		return "black"
	default:
		return "standard"
	}
}

// RGB is a 24-bit foreground color.
type RGB struct {
	R, G, B uint8
}

// Color converts to a lipgloss hex color.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// Colors holds the foreground color of each dashboard section.
type Colors struct {
	Temp   RGB
	CPU    RGB
	Mem    RGB
	Uptime RGB
}

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
)

func (t Theme) Colors() Colors {
	switch t {
	case ThemeWhite:
		return Colors{Temp: white, CPU: white, Mem: white, Uptime: white}
	case ThemeBlack:
		return Colors{Temp: black, CPU: black, Mem: black, Uptime: black}
	default:
		return Colors{
			Temp:   RGB{255, 255, 0},
			CPU:    RGB{0, 220, 0},
			Mem:    RGB{255, 0, 255},
			Uptime: RGB{0, 230, 230},
		}
	}
}
