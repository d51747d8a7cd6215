package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Dicklesworthstone/feo/internal/model"
)

const ruleWidth = 30

// Renderer redraws the dashboard in place on a terminal.
type Renderer struct {
	out *termenv.Output

	tempStyle   lipgloss.Style
	cpuStyle    lipgloss.Style
	memStyle    lipgloss.Style
	uptimeStyle lipgloss.Style
}

// NewRenderer writes to w using the given color profile. Pass
// termenv.EnvColorProfile() for a real terminal and termenv.Ascii for plain text.
func NewRenderer(w io.Writer, colors Colors, profile termenv.Profile) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)

	return &Renderer{
		out:         termenv.NewOutput(w, termenv.WithProfile(profile)),
		tempStyle:   lr.NewStyle().Foreground(colors.Temp.Color()),
		cpuStyle:    lr.NewStyle().Foreground(colors.CPU.Color()),
		memStyle:    lr.NewStyle().Foreground(colors.Mem.Color()),
		uptimeStyle: lr.NewStyle().Foreground(colors.Uptime.Color()),
	}
}

// Render clears the screen and prints one frame.
func (r *Renderer) Render(f model.Frame) error {
	r.out.ClearScreen()
	_, err := io.WriteString(r.out, strings.Join(r.Lines(f), "\n")+"\n")
	return err
}

// Lines formats a frame without writing it.
func (r *Renderer) Lines(f model.Frame) []string {
	s := f.Snapshot
	rule := strings.Repeat("-", ruleWidth)

	lines := []string{rule, r.tempLine("CPU", s.Temps.CPU)}
	if s.Temps.GPU != nil {
		lines = append(lines, r.tempLine("GPU", *s.Temps.GPU))
	}

	for i, load := range f.Loads {
		lines = append(lines, r.cpuStyle.Render(fmt.Sprintf("CPU%d", i+1))+
			fmt.Sprintf("[%-20s]%3d%%", LoadBar(load), load))
	}

	used, _ := f.Total.Used(s.MemFree)
	ramFraction := model.FormatMemory(used.RAMKiB) + "/" + f.Total.RAMUnit
	swapFraction := model.FormatMemory(used.SwapKiB) + "/" + f.Total.SwapUnit
	lines = append(lines,
		r.memStyle.Render("RAM")+fmt.Sprintf(":%26s", ramFraction),
		r.memStyle.Render("Swap")+fmt.Sprintf(":%25s", swapFraction),
		r.uptimeStyle.Render("Uptime")+fmt.Sprintf(": %22s", FormatUptime(s.Uptime)),
		rule,
	)
	return lines
}

func (r *Renderer) tempLine(component string, temp float64) string {
	return r.tempStyle.Render(component+" temp") + fmt.Sprintf(":%18.1f° C", temp)
}
