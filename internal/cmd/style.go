package cmd

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// sourceStyle returns a style whose color is a stable hash of the
// source path, so each file keeps its color across progress lines.
func sourceStyle(path string) lipgloss.Style {
	h := colorhash.HashString(path)
	// Stay inside the 256-color cube, skipping the dark 16-color block.
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(h%214 + 17)))
}
