package ui

import "github.com/charmbracelet/lipgloss"

// ASCII art for the titlesink header as single string to preserve exact formatting
const titlesinkASCII = `  ████    ██    ████    ████                    ██                ████
██████████      ████    ████                                      ████
  ████    ████  ██████  ████  ██████████  ██████████  ██████████  ████  ████
  ████    ████  ████    ████  ██████████  ██████      ████  ████  ██████████
  ████    ████  ████    ████  ████        ██████████  ████  ████  ████████
  ████    ████  ████    ████  ██████████      ██████  ████  ████  ██████████
  ██████  ████  ██████  ████  ██████████  ██████████  ████  ████  ████  ████`

// FormatASCIIHeader renders the titlesink ASCII header with RAMA theme
// Render as single block to preserve spacing and structure
func FormatASCIIHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(RAMARed).
		Bold(true)

	return headerStyle.Render(titlesinkASCII)
}
