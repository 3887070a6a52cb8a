package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/attuned.commitlint/internal/commit"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorPurple     = lipgloss.Color("#AA55FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorDarkGray   = lipgloss.Color("8") // ANSI 8
)

// TypeColor picks a display color for a commit type
func TypeColor(t commit.Type) lipgloss.Color {
	switch t {
	case commit.TypeFeat:
		return ColorGreen
	case commit.TypeFix:
		return ColorRed
	case commit.TypeChore:
		return ColorDarkGray
	case commit.TypeDocs:
		return ColorBlue
	case commit.TypeStyle:
		return ColorMagenta
	case commit.TypeRefactor:
		return ColorPurple
	case commit.TypePerf:
		return ColorOrange
	case commit.TypeTest:
		return ColorYellow
	default:
		return ColorWhite
	}
}

// asciiOnly is true when the terminal cannot be trusted with unicode icons
var asciiOnly = termenv.EnvColorProfile() == termenv.Ascii

// StatusIcon returns the icon and color for a lint status name
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "passed":
		return pick("✓", "ok"), ColorGreen
	case "failed":
		return pick("✗", "x"), ColorRed
	case "skipped":
		return pick("⊘", "-"), ColorYellow
	default:
		return pick("·", "."), ColorWhite
	}
}

func pick(unicode, ascii string) string {
	if asciiOnly {
		return ascii
	}
	return unicode
}
