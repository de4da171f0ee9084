package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for terminal output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Infected is the color used for infected house cells.
	Infected string
	// Clean is the color used for uninfected house cells.
	Clean string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Infected:  "\033[38;5;196m", // Red
		Clean:     "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// PlainTheme disables all escape codes; used when output is not a TTY
	// or when NO_COLOR is set.
	PlainTheme = Theme{Name: "plain"}
)

var (
	activeTheme = DarkTheme
	themeMu     sync.RWMutex
)

// InitTheme selects the active theme. Color output is disabled when the
// NO_COLOR convention is in effect or when forcePlain is set.
func InitTheme(forcePlain bool) {
	themeMu.Lock()
	defer themeMu.Unlock()
	if forcePlain || os.Getenv("NO_COLOR") != "" {
		activeTheme = PlainTheme
		return
	}
	activeTheme = DarkTheme
}

// Active returns the currently selected theme.
func Active() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return activeTheme
}

// ColorInfected returns the escape code for infected cells.
func ColorInfected() string { return Active().Infected }

// ColorClean returns the escape code for clean cells.
func ColorClean() string { return Active().Clean }

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return Active().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return Active().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return Active().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return Active().Reset }
