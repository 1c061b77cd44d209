package config

import (
	"os"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

// DefaultColorScheme returns the default board colors
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns the scheme used when color is disabled
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// applyNoColor switches the preset to monochrome when NO_COLOR is set.
// Colors set explicitly in the config or theme file are kept.
func (c *Config) applyNoColor() {
	if os.Getenv("NO_COLOR") != "" {
		c.ColorScheme.Preset = colors.Monochrome().Preset
	}
}
