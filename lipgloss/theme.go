// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/revetio/revet"

// Compile-time interface verification.
var (
	_ revet.Theme           = (*Theme)(nil)
	_ revet.PaletteProvider = (*Theme)(nil)
)

// Theme implements revet.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  revet.Styles
	palette revet.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() revet.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() revet.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Badge backgrounds are very dark so the labels stay readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: revet.Styles{
			Authentic: revet.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#00360b",
			},
			Advertisement: revet.ColorPair{
				Foreground: "#fab387", // Peach
				Background: "#3a2104",
			},
			NoVisit: revet.ColorPair{
				Foreground: "#cba6f7", // Mauve
				Background: "#2a1640",
			},
			OffTopic: revet.ColorPair{
				Foreground: "#89b4fa", // Blue
				Background: "#0e2146",
			},
			Inappropriate: revet.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0010",
			},
			PersonalInfo: revet.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#3a2d04",
			},
			Fake: revet.ColorPair{
				Foreground: "#eba0ac", // Maroon
				Background: "#3a1016",
			},
			Suspicious: revet.ColorPair{
				Foreground: "#f2cdcd", // Flamingo
				Background: "#3a2424",
			},
			Unknown: revet.ColorPair{
				Foreground: "#a6adc8", // Muted gray
				Background: "#313244",
			},
			Positive: revet.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Negative: revet.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			Neutral: revet.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Error: revet.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0010",
			},
			Keyword: revet.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244", // Dark surface
			},
			Rating: revet.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
		},
		palette: revet.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Heading:   "#89b4fa",
			Muted:     "#6c7086",
			Accent:    "#89b4fa",
			Surface:   "#313244",
			Separator: "#45475a",

			Success: "#a6e3a1",
			Warning: "#f9e2af",
			Danger:  "#f38ba8",
			Info:    "#89dceb",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: revet.Styles{
			Authentic: revet.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4",
			},
			Advertisement: revet.ColorPair{
				Foreground: "#fe640b", // Peach
				Background: "#fae4d4",
			},
			NoVisit: revet.ColorPair{
				Foreground: "#8839ef", // Mauve
				Background: "#ead9fa",
			},
			OffTopic: revet.ColorPair{
				Foreground: "#1e66f5", // Blue
				Background: "#d9e4fa",
			},
			Inappropriate: revet.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4",
			},
			PersonalInfo: revet.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#faeed4",
			},
			Fake: revet.ColorPair{
				Foreground: "#e64553", // Maroon
				Background: "#f9dcde",
			},
			Suspicious: revet.ColorPair{
				Foreground: "#dd7878", // Flamingo
				Background: "#f7e3e3",
			},
			Unknown: revet.ColorPair{
				Foreground: "#6c6f85", // Muted gray
				Background: "#e6e9ef",
			},
			Positive: revet.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Negative: revet.ColorPair{
				Foreground: "#d20f39", // Red
			},
			Neutral: revet.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			Error: revet.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4",
			},
			Keyword: revet.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef", // Light surface
			},
			Rating: revet.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
		},
		palette: revet.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Heading:   "#1e66f5",
			Muted:     "#9ca0b0",
			Accent:    "#1e66f5",
			Surface:   "#e6e9ef",
			Separator: "#bcc0cc",

			Success: "#40a02b",
			Warning: "#df8e1d",
			Danger:  "#d20f39",
			Info:    "#04a5e5",
		},
	}
}
