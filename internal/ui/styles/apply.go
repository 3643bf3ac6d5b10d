package styles

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeConfig is the resolved theme request: an optional preset base, an
// optional forced light/dark mode, and per-token color overrides.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ApplyTheme mutates the package color tokens: preset first (default preset
// when unnamed), then individual overrides. Mode forces light or dark
// rendering; when empty the terminal background is detected.
func ApplyTheme(cfg ThemeConfig) error {
	preset := DefaultPreset
	if cfg.Preset != "" {
		p, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q", cfg.Preset)
		}
		preset = p
	}
	for token, hex := range preset.Colors {
		setToken(token, hex)
	}

	for key, hex := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token %q", key)
		}
		if !isValidHexColor(hex) {
			return fmt.Errorf("invalid hex color %q for %q", hex, key)
		}
		setToken(token, hex)
	}

	switch cfg.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
	return nil
}

// setToken applies hex to both variants of the token's adaptive color.
// Presets carry a single value per token; light-specific tuning comes from
// the light preset or per-token overrides.
func setToken(token ColorToken, hex string) {
	if target, ok := tokenTargets[token]; ok {
		target.Dark = hex
		target.Light = hex
	}
}

func isValidToken(token ColorToken) bool {
	_, ok := tokenTargets[token]
	return ok
}

func isValidHexColor(hex string) bool {
	return hexColorRe.MatchString(hex)
}
