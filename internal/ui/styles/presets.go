package styles

// Preset is a named set of color token values.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// DefaultPreset matches the zero-config appearance.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Balanced colors for dark and light terminals",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#EAEAEA",
		TokenTextSecondary: "#B8B8C8",
		TokenTextMuted:     "#6C6C80",
		TokenStatusSuccess: "#73F59F",
		TokenStatusError:   "#FF8787",
		TokenBorderDefault: "#3D3D5C",
		TokenBorderFocused: "#54A0FF",
		TokenPrompt:        "#73F59F",
	},
}

// Presets holds the built-in themes by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"dark": {
		Name:        "dark",
		Description: "Muted graphite palette",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#D8DEE9",
			TokenTextSecondary: "#A3ABB8",
			TokenTextMuted:     "#5C6370",
			TokenStatusSuccess: "#98C379",
			TokenStatusError:   "#E06C75",
			TokenBorderDefault: "#3E4451",
			TokenBorderFocused: "#61AFEF",
			TokenPrompt:        "#98C379",
		},
	},
	"light": {
		Name:        "light",
		Description: "Ink on paper",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#2E3440",
			TokenTextSecondary: "#4C566A",
			TokenTextMuted:     "#9099AB",
			TokenStatusSuccess: "#1B7F4B",
			TokenStatusError:   "#C0392B",
			TokenBorderDefault: "#C8CED9",
			TokenBorderFocused: "#3B6EA8",
			TokenPrompt:        "#1B7F4B",
		},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Maximum legibility",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#FFFFFF",
			TokenTextSecondary: "#FFFFFF",
			TokenTextMuted:     "#C0C0C0",
			TokenStatusSuccess: "#00FF00",
			TokenStatusError:   "#FF0000",
			TokenBorderDefault: "#FFFFFF",
			TokenBorderFocused: "#FFFF00",
			TokenPrompt:        "#00FF00",
		},
	},
}
