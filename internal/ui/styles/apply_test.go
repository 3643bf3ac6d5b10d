package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTheme_Default(t *testing.T) {
	err := ApplyTheme(ThemeConfig{})
	assert.NoError(t, err)
	assert.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	testPreset := Preset{
		Name:        "test",
		Description: "Test preset",
		Colors: map[ColorToken]string{
			TokenTextPrimary: "#FF0000",
		},
	}
	Presets["test"] = testPreset
	defer delete(Presets, "test")

	err := ApplyTheme(ThemeConfig{Preset: "test"})
	assert.NoError(t, err)
	assert.Equal(t, "#FF0000", TextPrimaryColor.Dark)
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"status.success": "#00FF00",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "#00FF00", StatusSuccessColor.Dark)
}

func TestApplyTheme_PresetWithOverride(t *testing.T) {
	// Color override takes precedence over the preset value.
	err := ApplyTheme(ThemeConfig{
		Preset: "high-contrast",
		Colors: map[string]string{
			"status.error": "#123456",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "#123456", StatusErrorColor.Dark)
	assert.Equal(t, Presets["high-contrast"].Colors[TokenStatusSuccess], StatusSuccessColor.Dark)
}

func TestApplyTheme_InvalidPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "nonexistent"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme preset")
}

func TestApplyTheme_InvalidToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"invalid.token": "#FF0000",
		},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color token")
}

func TestApplyTheme_InvalidHexColor(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"text.primary": "not-a-color",
		},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex color")
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#FFFFFF", true},
		{"#AbCdEf", true},
		{"FFFFFF", false},
		{"#FFFF", false},
		{"#GGG", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}

func TestPresets_AllTokensCovered(t *testing.T) {
	for name, preset := range Presets {
		for token := range tokenTargets {
			_, ok := preset.Colors[token]
			assert.True(t, ok, "preset %q missing token %q", name, token)
		}
	}
}
