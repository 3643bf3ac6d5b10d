// Package styles contains Lip Gloss style definitions and the gitplay theme
// system. Color tokens are package-level adaptive colors mutated by
// ApplyTheme; views read them at render time so a live theme reload takes
// effect on the next frame.
package styles

import "github.com/charmbracelet/lipgloss"

// ColorToken names a themeable color in dot notation.
type ColorToken string

const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusError   ColorToken = "status.error"
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocused ColorToken = "border.focused"
	TokenPrompt        ColorToken = "prompt"
)

// Adaptive color tokens. ApplyTheme rewrites these in place.
var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#EAEAEA"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#3D3D5C", Dark: "#B8B8C8"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8888A0", Dark: "#6C6C80"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#1B7F4B", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#C8C8D8", Dark: "#3D3D5C"}
	BorderFocusedColor = lipgloss.AdaptiveColor{Light: "#5454FF", Dark: "#54A0FF"}
	PromptColor        = lipgloss.AdaptiveColor{Light: "#1B7F4B", Dark: "#73F59F"}
)

// tokenTargets maps each token to the variable it themes.
var tokenTargets = map[ColorToken]*lipgloss.AdaptiveColor{
	TokenTextPrimary:   &TextPrimaryColor,
	TokenTextSecondary: &TextSecondaryColor,
	TokenTextMuted:     &TextMutedColor,
	TokenStatusSuccess: &StatusSuccessColor,
	TokenStatusError:   &StatusErrorColor,
	TokenBorderDefault: &BorderDefaultColor,
	TokenBorderFocused: &BorderFocusedColor,
	TokenPrompt:        &PromptColor,
}

// PromptStyle returns the style for the input prompt label.
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PromptColor).Bold(true)
}

// EchoStyle returns the style for echoed command lines in the log.
func EchoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextSecondaryColor)
}

// BannerStyle returns the style for the welcome banner.
func BannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextMutedColor)
}

// HintStyle returns the style for footer key hints.
func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
}
