package render

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition referring to named colors
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
}

// StylesConfig is the complete styles file
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// DefaultStyles parses the embedded styles; a broken file yields unstyled output
func DefaultStyles() Styles {
	styles, err := ParseStyles(embeddedStyles)
	if err != nil {
		return Styles{}
	}
	return styles
}

// ParseStyles builds styles from YAML data
func ParseStyles(data []byte) (Styles, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	styles := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline).
			MarginBottom(def.MarginBottom)
		if def.Foreground != "" {
			color, ok := cfg.Colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s uses undefined color %s", name, def.Foreground)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		}
		styles[name] = style
	}
	return styles, nil
}

// Get returns the named style, or an empty style if unknown
func (s Styles) Get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
