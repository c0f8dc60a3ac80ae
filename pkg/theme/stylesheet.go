package theme

import (
	stderrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/errors"
	"github.com/go-drift/richtext/pkg/fonts"
)

// Stylesheet is the YAML form of a [Theme]. Every field is optional;
// absent fields keep the default theme's values.
type Stylesheet struct {
	Headings HeadingConfig `yaml:"headings,omitempty"`
	Code     CodeConfig    `yaml:"code,omitempty"`
	Colors   ColorConfig   `yaml:"colors,omitempty"`
	List     ListConfig    `yaml:"list,omitempty"`
	Rule     string        `yaml:"rule,omitempty"`
}

// HeadingConfig configures heading styles.
type HeadingConfig struct {
	// Sizes are font sizes in points for heading levels 1 upward,
	// at most 6 entries.
	Sizes []float64 `yaml:"sizes,omitempty"`
	// Weight is a font weight name or a number from 100 to 900.
	Weight string `yaml:"weight,omitempty"`
}

// CodeConfig configures inline code and code blocks.
type CodeConfig struct {
	Family string `yaml:"family,omitempty"`
	// Syntax is the chroma style name for code blocks.
	Syntax string `yaml:"syntax,omitempty"`
}

// ColorConfig configures text colors, in #RGB, #RRGGBB, or #RRGGBBAA form.
type ColorConfig struct {
	Link  string `yaml:"link,omitempty"`
	Muted string `yaml:"muted,omitempty"`
}

// ListConfig configures list rendering.
type ListConfig struct {
	Bullet string `yaml:"bullet,omitempty"`
}

// Load reads a YAML stylesheet file and applies it over the default
// theme. A missing file is not an error and returns the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML stylesheet and applies it over the default theme.
// Malformed YAML and invalid field values produce a *errors.ParseError.
func Parse(data []byte) (*Theme, error) {
	var sheet Stylesheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, &errors.ParseError{Format: "stylesheet", Err: err}
	}
	return sheet.Theme()
}

// Theme resolves the stylesheet into a [Theme] over the defaults.
func (s *Stylesheet) Theme() (*Theme, error) {
	t := Default()

	if len(s.Headings.Sizes) > len(t.HeadingSizes) {
		return nil, &errors.ParseError{
			Format: "stylesheet",
			Reason: fmt.Sprintf("headings.sizes has %d entries, want at most %d", len(s.Headings.Sizes), len(t.HeadingSizes)),
		}
	}
	for i, size := range s.Headings.Sizes {
		if size <= 0 {
			return nil, &errors.ParseError{
				Format: "stylesheet",
				Reason: fmt.Sprintf("headings.sizes[%d] is %v, want a positive size", i, size),
			}
		}
		t.HeadingSizes[i] = size
	}
	if s.Headings.Weight != "" {
		weight, err := fonts.ParseWeight(s.Headings.Weight)
		if err != nil {
			return nil, fmt.Errorf("stylesheet headings.weight: %w", err)
		}
		t.HeadingWeight = weight
	}

	if s.Code.Family != "" {
		t.CodeFamily = s.Code.Family
	}
	if s.Code.Syntax != "" {
		t.Syntax = s.Code.Syntax
	}

	if s.Colors.Link != "" {
		color, err := attributed.ParseColor(s.Colors.Link)
		if err != nil {
			return nil, fmt.Errorf("stylesheet colors.link: %w", err)
		}
		t.LinkColor = color
	}
	if s.Colors.Muted != "" {
		color, err := attributed.ParseColor(s.Colors.Muted)
		if err != nil {
			return nil, fmt.Errorf("stylesheet colors.muted: %w", err)
		}
		t.MutedColor = color
	}

	if s.List.Bullet != "" {
		t.Bullet = s.List.Bullet
	}
	if s.Rule != "" {
		t.Rule = s.Rule
	}
	return t, nil
}
