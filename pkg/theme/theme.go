// Package theme defines how markdown elements map onto text styles, with
// optional YAML stylesheets for customization.
package theme

import (
	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/fonts"
	"github.com/go-drift/richtext/pkg/styled"
)

// Theme contains the text styling configuration for rendered markdown.
type Theme struct {
	// HeadingSizes maps heading levels 1 through 6 to font sizes in points.
	HeadingSizes [6]float64

	// HeadingWeight is the font weight applied to heading text.
	HeadingWeight fonts.Weight

	// CodeFamily is the font family for inline code and code blocks.
	CodeFamily string

	// LinkColor is the foreground color of link text.
	LinkColor attributed.Color

	// MutedColor is the foreground color of de-emphasized text such as
	// strikethrough runs, image alt text, and block quote markers.
	MutedColor attributed.Color

	// Syntax is the chroma style name for highlighted code blocks.
	// Empty means the highlighter's default style.
	Syntax string

	// Bullet is the marker prefixed to unordered list items.
	Bullet string

	// Rule is the text rendered for a horizontal rule.
	Rule string
}

// Default returns the default theme. Colors come from the Material 3
// baseline palette.
func Default() *Theme {
	return &Theme{
		HeadingSizes:  [6]float64{28, 24, 20, 17, 15, 14},
		HeadingWeight: fonts.WeightBold,
		CodeFamily:    fonts.FamilyMono,
		LinkColor:     attributed.Color(0xFF6750A4),
		MutedColor:    attributed.Color(0xFF79747E),
		Bullet:        "•",
		Rule:          "* * *",
	}
}

// HeadingSize returns the font size for the given heading level,
// clamping out-of-range levels into 1 through 6.
func (t *Theme) HeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(t.HeadingSizes) {
		level = len(t.HeadingSizes)
	}
	return t.HeadingSizes[level-1]
}

// Heading returns a context mutation that applies the theme's heading
// style for the given level, for use with [styled.Modify].
func (t *Theme) Heading(level int) func(*styled.Context) {
	size := t.HeadingSize(level)
	weight := t.HeadingWeight
	return func(c *styled.Context) {
		if size > 0 {
			c.Size = size
		}
		if weight != 0 {
			c.Weight = weight
		}
	}
}
