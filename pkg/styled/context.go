package styled

import (
	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/fonts"
)

// Default values for the root context.
const (
	// DefaultFamily is the font family of [DefaultContext].
	DefaultFamily = "Helvetica"
	// DefaultSize is the font size of [DefaultContext].
	DefaultSize = 14
)

// Context carries the ambient text style through a render pass. It is a
// plain value: every fragment receives its own copy, so a modifier applied
// inside one subtree can never leak into a sibling.
//
// The zero value is usable but has no family, size, or color; most callers
// start from [DefaultContext] and adjust fields from there.
type Context struct {
	// Family is the preferred font family name. Resolution falls back to
	// the font manager's fallback family when the name is unknown.
	Family string
	// Size is the font size in points.
	Size float64
	// Traits are the symbolic font traits. [Context.Bold] and
	// [Context.SetBold] give boolean access to the bold trait.
	Traits fonts.Traits
	// Weight is the numeric font weight. The bold trait raises it to at
	// least [fonts.WeightBold] during resolution.
	Weight fonts.Weight
	// Color is the foreground text color.
	Color attributed.Color
	// Manager resolves faces for this context. Nil means the shared
	// default manager with the bundled families.
	Manager *fonts.Manager
}

// DefaultContext returns the style used at the root of a render pass:
// Helvetica at 14 points, regular weight, black text.
func DefaultContext() Context {
	return Context{
		Family: DefaultFamily,
		Size:   DefaultSize,
		Weight: fonts.WeightNormal,
		Color:  attributed.ColorBlack,
	}
}

// Bold reports whether the bold trait is set.
func (c Context) Bold() bool {
	return c.Traits.Has(fonts.TraitBold)
}

// SetBold adds or removes the bold trait.
func (c *Context) SetBold(bold bool) {
	if bold {
		c.Traits = c.Traits.With(fonts.TraitBold)
	} else {
		c.Traits = c.Traits.Without(fonts.TraitBold)
	}
}

// Italic reports whether the italic trait is set.
func (c Context) Italic() bool {
	return c.Traits.Has(fonts.TraitItalic)
}

// SetItalic adds or removes the italic trait.
func (c *Context) SetItalic(italic bool) {
	if italic {
		c.Traits = c.Traits.With(fonts.TraitItalic)
	} else {
		c.Traits = c.Traits.Without(fonts.TraitItalic)
	}
}

// Resolve asks the font manager for a concrete face matching the context
// and returns the run attributes to render with.
func (c Context) Resolve() attributed.Attributes {
	manager := c.Manager
	if manager == nil {
		manager = fonts.DefaultManager()
	}
	var face *fonts.Face
	if manager != nil {
		face = manager.Resolve(fonts.Descriptor{
			Family: c.Family,
			Size:   c.Size,
			Weight: c.Weight,
			Traits: c.Traits,
		})
	}
	return attributed.Attributes{Font: face, Color: c.Color}
}
