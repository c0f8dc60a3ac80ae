package styled

import (
	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/fonts"
)

// Fragment is a composable piece of styled text. Render returns the
// fragment's pieces in order; each piece is one attributed text value.
// Render must be pure: same fragment, same context, same pieces.
type Fragment interface {
	Render(ctx Context) []attributed.Text
}

// Text is a literal string fragment. It renders to a single piece with
// one run styled by the ambient context.
type Text string

func (t Text) Render(ctx Context) []attributed.Text {
	return []attributed.Text{attributed.New(string(t), ctx.Resolve())}
}

// Rich wraps a pre-built attributed value as a fragment. It renders to
// itself as a single piece and ignores the ambient context, so text styled
// elsewhere passes through a composition untouched.
type Rich attributed.Text

func (r Rich) Render(ctx Context) []attributed.Text {
	return []attributed.Text{attributed.Text(r)}
}

// Group renders its elements in order and concatenates their pieces.
// Nil elements render nothing.
type Group []Fragment

func (g Group) Render(ctx Context) []attributed.Text {
	var pieces []attributed.Text
	for _, f := range g {
		if f == nil {
			continue
		}
		pieces = append(pieces, f.Render(ctx)...)
	}
	return pieces
}

// Modified renders its fragment with a changed copy of the ambient
// context. Apply mutates only the copy; the caller's context is never
// touched, so the change is scoped to the wrapped subtree.
type Modified struct {
	Fragment Fragment
	Apply    func(*Context)
}

func (m Modified) Render(ctx Context) []attributed.Text {
	if m.Fragment == nil {
		return nil
	}
	if m.Apply != nil {
		m.Apply(&ctx)
	}
	return m.Fragment.Render(ctx)
}

// Bold wraps a fragment so it renders with the bold trait set.
func Bold(f Fragment) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.SetBold(true) }}
}

// Italic wraps a fragment so it renders with the italic trait set.
func Italic(f Fragment) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.SetItalic(true) }}
}

// Weight wraps a fragment so it renders with the specified font weight.
func Weight(f Fragment, w fonts.Weight) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.Weight = w }}
}

// Size wraps a fragment so it renders at the specified font size.
func Size(f Fragment, size float64) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.Size = size }}
}

// Family wraps a fragment so it renders in the specified font family.
func Family(f Fragment, name string) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.Family = name }}
}

// Foreground wraps a fragment so it renders in the specified text color.
func Foreground(f Fragment, color attributed.Color) Fragment {
	return Modified{Fragment: f, Apply: func(c *Context) { c.Color = color }}
}

// Modify wraps a fragment with an arbitrary context change. The function
// must be pure apart from mutating the context it receives.
func Modify(f Fragment, apply func(*Context)) Fragment {
	return Modified{Fragment: f, Apply: apply}
}

// If returns f when ok is true and nil otherwise. Nil fragments render
// nothing inside a [Group], so If expresses optional slots without
// disturbing the position of surrounding content.
func If(ok bool, f Fragment) Fragment {
	if ok {
		return f
	}
	return nil
}
