package styled

import "github.com/go-drift/richtext/pkg/attributed"

// Joiner joins the pieces of its content with a separator, producing a
// single piece.
//
// The separator is re-rendered at every insertion point against the
// Joiner's own ambient context, not against any style the joined pieces
// were rendered with. Modifiers inside Content therefore never affect the
// separator; to style the separator, apply the modifier around the Joiner.
type Joiner struct {
	// Content supplies the pieces to join. Nil renders as empty.
	Content Fragment
	// Separator is rendered between consecutive pieces. Nil means a
	// newline. Any fragment works, including multi-piece ones; an empty
	// [Group] joins with nothing.
	Separator Fragment
}

func (j Joiner) Render(ctx Context) []attributed.Text {
	var pieces []attributed.Text
	if j.Content != nil {
		pieces = j.Content.Render(ctx)
	}
	if len(pieces) == 0 {
		return []attributed.Text{{}}
	}
	separator := j.Separator
	if separator == nil {
		separator = Text("\n")
	}
	result := pieces[0].Clone()
	for _, p := range pieces[1:] {
		result = result.Append(separator.Render(ctx)...)
		result = result.Append(p)
	}
	return []attributed.Text{result}
}

// Join renders content, joining its pieces with the separator, and returns
// the single resulting attributed value. A nil separator joins with
// newlines.
func Join(ctx Context, content, separator Fragment) attributed.Text {
	return Joiner{Content: content, Separator: separator}.Render(ctx)[0]
}

// Flatten renders a fragment and concatenates all of its pieces into one
// attributed value with nothing between them.
func Flatten(ctx Context, f Fragment) attributed.Text {
	return Join(ctx, f, Group{})
}
