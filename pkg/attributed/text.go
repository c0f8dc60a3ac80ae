// Package attributed defines the rendered text value produced by this
// library: an ordered sequence of runs, each carrying the text of the run
// and its resolved display attributes (a concrete font face and a color).
package attributed

import (
	"strings"

	"github.com/go-drift/richtext/pkg/fonts"
)

// Attributes are the resolved display attributes of a run.
// Attributes are comparable; faces compare by identity because the font
// manager caches them per descriptor.
type Attributes struct {
	// Font is the concrete face the run is set in.
	Font *fonts.Face
	// Color is the foreground color of the run.
	Color Color
}

// WithColor returns a copy of the attributes with the specified color.
func (a Attributes) WithColor(c Color) Attributes {
	a.Color = c
	return a
}

// Run is a maximal span of text sharing one set of attributes.
type Run struct {
	Text       string
	Attributes Attributes
}

// Text is an attributed string: an ordered sequence of runs.
// The zero value is the empty text.
type Text []Run

// New returns a single-run text with the given attributes. The run exists
// even when s is empty, so the value still counts as one piece when joined.
func New(s string, attrs Attributes) Text {
	return Text{{Text: s, Attributes: attrs}}
}

// PlainText returns the concatenated text of all runs, without attributes.
func (t Text) PlainText() string {
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns the total text length in bytes.
func (t Text) Len() int {
	n := 0
	for _, r := range t {
		n += len(r.Text)
	}
	return n
}

// Empty reports whether the text contains no characters.
func (t Text) Empty() bool {
	return t.Len() == 0
}

// Clone returns a copy of t that can be appended to without affecting t.
func (t Text) Clone() Text {
	if len(t) == 0 {
		return nil
	}
	out := make(Text, len(t))
	copy(out, t)
	return out
}

// Append returns t extended with the runs of the given texts, in order.
// Adjacent runs with equal attributes are merged and empty appended runs
// are dropped, keeping runs maximal. The receiver's backing array is
// reused when it has capacity; clone first if t is shared.
func (t Text) Append(others ...Text) Text {
	out := t
	for _, o := range others {
		for _, r := range o {
			if r.Text == "" {
				continue
			}
			if n := len(out); n > 0 && out[n-1].Attributes == r.Attributes {
				out[n-1].Text += r.Text
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

// Equal reports whether two texts have identical runs.
func (t Text) Equal(other Text) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}
