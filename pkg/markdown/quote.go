package markdown

import (
	"strings"

	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/styled"
)

// quote renders its content as one piece with every line prefixed by the
// marker. Nested quotes stack markers.
type quote struct {
	content styled.Fragment
	marker  styled.Fragment
}

func (q quote) Render(ctx styled.Context) []attributed.Text {
	body := styled.Join(ctx, q.content, styled.Text("\n\n"))
	marker := styled.Flatten(ctx, q.marker)
	return []attributed.Text{prefixLines(body, marker)}
}

// prefixLines inserts prefix at the start of text and after every
// newline except a trailing one.
func prefixLines(text attributed.Text, prefix attributed.Text) attributed.Text {
	out := prefix.Clone()
	for ri, run := range text {
		rest := run.Text
		for {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				if rest != "" {
					out = out.Append(attributed.New(rest, run.Attributes))
				}
				break
			}
			out = out.Append(attributed.New(rest[:i+1], run.Attributes))
			rest = rest[i+1:]
			if rest != "" || remainingText(text[ri+1:]) {
				out = out.Append(prefix)
			}
		}
	}
	return out
}

// remainingText reports whether any of the runs still carries text.
func remainingText(runs attributed.Text) bool {
	for _, r := range runs {
		if r.Text != "" {
			return true
		}
	}
	return false
}
