// Package highlight renders source code as attributed text, using chroma
// for tokenization and styling.
package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/errors"
	"github.com/go-drift/richtext/pkg/fonts"
	"github.com/go-drift/richtext/pkg/styled"
)

// DefaultStyle is the chroma style used when no style name is given.
const DefaultStyle = "github"

// Source tokenizes src and returns it as attributed text under the given
// context. The context supplies the font family, size, and manager; token
// colors and bold/italic accents come from the chroma style.
//
// An empty or unknown language uses the plain-text fallback lexer. An
// unknown style name falls back to the chroma fallback style and is
// reported through the error handler. The returned error is non-nil only
// when tokenization itself fails.
func Source(ctx styled.Context, src, language, styleName string) (attributed.Text, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := lookupStyle(styleName)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenise %s source: %w", lexer.Config().Name, err)
	}

	base := ctx.Resolve()
	out := attributed.Text{}
	for _, tok := range iterator.Tokens() {
		if tok.Value == "" {
			continue
		}
		out = out.Append(attributed.New(tok.Value, tokenAttributes(ctx, base, style.Get(tok.Type))))
	}
	return out, nil
}

// tokenAttributes derives run attributes for one token from the base
// context and the style entry of the token's type.
func tokenAttributes(ctx styled.Context, base attributed.Attributes, entry chroma.StyleEntry) attributed.Attributes {
	attrs := base
	if entry.Colour.IsSet() {
		attrs.Color = attributed.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Bold == chroma.Yes || entry.Italic == chroma.Yes {
		accented := ctx
		if entry.Bold == chroma.Yes {
			accented.SetBold(true)
		}
		if entry.Italic == chroma.Yes {
			accented.SetItalic(true)
		}
		attrs.Font = accented.Resolve().Font
	}
	return attrs
}

// lookupStyle resolves a style name against the chroma registry.
// Unknown names are reported and fall back to the chroma fallback style.
func lookupStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	style, ok := styles.Registry[name]
	if !ok || style == nil {
		errors.Report(&errors.RichtextError{
			Op:   "highlight.Source",
			Kind: errors.KindHighlight,
			Err:  fmt.Errorf("unknown highlighting style %q, using fallback", name),
		})
		return styles.Fallback
	}
	return style
}

// Code is a fragment that renders syntax-highlighted source in a
// monospace family at the ambient size. Use [Source] directly for full
// control over the code context. Highlighting failures degrade to plain
// monospace text and are reported.
type Code struct {
	// Source is the code to highlight.
	Source string
	// Language is the chroma lexer name ("go", "python"). Empty means
	// plain text.
	Language string
	// Style is the chroma style name. Empty means [DefaultStyle].
	Style string
	// Family overrides the font family for the code runs. Empty means
	// [fonts.FamilyMono].
	Family string
}

func (c Code) Render(ctx styled.Context) []attributed.Text {
	ctx.Family = c.Family
	if ctx.Family == "" {
		ctx.Family = fonts.FamilyMono
	}
	text, err := Source(ctx, c.Source, c.Language, c.Style)
	if err != nil {
		errors.Report(&errors.RichtextError{
			Op:   "highlight.Code.Render",
			Kind: errors.KindHighlight,
			Err:  err,
		})
		return styled.Text(c.Source).Render(ctx)
	}
	return []attributed.Text{text}
}
