// Package markdown converts Markdown source into styled fragment trees.
//
// [Convert] parses with gomarkdown and maps the document onto the
// fragment kinds of [styled]: headings render at themed sizes and
// weights, strong and emphasized spans set the bold and italic traits,
// inline code switches to the code family, fenced code blocks run
// through the syntax highlighter, links and strikethrough take theme
// colors, and lists, block quotes, tables, and rules render as plain
// text conventions. Raw HTML is not rendered.
//
// Parsing never terminates the process: invalid input produces a
// *errors.ParseError and a nil fragment, so callers can substitute
// fallback content and continue. Panics inside the parser are
// recovered, reported through the error handler, and surfaced the
// same way.
package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/go-drift/richtext/pkg/errors"
	"github.com/go-drift/richtext/pkg/highlight"
	"github.com/go-drift/richtext/pkg/styled"
	"github.com/go-drift/richtext/pkg/theme"
)

// Convert parses Markdown source and returns a fragment tree styled by
// the given theme. A nil theme means [theme.Default]. The returned
// fragment renders as a single piece with top-level blocks separated by
// blank lines.
func Convert(src []byte, t *theme.Theme) (f styled.Fragment, err error) {
	if t == nil {
		t = theme.Default()
	}
	if !utf8.Valid(src) {
		return nil, &errors.ParseError{Format: "markdown", Reason: "input is not valid UTF-8"}
	}
	defer errors.RecoverWithCallback("markdown.Convert", func(r any) {
		f = nil
		err = &errors.ParseError{
			Format: "markdown",
			Reason: fmt.Sprintf("recovered panic: %v", r),
		}
	})
	// gomarkdown parsers are single use, so each conversion builds its own.
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(src)
	c := &converter{theme: t}
	return c.document(doc), nil
}

// ConvertString is [Convert] for string input.
func ConvertString(src string, t *theme.Theme) (styled.Fragment, error) {
	return Convert([]byte(src), t)
}

// converter carries the state of one document conversion.
type converter struct {
	theme     *theme.Theme
	listDepth int
}

func (c *converter) document(doc ast.Node) styled.Fragment {
	return styled.Joiner{
		Content:   c.blocks(doc.GetChildren()),
		Separator: styled.Text("\n\n"),
	}
}

func (c *converter) blocks(nodes []ast.Node) styled.Group {
	var group styled.Group
	for _, node := range nodes {
		if b := c.block(node); b != nil {
			group = append(group, b)
		}
	}
	return group
}

// block converts one block-level node into a fragment that renders as a
// single piece, so joining puts separators between blocks rather than
// inside them.
func (c *converter) block(node ast.Node) styled.Fragment {
	switch n := node.(type) {
	case *ast.Paragraph:
		return flatten(c.inlines(n.GetChildren()))
	case *ast.Heading:
		return flatten(styled.Modify(c.inlines(n.GetChildren()), c.theme.Heading(n.Level)))
	case *ast.CodeBlock:
		return c.codeBlock(n)
	case *ast.BlockQuote:
		return quote{
			content: c.blocks(n.GetChildren()),
			marker:  styled.Foreground(styled.Text("> "), c.theme.MutedColor),
		}
	case *ast.List:
		return c.list(n)
	case *ast.Table:
		return c.table(n)
	case *ast.HorizontalRule:
		return flatten(styled.Foreground(styled.Text(c.theme.Rule), c.theme.MutedColor))
	case *ast.HTMLBlock:
		return nil
	default:
		return flatten(c.inlines(node.GetChildren()))
	}
}

func (c *converter) inlines(nodes []ast.Node) styled.Group {
	var group styled.Group
	for _, node := range nodes {
		if f := c.inline(node); f != nil {
			group = append(group, f)
		}
	}
	return group
}

func (c *converter) inline(node ast.Node) styled.Fragment {
	switch n := node.(type) {
	case *ast.Text:
		return styled.Text(n.Literal)
	case *ast.Emph:
		return styled.Italic(c.inlines(n.GetChildren()))
	case *ast.Strong:
		return styled.Bold(c.inlines(n.GetChildren()))
	case *ast.Del:
		return styled.Foreground(c.inlines(n.GetChildren()), c.theme.MutedColor)
	case *ast.Code:
		return styled.Family(styled.Text(n.Literal), c.theme.CodeFamily)
	case *ast.Link:
		return styled.Foreground(c.inlines(n.GetChildren()), c.theme.LinkColor)
	case *ast.Image:
		// Images render as their alt text.
		return styled.Foreground(c.inlines(n.GetChildren()), c.theme.MutedColor)
	case *ast.Softbreak:
		return styled.Text(" ")
	case *ast.Hardbreak:
		return styled.Text("\n")
	case *ast.HTMLSpan:
		return nil
	default:
		if children := node.GetChildren(); len(children) > 0 {
			return c.inlines(children)
		}
		if leaf := node.AsLeaf(); leaf != nil {
			return styled.Text(leaf.Literal)
		}
		return nil
	}
}

func (c *converter) codeBlock(n *ast.CodeBlock) styled.Fragment {
	language := ""
	if fields := strings.Fields(string(n.Info)); len(fields) > 0 {
		language = fields[0]
	}
	return highlight.Code{
		Source:   strings.TrimRight(string(n.Literal), "\n"),
		Language: language,
		Style:    c.theme.Syntax,
		Family:   c.theme.CodeFamily,
	}
}

// list renders items one per line. Nested lists are indented two spaces
// per level under their parent item.
func (c *converter) list(n *ast.List) styled.Fragment {
	indent := strings.Repeat("  ", c.listDepth)
	c.listDepth++
	defer func() { c.listDepth-- }()

	ordered := n.ListFlags&ast.ListTypeOrdered != 0
	number := n.Start
	if number <= 0 {
		number = 1
	}
	var items styled.Group
	for _, child := range n.GetChildren() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := indent + c.theme.Bullet + " "
		if ordered {
			marker = indent + strconv.Itoa(number) + ". "
			number++
		}
		items = append(items, flatten(styled.Group{
			styled.Text(marker),
			styled.Joiner{Content: c.blocks(item.GetChildren()), Separator: styled.Text("\n")},
		}))
	}
	return styled.Joiner{Content: items, Separator: styled.Text("\n")}
}

// table renders rows one per line with cells separated by " | ".
// Header cells render bold.
func (c *converter) table(n *ast.Table) styled.Fragment {
	var rows styled.Group
	for _, section := range n.GetChildren() {
		for _, rowNode := range section.GetChildren() {
			row, ok := rowNode.(*ast.TableRow)
			if !ok {
				continue
			}
			var cells styled.Group
			for _, cellNode := range row.GetChildren() {
				cell, ok := cellNode.(*ast.TableCell)
				if !ok {
					continue
				}
				content := flatten(c.inlines(cell.GetChildren()))
				if cell.IsHeader {
					content = styled.Bold(content)
				}
				cells = append(cells, content)
			}
			rows = append(rows, styled.Joiner{Content: cells, Separator: styled.Text(" | ")})
		}
	}
	return styled.Joiner{Content: rows, Separator: styled.Text("\n")}
}

// flatten wraps a fragment so it renders as exactly one piece.
func flatten(f styled.Fragment) styled.Fragment {
	return styled.Joiner{Content: f, Separator: styled.Group{}}
}
