package styled

import (
	"testing"

	"github.com/go-drift/richtext/pkg/attributed"
)

func TestJoiner_Render_EmptyContent(t *testing.T) {
	pieces := Joiner{Content: Group{}, Separator: Text("-")}.Render(DefaultContext())
	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	if !pieces[0].Empty() {
		t.Errorf("expected empty result, got %q", pieces[0].PlainText())
	}
}

func TestJoiner_Render_NilContent(t *testing.T) {
	pieces := Joiner{Separator: Text("-")}.Render(DefaultContext())
	if len(pieces) != 1 || !pieces[0].Empty() {
		t.Error("expected nil content to render as a single empty piece")
	}
}

func TestJoin_SinglePieceEqualsLoneRender(t *testing.T) {
	ctx := DefaultContext()
	alone := Flatten(ctx, Bold(Text("only")))
	joined := Join(ctx, Group{Bold(Text("only"))}, Text("-"))
	if !alone.Equal(joined) {
		t.Errorf("expected single-piece join to equal the lone render, got %q vs %q",
			alone.PlainText(), joined.PlainText())
	}
}

func TestJoin_SeparatorBetweenPieces(t *testing.T) {
	ctx := DefaultContext()
	content := Bold(Group{Text("A"), Text("B"), Text("C")})
	result := Join(ctx, content, Text("-"))

	if got := result.PlainText(); got != "A-B-C" {
		t.Fatalf("expected %q, got %q", "A-B-C", got)
	}
	// Bold pieces alternate with ambient separators: 5 runs.
	if len(result) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(result))
	}
	ambient := ctx.Resolve()
	for i, run := range result {
		if i%2 == 0 {
			if !run.Attributes.Font.Bold() {
				t.Errorf("run %d (%q): expected bold segment", i, run.Text)
			}
		} else {
			if run.Attributes != ambient {
				t.Errorf("run %d (%q): expected ambient separator attributes", i, run.Text)
			}
			if run.Text != "-" {
				t.Errorf("run %d: expected separator text %q, got %q", i, "-", run.Text)
			}
		}
	}
}

func TestJoin_SeparatorIgnoresContentModifiers(t *testing.T) {
	ctx := DefaultContext()
	// The modifier wraps only the content; the separator must render
	// against the ambient context.
	inner := Join(ctx, Foreground(Group{Text("a"), Text("b")}, attributed.ColorRed), Text("+"))
	for _, run := range inner {
		if run.Text == "+" && run.Attributes.Color != attributed.ColorBlack {
			t.Errorf("expected ambient separator color, got %v", run.Attributes.Color.Hex())
		}
		if run.Text != "+" && run.Attributes.Color != attributed.ColorRed {
			t.Errorf("expected red content, got %v for %q", run.Attributes.Color.Hex(), run.Text)
		}
	}
}

func TestJoiner_Render_ModifierAroundJoinerStylesSeparator(t *testing.T) {
	ctx := DefaultContext()
	f := Foreground(Joiner{Content: Group{Text("a"), Text("b")}, Separator: Text("+")}, attributed.ColorBlue)
	pieces := f.Render(ctx)
	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
	for _, run := range pieces[0] {
		if run.Attributes.Color != attributed.ColorBlue {
			t.Errorf("expected whole join blue, got %v for %q", run.Attributes.Color.Hex(), run.Text)
		}
	}
}

func TestJoiner_Render_DefaultSeparatorIsNewline(t *testing.T) {
	ctx := DefaultContext()
	result := Join(ctx, Group{Text("one"), Text("two")}, nil)
	if got := result.PlainText(); got != "one\ntwo" {
		t.Errorf("expected newline separator, got %q", got)
	}
}

func TestJoiner_Render_MultiPieceSeparator(t *testing.T) {
	ctx := DefaultContext()
	sep := Group{Text(";"), Text(" ")}
	result := Join(ctx, Group{Text("a"), Text("b")}, sep)
	if got := result.PlainText(); got != "a; b" {
		t.Errorf("expected %q, got %q", "a; b", got)
	}
}

func TestJoiner_Render_EmptyPieceStillJoined(t *testing.T) {
	ctx := DefaultContext()
	result := Join(ctx, Group{Text("a"), Text(""), Text("b")}, Text("-"))
	if got := result.PlainText(); got != "a--b" {
		t.Errorf("expected empty pieces to keep their separators, got %q", got)
	}
}

func TestFlatten_EqualsJoinWithEmptySeparator(t *testing.T) {
	ctx := DefaultContext()
	content := Group{Text("a"), Bold(Text("b")), Text("c")}
	flat := Flatten(ctx, content)
	joined := Join(ctx, content, Group{})
	if !flat.Equal(joined) {
		t.Errorf("expected Flatten to equal empty-separator Join, got %q vs %q",
			flat.PlainText(), joined.PlainText())
	}
	if got := flat.PlainText(); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
}

func TestJoiner_Render_AlwaysOnePiece(t *testing.T) {
	ctx := DefaultContext()
	j := Joiner{Content: Group{Text("a"), Text("b"), Text("c")}, Separator: Text(",")}
	pieces := j.Render(ctx)
	if len(pieces) != 1 {
		t.Errorf("expected a joiner to render exactly 1 piece, got %d", len(pieces))
	}
}

func TestJoiner_Render_DoesNotMutateSourcePieces(t *testing.T) {
	ctx := DefaultContext()
	prebuilt := attributed.New("fixed", ctx.Resolve())
	content := Group{Rich(prebuilt), Text("tail")}

	first := Join(ctx, content, Text("-"))
	second := Join(ctx, content, Text("-"))

	if len(prebuilt) != 1 || prebuilt.PlainText() != "fixed" {
		t.Errorf("expected the source value to stay untouched, got %q in %d runs",
			prebuilt.PlainText(), len(prebuilt))
	}
	if !first.Equal(second) {
		t.Error("expected repeated joins to produce equal results")
	}
}

func TestJoiner_Render_NestedJoiners(t *testing.T) {
	ctx := DefaultContext()
	inner := Joiner{Content: Group{Text("1"), Text("2")}, Separator: Text(".")}
	outer := Join(ctx, Group{inner, Text("rest")}, Text(" "))
	if got := outer.PlainText(); got != "1.2 rest" {
		t.Errorf("expected %q, got %q", "1.2 rest", got)
	}
}
