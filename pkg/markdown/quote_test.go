package markdown

import (
	"testing"

	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/styled"
)

func TestPrefixLines(t *testing.T) {
	attrs := styled.DefaultContext().Resolve()
	prefix := attributed.New("> ", attrs)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"single line", "a", "> a"},
		{"two lines", "a\nb", "> a\n> b"},
		{"blank middle line", "a\n\nb", "> a\n> \n> b"},
		{"trailing newline", "a\n", "> a\n"},
		{"empty", "", "> "},
	}
	for _, tt := range tests {
		out := prefixLines(attributed.New(tt.body, attrs), prefix)
		if out.PlainText() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, out.PlainText())
		}
	}
}

func TestPrefixLines_MultipleRuns(t *testing.T) {
	attrs := styled.DefaultContext().Resolve()
	red := attrs.WithColor(attributed.ColorRed)
	prefix := attributed.New("| ", attrs)

	body := attributed.New("plain\n", attrs).Append(attributed.New("red", red))
	out := prefixLines(body, prefix)
	if out.PlainText() != "| plain\n| red" {
		t.Errorf("expected %q, got %q", "| plain\n| red", out.PlainText())
	}
	last := out[len(out)-1]
	if last.Attributes.Color != attributed.ColorRed {
		t.Errorf("expected the run color to survive prefixing, got %s", last.Attributes.Color.Hex())
	}
}
