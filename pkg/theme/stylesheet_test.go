package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/richtext/pkg/attributed"
	"github.com/go-drift/richtext/pkg/errors"
	"github.com/go-drift/richtext/pkg/fonts"
)

func TestParse_Overrides(t *testing.T) {
	src := `
headings:
  sizes: [32, 26]
  weight: semibold
code:
  family: Go Mono
  syntax: monokai
colors:
  link: "#0000FF"
  muted: "#888888"
list:
  bullet: "-"
rule: "---"
`
	th, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if th.HeadingSizes[0] != 32 || th.HeadingSizes[1] != 26 {
		t.Errorf("expected sizes 32 and 26, got %v", th.HeadingSizes)
	}
	if th.HeadingSizes[2] != 20 {
		t.Errorf("expected level 3 size to keep its default, got %v", th.HeadingSizes[2])
	}
	if th.HeadingWeight != fonts.WeightSemibold {
		t.Errorf("expected semibold, got %v", th.HeadingWeight)
	}
	if th.CodeFamily != "Go Mono" {
		t.Errorf("expected code family Go Mono, got %q", th.CodeFamily)
	}
	if th.Syntax != "monokai" {
		t.Errorf("expected syntax monokai, got %q", th.Syntax)
	}
	if th.LinkColor != attributed.ColorBlue {
		t.Errorf("expected blue links, got %s", th.LinkColor.Hex())
	}
	if th.MutedColor != attributed.RGB(0x88, 0x88, 0x88) {
		t.Errorf("expected muted #888888, got %s", th.MutedColor.Hex())
	}
	if th.Bullet != "-" {
		t.Errorf("expected bullet -, got %q", th.Bullet)
	}
	if th.Rule != "---" {
		t.Errorf("expected rule ---, got %q", th.Rule)
	}
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	th, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	def := Default()
	if *th != *def {
		t.Errorf("expected default theme, got %+v", th)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("headings: ["))
	if err == nil {
		t.Fatal("expected an error")
	}
	var parseErr *errors.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatalf("expected a ParseError, got %T", err)
	}
	if parseErr.Format != "stylesheet" {
		t.Errorf("expected format stylesheet, got %q", parseErr.Format)
	}
}

func TestParse_TooManySizes(t *testing.T) {
	_, err := Parse([]byte("headings:\n  sizes: [1, 2, 3, 4, 5, 6, 7]"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "headings.sizes") {
		t.Errorf("expected error to name headings.sizes, got %v", err)
	}
}

func TestParse_NonPositiveSize(t *testing.T) {
	_, err := Parse([]byte("headings:\n  sizes: [28, 0]"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "headings.sizes[1]") {
		t.Errorf("expected error to name headings.sizes[1], got %v", err)
	}
}

func TestParse_InvalidWeight(t *testing.T) {
	_, err := Parse([]byte("headings:\n  weight: heavy-ish"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "headings.weight") {
		t.Errorf("expected error to name headings.weight, got %v", err)
	}
}

func TestParse_InvalidColor(t *testing.T) {
	_, err := Parse([]byte("colors:\n  link: reddish"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var parseErr *errors.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatalf("expected a wrapped ParseError, got %T", err)
	}
	if parseErr.Format != "color" {
		t.Errorf("expected format color, got %q", parseErr.Format)
	}
	if !strings.Contains(err.Error(), "colors.link") {
		t.Errorf("expected error to name colors.link, got %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *th != *Default() {
		t.Errorf("expected default theme, got %+v", th)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("rule: '==='"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if th.Rule != "===" {
		t.Errorf("expected rule ===, got %q", th.Rule)
	}
}
