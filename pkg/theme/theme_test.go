package theme

import (
	"testing"

	"github.com/go-drift/richtext/pkg/fonts"
	"github.com/go-drift/richtext/pkg/styled"
)

func TestDefault(t *testing.T) {
	th := Default()
	if th.HeadingSizes[0] != 28 {
		t.Errorf("expected level 1 size 28, got %v", th.HeadingSizes[0])
	}
	if th.HeadingWeight != fonts.WeightBold {
		t.Errorf("expected bold headings, got %v", th.HeadingWeight)
	}
	if th.CodeFamily != fonts.FamilyMono {
		t.Errorf("expected code family %q, got %q", fonts.FamilyMono, th.CodeFamily)
	}
	if th.Syntax != "" {
		t.Errorf("expected empty syntax style, got %q", th.Syntax)
	}
	if th.Bullet != "•" {
		t.Errorf("expected bullet marker, got %q", th.Bullet)
	}
}

func TestTheme_HeadingSize(t *testing.T) {
	th := Default()
	tests := []struct {
		level int
		size  float64
	}{
		{1, 28},
		{3, 20},
		{6, 14},
		{0, 28},
		{-2, 28},
		{7, 14},
		{100, 14},
	}
	for _, tt := range tests {
		if got := th.HeadingSize(tt.level); got != tt.size {
			t.Errorf("HeadingSize(%d): expected %v, got %v", tt.level, tt.size, got)
		}
	}
}

func TestTheme_Heading_Apply(t *testing.T) {
	th := Default()
	ctx := styled.DefaultContext()
	th.Heading(2)(&ctx)
	if ctx.Size != 24 {
		t.Errorf("expected size 24, got %v", ctx.Size)
	}
	if ctx.Weight != fonts.WeightBold {
		t.Errorf("expected weight %v, got %v", fonts.WeightBold, ctx.Weight)
	}
}

func TestTheme_Heading_ZeroValuesLeaveContext(t *testing.T) {
	th := &Theme{}
	ctx := styled.DefaultContext()
	th.Heading(1)(&ctx)
	if ctx.Size != styled.DefaultSize {
		t.Errorf("expected size to stay %v, got %v", float64(styled.DefaultSize), ctx.Size)
	}
	if ctx.Weight != fonts.WeightNormal {
		t.Errorf("expected weight to stay %v, got %v", fonts.WeightNormal, ctx.Weight)
	}
}
