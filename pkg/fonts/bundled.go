package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
)

// Bundled family names.
const (
	// FamilySans is the bundled sans-serif family (the Go fonts).
	FamilySans = "Go"
	// FamilyMono is the bundled monospace family (the Go Mono fonts).
	FamilyMono = "Go Mono"
	// FamilySerif is the bundled serif family (Latin Modern Roman).
	FamilySerif = "Latin Modern Roman"
)

// bundledFonts are the font programs compiled into the library.
var bundledFonts = []struct {
	family string
	weight Weight
	italic bool
	ttf    []byte
}{
	{FamilySans, WeightNormal, false, goregular.TTF},
	{FamilySans, WeightNormal, true, goitalic.TTF},
	{FamilySans, WeightMedium, false, gomedium.TTF},
	{FamilySans, WeightMedium, true, gomediumitalic.TTF},
	{FamilySans, WeightBold, false, gobold.TTF},
	{FamilySans, WeightBold, true, gobolditalic.TTF},
	{FamilyMono, WeightNormal, false, gomono.TTF},
	{FamilyMono, WeightNormal, true, gomonoitalic.TTF},
	{FamilyMono, WeightBold, false, gomonobold.TTF},
	{FamilyMono, WeightBold, true, gomonobolditalic.TTF},
	{FamilySerif, WeightNormal, false, lmroman10regular.TTF},
	{FamilySerif, WeightNormal, true, lmroman10italic.TTF},
	{FamilySerif, WeightBold, false, lmroman10bold.TTF},
	{FamilySerif, WeightBold, true, lmroman10bolditalic.TTF},
}

// bundledAliases map common platform family names onto the bundled set.
// Keep the chains loop-free.
var bundledAliases = map[string]string{
	"Helvetica":       FamilySans,
	"Arial":           FamilySans,
	"sans-serif":      FamilySans,
	"Times":           "Times New Roman",
	"Times New Roman": FamilySerif,
	"serif":           FamilySerif,
	"Courier":         "Courier New",
	"Courier New":     FamilyMono,
	"Menlo":           FamilyMono,
	"monospace":       FamilyMono,
}

// registerBundled loads the bundled families and aliases into a manager
// and makes the sans family the fallback.
func registerBundled(m *Manager) error {
	for _, f := range bundledFonts {
		if err := m.Register(f.family, f.weight, f.italic, f.ttf); err != nil {
			return err
		}
	}
	for alias, target := range bundledAliases {
		if err := m.RegisterAlias(alias, target); err != nil {
			return err
		}
	}
	return m.SetFallback(FamilySans)
}
