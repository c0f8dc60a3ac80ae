// Package fonts resolves font families, weights, and traits to concrete
// font faces. A [Manager] holds registered families and their variants,
// maps platform family names onto them through aliases, and caches the
// faces it builds. Resolution never fails: unknown families fall back to
// the manager's fallback family and the failure is reported through the
// error handler.
package fonts

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/go-drift/richtext/pkg/errors"
)

const (
	// DefaultSize is used when no font size is specified.
	DefaultSize = 14

	// DefaultDPI is the resolution faces are built at.
	DefaultDPI = 72

	// maxAliasDepth bounds alias chain traversal so that a cyclic alias
	// table cannot hang resolution.
	maxAliasDepth = 8
)

// variant is one registered cut of a family.
type variant struct {
	weight Weight
	italic bool
	font   *sfnt.Font
}

// family is a registered font family and its cuts.
type family struct {
	name     string
	variants []variant
}

// nearestVariant returns the registered cut closest to the requested
// weight. Italic requests prefer italic cuts, falling back to upright
// when the family has none. Ties on weight distance prefer the heavier cut.
func (f *family) nearestVariant(weight Weight, italic bool) variant {
	candidates := make([]variant, 0, len(f.variants))
	for _, v := range f.variants {
		if v.italic == italic {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		candidates = f.variants
	}
	best := candidates[0]
	for _, v := range candidates[1:] {
		dv := weightDistance(v.weight, weight)
		db := weightDistance(best.weight, weight)
		if dv < db || (dv == db && v.weight > best.weight) {
			best = v
		}
	}
	return best
}

func weightDistance(a, b Weight) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Manager manages font registration and resolves descriptors to faces.
type Manager struct {
	mu       sync.RWMutex
	families map[string]*family
	aliases  map[string]string
	cache    map[Descriptor]*Face
	fallback string
	reported map[string]struct{}
}

// NewManager creates an empty font manager.
// The first registered family becomes the fallback family.
func NewManager() *Manager {
	return &Manager{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
		cache:    make(map[Descriptor]*Face),
		reported: make(map[string]struct{}),
	}
}

var (
	defaultManager     *Manager
	defaultManagerErr  error
	defaultManagerOnce sync.Once
)

// DefaultManagerErr returns a shared font manager with the bundled families.
// It returns both the manager and any error that occurred during initialization.
func DefaultManagerErr() (*Manager, error) {
	defaultManagerOnce.Do(func() {
		manager := NewManager()
		if err := registerBundled(manager); err != nil {
			defaultManagerErr = err
			errors.Report(&errors.RichtextError{
				Op:   "fonts.DefaultManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultManager = manager
	})
	return defaultManager, defaultManagerErr
}

// DefaultManager returns a shared font manager with the bundled families.
// It returns nil if initialization failed.
func DefaultManager() *Manager {
	manager, _ := DefaultManagerErr()
	return manager
}

// Register registers one cut of a font family from TrueType or OpenType data.
// Registering the same (weight, italic) cut again replaces the previous data
// and drops cached faces for the family.
func (m *Manager) Register(name string, weight Weight, italic bool, data []byte) error {
	if name == "" {
		return stderrors.New("font family name required")
	}
	if weight == 0 {
		weight = WeightNormal
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font data for family %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := familyKey(name)
	fam, ok := m.families[key]
	if !ok {
		fam = &family{name: name}
		m.families[key] = fam
		if m.fallback == "" {
			m.fallback = name
		}
	}
	for d := range m.cache {
		if d.Family == fam.name {
			delete(m.cache, d)
		}
	}
	for i := range fam.variants {
		if fam.variants[i].weight == weight && fam.variants[i].italic == italic {
			fam.variants[i].font = f
			return nil
		}
	}
	fam.variants = append(fam.variants, variant{weight: weight, italic: italic, font: f})
	return nil
}

// RegisterAlias maps an alternate family name onto another name.
// Aliases may chain; the target does not need to be registered yet.
func (m *Manager) RegisterAlias(alias, target string) error {
	if alias == "" || target == "" {
		return stderrors.New("alias and target family required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aliases[familyKey(alias)] = target
	return nil
}

// SetFallback selects the family used when resolution fails.
func (m *Manager) SetFallback(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fam, ok := m.lookupFamilyLocked(name)
	if !ok {
		return fmt.Errorf("unknown font family %q", name)
	}
	m.fallback = fam.name
	return nil
}

// Fallback returns the family used when resolution fails.
func (m *Manager) Fallback() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fallback
}

// Families returns the registered family names in sorted order.
func (m *Manager) Families() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.families))
	for _, fam := range m.families {
		names = append(names, fam.name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a concrete face for the descriptor.
//
// Resolution never fails. Sizes <= 0 use [DefaultSize]; a zero weight means
// [WeightNormal]; [TraitBold] raises the weight to at least [WeightBold].
// Unknown families resolve to the fallback family, missing cuts to the
// nearest registered one, and each such substitution is reported once
// through the error handler. Equal descriptors yield the same *Face.
func (m *Manager) Resolve(d Descriptor) *Face {
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	if d.Weight == 0 {
		d.Weight = WeightNormal
	}
	if d.Traits.Has(TraitBold) && d.Weight < WeightBold {
		d.Weight = WeightBold
	}
	italic := d.Traits.Has(TraitItalic)

	m.mu.RLock()
	fam, ok := m.lookupFamilyLocked(d.Family)
	if !ok {
		fallback := m.fallback
		m.mu.RUnlock()
		m.reportOnce("family:"+familyKey(d.Family), fmt.Errorf("unknown font family %q, using %q", d.Family, fallback))
		m.mu.RLock()
		fam, ok = m.lookupFamilyLocked(m.fallback)
	}
	if !ok {
		m.mu.RUnlock()
		m.reportOnce("empty", stderrors.New("no font families registered"))
		// No family to resolve against; cache a faceless entry so equal
		// descriptors still map to one *Face.
		key := Descriptor{Family: familyKey(d.Family), Size: d.Size, Weight: d.Weight, Traits: d.Traits.Without(TraitBold)}
		m.mu.Lock()
		defer m.mu.Unlock()
		if face, hit := m.cache[key]; hit {
			return face
		}
		face := &Face{Family: d.Family, Size: d.Size, Weight: d.Weight, Italic: italic}
		m.cache[key] = face
		return face
	}
	key := Descriptor{Family: fam.name, Size: d.Size, Weight: d.Weight, Traits: d.Traits.Without(TraitBold)}
	if face, hit := m.cache[key]; hit {
		m.mu.RUnlock()
		return face
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, hit := m.cache[key]; hit {
		return face
	}
	v := fam.nearestVariant(d.Weight, italic)
	face := &Face{Family: fam.name, Size: d.Size, Weight: v.weight, Italic: v.italic}
	ff, err := opentype.NewFace(v.font, &opentype.FaceOptions{
		Size: d.Size,
		DPI:  DefaultDPI,
	})
	if err != nil {
		errors.Report(&errors.RichtextError{
			Op:   "fonts.Manager.Resolve",
			Kind: errors.KindFont,
			Err:  fmt.Errorf("failed to build face for family %q: %w", fam.name, err),
		})
	} else {
		face.Face = ff
	}
	m.cache[key] = face
	return face
}

// lookupFamilyLocked resolves a family name through the alias table.
// The caller must hold m.mu.
func (m *Manager) lookupFamilyLocked(name string) (*family, bool) {
	key := familyKey(name)
	for i := 0; i < maxAliasDepth; i++ {
		if fam, ok := m.families[key]; ok {
			return fam, true
		}
		target, ok := m.aliases[key]
		if !ok {
			return nil, false
		}
		key = familyKey(target)
	}
	return nil, false
}

// reportOnce reports a resolution failure through the error handler,
// at most once per key for the lifetime of the manager.
func (m *Manager) reportOnce(key string, err error) {
	m.mu.Lock()
	if _, done := m.reported[key]; done {
		m.mu.Unlock()
		return
	}
	m.reported[key] = struct{}{}
	m.mu.Unlock()
	errors.Report(&errors.RichtextError{
		Op:   "fonts.Manager.Resolve",
		Kind: errors.KindFont,
		Err:  err,
	})
}

// familyKey normalizes a family name for map lookup.
func familyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
