package fonts

import "golang.org/x/image/font"

// Descriptor identifies a concrete face: a family at a size with a weight
// and symbolic traits. Descriptors are comparable and serve as cache keys.
type Descriptor struct {
	Family string
	Size   float64
	Weight Weight
	Traits Traits
}

// Face is a resolved font face. Faces are created and cached by a
// [Manager]; resolving the same descriptor twice yields the same pointer,
// so faces compare by identity.
//
// The fields describe the variant that was actually selected, which may
// differ from the requested descriptor when the manager fell back to
// another family, the nearest registered weight, or an upright cut.
type Face struct {
	// Family is the registered name of the family the face came from.
	Family string
	// Size is the point size the face was built at.
	Size float64
	// Weight is the weight of the selected variant.
	Weight Weight
	// Italic reports whether the selected variant is italic.
	Italic bool
	// Face is the concrete face, nil if the variant failed to load.
	Face font.Face
}

// Bold reports whether the face renders as bold.
// Semibold and heavier cuts count as bold.
func (f *Face) Bold() bool {
	return f.Weight >= WeightSemibold
}
