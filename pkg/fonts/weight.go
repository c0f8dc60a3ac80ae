package fonts

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight represents a numeric font weight on the OpenType scale.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// String returns a human-readable representation of the font weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "thin"
	case WeightExtraLight:
		return "extra_light"
	case WeightLight:
		return "light"
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	case WeightExtraBold:
		return "extra_bold"
	case WeightBlack:
		return "black"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// ParseWeight converts a stylesheet value to a Weight. It accepts the
// names produced by [Weight.String] as well as numeric values on the
// 100-900 scale.
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return WeightThin, nil
	case "extra_light", "extralight":
		return WeightExtraLight, nil
	case "light":
		return WeightLight, nil
	case "normal", "regular", "":
		return WeightNormal, nil
	case "medium":
		return WeightMedium, nil
	case "semibold":
		return WeightSemibold, nil
	case "bold":
		return WeightBold, nil
	case "extra_bold", "extrabold":
		return WeightExtraBold, nil
	case "black":
		return WeightBlack, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 100 || n > 900 {
		return 0, fmt.Errorf("invalid font weight %q", s)
	}
	return Weight(n), nil
}
