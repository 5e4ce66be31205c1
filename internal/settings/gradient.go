package settings

import "fmt"

// GradientKind identifies how a gradient is drawn.
type GradientKind int

const (
	// GradientTransparent draws nothing.
	GradientTransparent GradientKind = iota
	// GradientPlain fills with a single color.
	GradientPlain
	// GradientVertical blends from top to bottom.
	GradientVertical
	// GradientHorizontal blends from left to right.
	GradientHorizontal
)

var gradientKindNames = [...]string{
	GradientTransparent: "Transparent",
	GradientPlain:       "Plain",
	GradientVertical:    "Vertical",
	GradientHorizontal:  "Horizontal",
}

func (k GradientKind) String() string {
	if k < 0 || int(k) >= len(gradientKindNames) {
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
	return gradientKindNames[k]
}

// Gradient is a background fill. Start is used by every kind except
// Transparent; End only by Vertical and Horizontal.
type Gradient struct {
	Kind  GradientKind `json:"kind"`
	Start Color        `json:"start"`
	End   Color        `json:"end"`
}

// Transparent returns a gradient that draws nothing.
func Transparent() Gradient {
	return Gradient{Kind: GradientTransparent}
}

// Plain returns a single color fill.
func Plain(c Color) Gradient {
	return Gradient{Kind: GradientPlain, Start: c}
}

// Vertical returns a top to bottom blend.
func Vertical(top, bottom Color) Gradient {
	return Gradient{Kind: GradientVertical, Start: top, End: bottom}
}

// Horizontal returns a left to right blend.
func Horizontal(left, right Color) Gradient {
	return Gradient{Kind: GradientHorizontal, Start: left, End: right}
}

// Primary returns the color a single-cell renderer should use for the
// gradient and whether there is one at all.
func (g Gradient) Primary() (Color, bool) {
	if g.Kind == GradientTransparent || !g.Start.Visible() && !g.End.Visible() {
		return Color{}, false
	}
	if !g.Start.Visible() {
		return g.End, true
	}
	return g.Start, true
}

func (g Gradient) String() string {
	switch g.Kind {
	case GradientTransparent:
		return "Transparent"
	case GradientPlain:
		return fmt.Sprintf("Plain(%s)", g.Start)
	default:
		return fmt.Sprintf("%s(%s, %s)", g.Kind, g.Start, g.End)
	}
}
