package parser

import (
	"fmt"

	"github.com/npratt/splitchance/internal/settings"
)

// gradientBuilder collects the background tags of a component, which can
// appear in any order, and builds the gradient once all are read.
type gradientBuilder struct {
	kind   settings.GradientKind
	first  settings.Color
	second settings.Color
}

func newGradientBuilder() *gradientBuilder {
	return &gradientBuilder{kind: settings.GradientTransparent}
}

// parseBackground consumes t if it is a background tag and reports whether
// it did.
func (b *gradientBuilder) parseBackground(t tag) (bool, error) {
	switch t.name() {
	case "BackgroundColor":
		c, err := parseColor(t)
		if err != nil {
			return true, err
		}
		b.first = c
	case "BackgroundColor2":
		c, err := parseColor(t)
		if err != nil {
			return true, err
		}
		b.second = c
	case "BackgroundGradient":
		switch t.text() {
		case "Plain":
			b.kind = settings.GradientPlain
		case "Vertical":
			b.kind = settings.GradientVertical
		case "Horizontal":
			b.kind = settings.GradientHorizontal
		default:
			return true, fmt.Errorf("%w: %q", ErrInvalidGradient, t.text())
		}
	default:
		return false, nil
	}
	return true, nil
}

func (b *gradientBuilder) build() settings.Gradient {
	switch b.kind {
	case settings.GradientVertical:
		return settings.Vertical(b.first, b.second)
	case settings.GradientHorizontal:
		return settings.Horizontal(b.first, b.second)
	case settings.GradientPlain:
		if b.first.Transparent() {
			return settings.Transparent()
		}
		return settings.Plain(b.first)
	default:
		return settings.Transparent()
	}
}
