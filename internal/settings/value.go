package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrIndexOutOfRange is returned when a setting index does not exist.
	ErrIndexOutOfRange = errors.New("unsupported setting index")
	// ErrTypeMismatch is returned when a value's kind does not match the
	// setting it is assigned to.
	ErrTypeMismatch = errors.New("setting value type mismatch")
)

// Kind is the type of a setting value.
type Kind int

const (
	KindBool Kind = iota
	KindColor
	KindOptionalColor
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindOptionalColor:
		return "optional color"
	case KindGradient:
		return "gradient"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a setting value of one of the supported kinds.
type Value struct {
	kind     Kind
	b        bool
	color    *Color
	gradient Gradient
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ColorValue wraps a color.
func ColorValue(c Color) Value {
	return Value{kind: KindColor, color: &c}
}

// OptionalColor wraps a color that may be absent. nil means the color is
// inherited from the layout.
func OptionalColor(c *Color) Value {
	if c != nil {
		cp := *c
		c = &cp
	}
	return Value{kind: KindOptionalColor, color: c}
}

// GradientValue wraps a gradient.
func GradientValue(g Gradient) Value {
	return Value{kind: KindGradient, gradient: g}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean held by the value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.b, nil
}

// AsGradient returns the gradient held by the value.
func (v Value) AsGradient() (Gradient, error) {
	if v.kind != KindGradient {
		return Gradient{}, v.mismatch(KindGradient)
	}
	return v.gradient, nil
}

// AsOptionalColor returns the color held by the value. Both Color and
// OptionalColor values are accepted.
func (v Value) AsOptionalColor() (*Color, error) {
	if v.kind != KindColor && v.kind != KindOptionalColor {
		return nil, v.mismatch(KindOptionalColor)
	}
	if v.color == nil {
		return nil, nil
	}
	c := *v.color
	return &c, nil
}

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, v.kind)
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindColor, KindOptionalColor:
		if v.color == nil {
			return "inherit"
		}
		return v.color.String()
	case KindGradient:
		return v.gradient.String()
	default:
		return ""
	}
}

type valueJSON struct {
	Kind     string    `json:"kind"`
	Bool     *bool     `json:"bool,omitempty"`
	Color    *Color    `json:"color,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty"`
}

// MarshalJSON encodes the value with its kind.
func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.kind.String()}
	switch v.kind {
	case KindBool:
		b := v.b
		out.Bool = &b
	case KindColor, KindOptionalColor:
		out.Color = v.color
	case KindGradient:
		g := v.gradient
		out.Gradient = &g
	}
	return json.Marshal(out)
}
