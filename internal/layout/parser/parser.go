// Package parser reads LiveSplit layout files and turns the settings of the
// components it understands into component settings.
package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/npratt/splitchance/internal/settings"
)

var (
	// ErrInvalidBool is returned for boolean tags that are not True or False.
	ErrInvalidBool = errors.New("invalid boolean")
	// ErrInvalidColor is returned for color tags that are not AARRGGBB hex.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidGradient is returned for an unknown background gradient kind.
	ErrInvalidGradient = errors.New("invalid gradient kind")
)

// tag is one child element of a <Settings> block. Nested elements of
// unknown tags are dropped by the decoder.
type tag struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

func (t tag) name() string {
	return t.XMLName.Local
}

func (t tag) text() string {
	return strings.TrimSpace(t.Text)
}

// settingsElement is a decoded <Settings> block with its children in
// document order.
type settingsElement struct {
	Children []tag `xml:",any"`
}

func visit(el settingsElement, fn func(tag) error) error {
	for _, child := range el.Children {
		if err := fn(child); err != nil {
			return fmt.Errorf("%s: %w", child.name(), err)
		}
	}
	return nil
}

func parseBool(t tag) (bool, error) {
	switch {
	case strings.EqualFold(t.text(), "true"):
		return true, nil
	case strings.EqualFold(t.text(), "false"):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, t.text())
	}
}

func parseColor(t tag) (settings.Color, error) {
	c, err := settings.ParseLayoutHex(t.text())
	if err != nil {
		return settings.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, t.text())
	}
	return c, nil
}

func parseOptionalColor(t tag) (*settings.Color, error) {
	c, err := parseColor(t)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
