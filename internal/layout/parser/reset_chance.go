package parser

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/npratt/splitchance/internal/component/resetchance"
)

// ResetChanceSettings reads a <Settings> element of a Reset Chance component
// into c. Label and value colors only apply when their override tag is true;
// otherwise they are inherited from the layout. Tags without an equivalent
// setting (ChanceMode, Accuracy, Basis, BasisSubset, BasisSubsetSplits) are
// ignored.
func ResetChanceSettings(r io.Reader, c *resetchance.Component) error {
	var el settingsElement
	if err := xml.NewDecoder(r).Decode(&el); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return resetChanceSettings(el, c)
}

func resetChanceSettings(el settingsElement, c *resetchance.Component) error {
	s := c.SettingsMut()
	background := newGradientBuilder()
	var overrideLabel, overrideValue bool

	err := visit(el, func(t tag) error {
		if ok, err := background.parseBackground(t); ok || err != nil {
			return err
		}

		var err error
		switch t.name() {
		case "TextColor":
			s.LabelColor, err = parseOptionalColor(t)
		case "OverrideTextColor":
			overrideLabel, err = parseBool(t)
		case "ChanceColor":
			s.ValueColor, err = parseOptionalColor(t)
		case "OverrideChanceColor":
			overrideValue, err = parseBool(t)
		case "Display2Rows":
			s.DisplayTwoRows, err = parseBool(t)
		}
		return err
	})
	if err != nil {
		return err
	}

	if !overrideLabel {
		s.LabelColor = nil
	}
	if !overrideValue {
		s.ValueColor = nil
	}
	s.Background = background.build()
	return nil
}
