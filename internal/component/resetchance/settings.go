package resetchance

import (
	"fmt"

	"github.com/npratt/splitchance/internal/settings"
)

// Setting indices, in the order SettingsDescription lists them.
const (
	SettingBackground = iota
	SettingDisplayTwoRows
	SettingLabelColor
	SettingValueColor
	SettingShowSuccesses
	SettingShowAttemptDetails

	settingCount
)

// SettingsDescription lists the settings and their current values.
func (c *Component) SettingsDescription() settings.Description {
	s := c.settings
	return settings.WithFields(
		settings.NewField(
			"Background",
			"The background shown behind the component.",
			settings.GradientValue(s.Background),
		),
		settings.NewField(
			"Display 2 Rows",
			"Specifies whether to display the name of the component and the reset chance in two separate rows.",
			settings.Bool(s.DisplayTwoRows),
		),
		settings.NewField(
			"Label Color",
			"The color of the component's name. If not specified, the color is taken from the layout.",
			settings.OptionalColor(s.LabelColor),
		),
		settings.NewField(
			"Value Color",
			"The color of the reset chance. If not specified, the color is taken from the layout.",
			settings.OptionalColor(s.ValueColor),
		),
		settings.NewField(
			"Show Successes",
			"Instead of showing the reset chance, show the success chance for the current split.",
			settings.Bool(s.ShowSuccesses),
		),
		settings.NewField(
			"Show Attempt Details",
			"In addition to showing the reset chance, show the attempt counts used for the calculation.",
			settings.Bool(s.ShowAttemptDetails),
		),
	)
}

// SetValue assigns the setting at index. It fails with
// settings.ErrIndexOutOfRange for an unknown index and settings.ErrTypeMismatch
// when the value's kind does not fit the setting. On error the settings are
// left unchanged.
func (c *Component) SetValue(index int, value settings.Value) error {
	var err error
	switch index {
	case SettingBackground:
		c.settings.Background, err = assign(c.settings.Background, value.AsGradient)
	case SettingDisplayTwoRows:
		c.settings.DisplayTwoRows, err = assign(c.settings.DisplayTwoRows, value.AsBool)
	case SettingLabelColor:
		c.settings.LabelColor, err = assign(c.settings.LabelColor, value.AsOptionalColor)
	case SettingValueColor:
		c.settings.ValueColor, err = assign(c.settings.ValueColor, value.AsOptionalColor)
	case SettingShowSuccesses:
		c.settings.ShowSuccesses, err = assign(c.settings.ShowSuccesses, value.AsBool)
	case SettingShowAttemptDetails:
		c.settings.ShowAttemptDetails, err = assign(c.settings.ShowAttemptDetails, value.AsBool)
	default:
		return fmt.Errorf("%w: %d (have %d)", settings.ErrIndexOutOfRange, index, settingCount)
	}
	if err != nil {
		return fmt.Errorf("setting %d: %w", index, err)
	}
	return nil
}

// MustSetValue is like SetValue but panics on error.
func (c *Component) MustSetValue(index int, value settings.Value) {
	if err := c.SetValue(index, value); err != nil {
		panic(err)
	}
}

// assign returns the converted value, or current if the conversion failed.
func assign[T any](current T, convert func() (T, error)) (T, error) {
	v, err := convert()
	if err != nil {
		return current, err
	}
	return v, nil
}
