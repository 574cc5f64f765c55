package simulator

// BinaryColorTheme selects a two-color palette that simulates the
// appearance of a common monochrome display type.
//
// The theme is an opaque selector: this package never interprets it, it
// only carries it from the builder to the color-mapping collaborator.
// Setting a theme only makes sense for monochrome displays; applying one
// to a color display corrupts the output.
type BinaryColorTheme int

const (
	// BinaryColorThemeDefault passes colors through unchanged.
	BinaryColorThemeDefault BinaryColorTheme = iota

	// BinaryColorThemeInverted swaps the on and off colors.
	BinaryColorThemeInverted

	// BinaryColorThemeLcdWhite simulates an LCD with white pixels on a
	// light background.
	BinaryColorThemeLcdWhite

	// BinaryColorThemeLcdGreen simulates an LCD with green backlight.
	BinaryColorThemeLcdGreen

	// BinaryColorThemeLcdBlue simulates an LCD with blue backlight.
	BinaryColorThemeLcdBlue

	// BinaryColorThemeOledWhite simulates a white OLED on a black
	// background.
	BinaryColorThemeOledWhite

	// BinaryColorThemeOledBlue simulates a blue OLED on a black
	// background.
	BinaryColorThemeOledBlue
)

// String returns the theme name.
func (t BinaryColorTheme) String() string {
	switch t {
	case BinaryColorThemeDefault:
		return "Default"
	case BinaryColorThemeInverted:
		return "Inverted"
	case BinaryColorThemeLcdWhite:
		return "LcdWhite"
	case BinaryColorThemeLcdGreen:
		return "LcdGreen"
	case BinaryColorThemeLcdBlue:
		return "LcdBlue"
	case BinaryColorThemeOledWhite:
		return "OledWhite"
	case BinaryColorThemeOledBlue:
		return "OledBlue"
	default:
		return "Unknown"
	}
}
