package simulator

import "log/slog"

// OutputSettings holds the resolved output configuration of a simulated
// display: pixel scale, pixel spacing and binary color theme.
//
// OutputSettings is an immutable value. Two settings compare equal with ==
// if and only if scale, pixel spacing and theme are all equal. Values can
// be copied freely and shared across goroutines without synchronization.
type OutputSettings struct {
	// Scale is the pixel scale, allowing for non-square pixels.
	Scale Size

	// PixelSpacing is the gap between pixels, in output surface units.
	PixelSpacing int

	// Theme is the binary color theme.
	Theme BinaryColorTheme
}

// DefaultOutputSettings returns the settings produced by an unconfigured
// builder: scale (1,1), no pixel spacing, default theme.
func DefaultOutputSettings() OutputSettings {
	return NewOutputSettingsBuilder().Build()
}

// PixelPitch returns the output surface distance between the origins of
// two adjacent logical pixels: scale plus pixel spacing, per axis.
func (s OutputSettings) PixelPitch() Point {
	return Point{
		X: s.Scale.Width + s.PixelSpacing,
		Y: s.Scale.Height + s.PixelSpacing,
	}
}

// OutputToDisplay translates an output surface coordinate to the logical
// pixel it falls within, by element-wise integer division with PixelPitch.
// This is the reverse lookup used to map pointer positions back to logical
// pixels.
//
// Coordinates are expected to be non-negative in normal use. Negative
// coordinates follow Go's integer division and truncate toward zero, so
// with a pitch of (4,4) both (3,3) and (-3,-3) map to pixel (0,0).
func (s OutputSettings) OutputToDisplay(outputPoint Point) Point {
	return outputPoint.ComponentDiv(s.PixelPitch())
}

// DisplayToOutput translates a logical pixel coordinate to the output
// surface coordinate of that pixel's top-left corner. It is the inverse of
// OutputToDisplay on pixel origins.
func (s OutputSettings) DisplayToOutput(displayPoint Point) Point {
	return displayPoint.ComponentMul(s.PixelPitch())
}

// ScaledSize returns the output surface size required to show a display of
// displaySize logical pixels. There is no trailing gap after the last
// pixel row or column. A zero component stays zero.
func (s OutputSettings) ScaledSize(displaySize Size) Size {
	pitch := s.PixelPitch()
	width := displaySize.Width * pitch.X
	height := displaySize.Height * pitch.Y
	if displaySize.Width > 0 {
		width -= s.PixelSpacing
	}
	if displaySize.Height > 0 {
		height -= s.PixelSpacing
	}
	return Size{Width: width, Height: height}
}

// OutputSettingsBuilder accumulates output configuration choices and
// produces an immutable OutputSettings.
//
// Methods return the receiver so calls can be chained:
//
//	settings := simulator.NewOutputSettingsBuilder().
//		Scale(2).
//		Theme(simulator.BinaryColorThemeOledBlue).
//		Build()
//
// A builder represents a single in-progress configuration sequence: it is
// owned by one goroutine, and it should be discarded after Build.
type OutputSettingsBuilder struct {
	scale        *Size
	pixelSpacing *int
	theme        BinaryColorTheme
}

// NewOutputSettingsBuilder creates a builder with no scale, spacing or
// theme selected.
func NewOutputSettingsBuilder() *OutputSettingsBuilder {
	return &OutputSettingsBuilder{}
}

// Scale sets a uniform pixel scale.
//
// A scale of 2 or higher is useful for viewing the simulated display on
// high DPI screens.
//
// Scale panics if scale is less than 1. A non-positive scale is a
// programming error, not a recoverable condition.
func (b *OutputSettingsBuilder) Scale(scale int) *OutputSettingsBuilder {
	if scale < 1 {
		panic("simulator: scale must be > 0")
	}
	b.scale = &Size{Width: scale, Height: scale}
	return b
}

// ScaleNonSquare sets the horizontal and vertical pixel scale
// independently, for simulating displays with a non-square pixel aspect
// ratio.
//
// ScaleNonSquare panics if width or height is less than 1.
func (b *OutputSettingsBuilder) ScaleNonSquare(width, height int) *OutputSettingsBuilder {
	if width < 1 {
		panic("simulator: scale width must be > 0")
	}
	if height < 1 {
		panic("simulator: scale height must be > 0")
	}
	b.scale = &Size{Width: width, Height: height}
	return b
}

// Theme sets the binary color theme.
//
// Most binary color displays are small, and at a 1:1 scale with no gap
// their individual pixels are hard to make out on a modern screen. Setting
// a theme therefore also sets the scale to (3,3) and the pixel spacing
// to 1, but only for fields that are still unset. A value chosen
// explicitly, or filled in by an earlier Theme call, is never overridden.
func (b *OutputSettingsBuilder) Theme(theme BinaryColorTheme) *OutputSettingsBuilder {
	b.theme = theme

	if b.scale == nil {
		b.scale = &Size{Width: 3, Height: 3}
	}
	if b.pixelSpacing == nil {
		spacing := 1
		b.pixelSpacing = &spacing
	}

	return b
}

// PixelSpacing sets the gap between pixels, in output surface units.
//
// Most lower resolution displays have visible gaps between individual
// pixels; a spacing greater than 0 simulates that effect. Zero means no
// gap.
//
// PixelSpacing panics if spacing is negative.
func (b *OutputSettingsBuilder) PixelSpacing(spacing int) *OutputSettingsBuilder {
	if spacing < 0 {
		panic("simulator: pixel spacing must be >= 0")
	}
	b.pixelSpacing = &spacing
	return b
}

// Build resolves the remaining defaults and returns the finished settings:
// an unset scale becomes (1,1) and an unset pixel spacing becomes 0.
// Build always succeeds.
func (b *OutputSettingsBuilder) Build() OutputSettings {
	settings := OutputSettings{
		Scale: Size{Width: 1, Height: 1},
		Theme: b.theme,
	}
	if b.scale != nil {
		settings.Scale = *b.scale
	}
	if b.pixelSpacing != nil {
		settings.PixelSpacing = *b.pixelSpacing
	}

	Logger().Debug("output settings built",
		slog.Int("scaleWidth", settings.Scale.Width),
		slog.Int("scaleHeight", settings.Scale.Height),
		slog.Int("pixelSpacing", settings.PixelSpacing),
		slog.String("theme", settings.Theme.String()),
	)

	return settings
}
