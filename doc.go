// Package simulator provides the output configuration for a simulated
// pixel display.
//
// # Overview
//
// A simulated display renders logical pixels onto an output surface at a
// configurable magnification, with an optional gap between pixels and an
// optional binary color theme. This package holds that configuration and
// derives the geometry from it: the pixel pitch, the size of the output
// surface, and the coordinate transform between logical pixel space and
// output surface space. The rendering side (window creation, event
// handling, drawing the actual pixel buffer) lives in the surrounding
// simulator and only consumes the values produced here.
//
// # Quick Start
//
//	import "github.com/Kezii/simulator"
//
//	// Configure the output once per session.
//	settings := simulator.NewOutputSettingsBuilder().
//		Scale(2).
//		PixelSpacing(1).
//		Theme(simulator.BinaryColorThemeOledBlue).
//		Build()
//
//	// On every frame or pointer event, derive geometry from the settings.
//	pitch := settings.PixelPitch()
//	pixel := settings.OutputToDisplay(simulator.Pt(mouseX, mouseY))
//
// # Coordinate System
//
// Two integer coordinate spaces are involved:
//   - Display space: logical pixels of the simulated display, origin (0,0)
//     at the top-left, before magnification.
//   - Output space: units of the rendering surface, after magnification
//     and spacing are applied.
//
// OutputSettings converts between the two in both directions.
package simulator

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 1
)
