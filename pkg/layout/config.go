// Package layout places PV modules into a site polygon and produces coarse
// sizing estimates. Placement resolves the usable area (perimeter margin
// erosion), derives the shadow-free row pitch from the winter-solstice sun
// elevation, and sweeps rows south to north and columns west to east,
// accepting any module whose centroid lies inside the usable area and
// whose overlap with it covers at least 80% of the module footprint.
package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a missing or out-of-domain configuration
// value. Geometric degeneracies (empty usable area, zero-elevation
// latitude) are not errors; they are reported in LayoutResult.Err.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultWalkwayWidth is the row walkway applied when none is configured.
const DefaultWalkwayWidth = 3.0

// minOverlapFraction is the acceptance threshold for modules straddling an
// irregular boundary: slivers are rejected, near-complete overlaps kept.
const minOverlapFraction = 0.8

// Orientation is the module mounting orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// PlacementConfig describes the site and module parameters for placement.
// Lengths are meters, power is watts, angles are degrees.
type PlacementConfig struct {
	Latitude     float64     `yaml:"latitude"`
	ModuleLength float64     `yaml:"module_length"`
	ModuleWidth  float64     `yaml:"module_width"`
	ModulePower  float64     `yaml:"module_power"`
	TiltAngle    float64     `yaml:"tilt_angle"`
	Orientation  Orientation `yaml:"orientation"`
	WalkwayWidth float64     `yaml:"walkway_width"`
	Margin       float64     `yaml:"margin"`
}

// setDefaults fills optional fields. A zero walkway width means
// "unconfigured"; an explicit zero-width walkway is not supported.
func (c *PlacementConfig) setDefaults() {
	if c.WalkwayWidth == 0 {
		c.WalkwayWidth = DefaultWalkwayWidth
	}
	if c.Orientation == "" {
		c.Orientation = OrientationPortrait
	}
}

// validate performs the single boundary validation pass. Required fields
// left at their zero value are reported as missing.
func (c *PlacementConfig) validate() error {
	switch {
	case c.ModuleLength <= 0:
		return fmt.Errorf("%w: module_length must be positive, got %g", ErrInvalidConfig, c.ModuleLength)
	case c.ModuleWidth <= 0:
		return fmt.Errorf("%w: module_width must be positive, got %g", ErrInvalidConfig, c.ModuleWidth)
	case c.ModulePower <= 0:
		return fmt.Errorf("%w: module_power must be positive, got %g", ErrInvalidConfig, c.ModulePower)
	case c.Latitude < -90 || c.Latitude > 90:
		return fmt.Errorf("%w: latitude must be in [-90, 90], got %g", ErrInvalidConfig, c.Latitude)
	case c.TiltAngle < 0 || c.TiltAngle > 90:
		return fmt.Errorf("%w: tilt_angle must be in [0, 90], got %g", ErrInvalidConfig, c.TiltAngle)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin must be non-negative, got %g", ErrInvalidConfig, c.Margin)
	case c.WalkwayWidth < 0:
		return fmt.Errorf("%w: walkway_width must be non-negative, got %g", ErrInvalidConfig, c.WalkwayWidth)
	case c.Orientation != OrientationPortrait && c.Orientation != OrientationLandscape:
		return fmt.Errorf("%w: orientation must be portrait or landscape, got %q", ErrInvalidConfig, c.Orientation)
	}
	return nil
}
