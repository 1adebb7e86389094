package geometry

import (
	"fmt"
	"math"
)

// RowPitch returns the shadow-free row-to-row spacing in meters:
//
//	R = L·cos(β) + L·sin(β)/tan(α)
//
// where L is the module length in the tilt direction, β the tilt angle and
// α the reference solar elevation (normally the winter-solstice noon
// elevation). The first term is the module's horizontal footprint, the
// second the shadow its raised edge casts at the reference sun angle.
func RowPitch(moduleLength, tiltAngle, solarElevation float64) (float64, error) {
	if moduleLength <= 0 {
		return 0, fmt.Errorf("%w: module length must be positive, got %g", ErrInvalidParameter, moduleLength)
	}
	if tiltAngle < 0 || tiltAngle > 90 {
		return 0, fmt.Errorf("%w: tilt angle must be between 0 and 90 degrees, got %g", ErrInvalidParameter, tiltAngle)
	}
	if solarElevation <= 0 || solarElevation >= 90 {
		return 0, fmt.Errorf("%w: solar elevation must be between 0 and 90 degrees, got %g", ErrInvalidParameter, solarElevation)
	}

	beta := tiltAngle * math.Pi / 180
	alpha := solarElevation * math.Pi / 180

	footprint := moduleLength * math.Cos(beta)
	shadow := moduleLength * math.Sin(beta) / math.Tan(alpha)
	return footprint + shadow, nil
}

// GCR returns the ground coverage ratio, module length over row pitch.
func GCR(moduleLength, rowPitch float64) (float64, error) {
	if rowPitch <= 0 {
		return 0, fmt.Errorf("%w: row pitch must be positive, got %g", ErrInvalidParameter, rowPitch)
	}
	return moduleLength / rowPitch, nil
}
