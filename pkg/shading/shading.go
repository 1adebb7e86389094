// Package shading computes geometric inter-row shading for tilted PV rows
// and maps it to electrical power loss through a bypass-diode staircase
// model. Hourly, daily and seasonal aggregations are provided by Engine.
package shading

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter indicates caller misuse: a geometric or electrical
// parameter outside its valid domain.
var ErrInvalidParameter = errors.New("invalid parameter")

// DefaultBypassDiodes is the typical per-module bypass diode count.
const DefaultBypassDiodes = 3

// linearLossThreshold is the shading fraction below which no diode has
// activated and loss tracks shading linearly.
const linearLossThreshold = 0.05

// InterRowShading returns the fraction of a module's length shaded by the
// row in front of it, in [0, 1]. A sun at or below the horizon shades the
// row fully; a sun at zenith not at all. Otherwise the shadow cast by the
// tilted module's raised edge is compared against the clear ground between
// rows.
func InterRowShading(rowPitch, moduleLength, tiltAngle, sunAltitude float64) (float64, error) {
	if rowPitch <= 0 {
		return 0, fmt.Errorf("%w: row pitch must be positive, got %g", ErrInvalidParameter, rowPitch)
	}
	if moduleLength <= 0 {
		return 0, fmt.Errorf("%w: module length must be positive, got %g", ErrInvalidParameter, moduleLength)
	}
	if tiltAngle < 0 || tiltAngle > 90 {
		return 0, fmt.Errorf("%w: tilt angle must be between 0 and 90 degrees, got %g", ErrInvalidParameter, tiltAngle)
	}

	if sunAltitude <= 0 {
		return 1, nil
	}
	if sunAltitude >= 90 {
		return 0, nil
	}

	tiltRad := tiltAngle * math.Pi / 180
	altitudeRad := sunAltitude * math.Pi / 180

	moduleHeight := moduleLength * math.Sin(tiltRad)
	shadowLength := moduleHeight / math.Tan(altitudeRad)
	footprint := moduleLength * math.Cos(tiltRad)
	clearDistance := rowPitch - footprint

	if shadowLength > clearDistance {
		return math.Min((shadowLength-clearDistance)/moduleLength, 1), nil
	}
	return 0, nil
}

// ElectricalLoss maps a geometric shading fraction to electrical power
// loss in [0, 1] using a bypass-diode staircase:
//
//   - below 5% shading no diode activates and loss is linear;
//   - any non-trivial shading within a diode band costs the whole band
//     (1/bypassDiodes), and each fully crossed band adds another;
//   - a residual beyond 5% of a band width rounds the current band up.
//
// The rounding policy is deliberately pessimistic rather than derived from
// an IV curve. Output is monotonically non-decreasing in the input.
func ElectricalLoss(shadingFraction float64, bypassDiodes int) (float64, error) {
	if shadingFraction < 0 || shadingFraction > 1 {
		return 0, fmt.Errorf("%w: shading fraction must be between 0 and 1, got %g", ErrInvalidParameter, shadingFraction)
	}
	if bypassDiodes <= 0 {
		return 0, fmt.Errorf("%w: bypass diode count must be positive, got %d", ErrInvalidParameter, bypassDiodes)
	}

	band := 1.0 / float64(bypassDiodes)

	if shadingFraction < linearLossThreshold {
		return shadingFraction, nil
	}
	if shadingFraction < band {
		return band, nil
	}

	bypassed := int(shadingFraction / band)
	if bypassed >= bypassDiodes {
		return 1, nil
	}

	loss := float64(bypassed) * band
	if shadingFraction-float64(bypassed)*band > linearLossThreshold*band {
		loss += band
	}
	return math.Min(loss, 1), nil
}

// BypassDiodeLossPercent is ElectricalLoss with percentage input and
// output and the default diode count.
func BypassDiodeLossPercent(shadingPercent float64) (float64, error) {
	loss, err := ElectricalLoss(shadingPercent/100, DefaultBypassDiodes)
	if err != nil {
		return 0, err
	}
	return loss * 100, nil
}

// ShadowLength returns the ground shadow length cast by an obstruction of
// the given height at the given sun elevation. Below the horizon the
// shadow is unbounded (+Inf); at or above zenith it vanishes.
func ShadowLength(moduleHeight, sunElevation float64) (float64, error) {
	if moduleHeight < 0 {
		return 0, fmt.Errorf("%w: module height must be non-negative, got %g", ErrInvalidParameter, moduleHeight)
	}
	if sunElevation <= 0 {
		return math.Inf(1), nil
	}
	if sunElevation >= 90 {
		return 0, nil
	}
	return moduleHeight / math.Tan(sunElevation*math.Pi/180), nil
}
