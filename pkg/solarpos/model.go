// Package solarpos models solar geometry for PV layout work: sun
// elevation and azimuth for a latitude, day and hour, hourly sun paths,
// and the worst-case (winter solstice) noon elevation used to size
// shadow-free row spacing.
//
// Two implementations sit behind the Model interface: a fast closed-form
// declination/hour-angle model and a higher-precision ephemeris-backed
// model. Both are pure functions of their inputs.
package solarpos

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidParameter indicates caller misuse: a day-of-year or hour
// outside its valid range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ModelKind selects a Model implementation.
type ModelKind string

const (
	// ModelClosedForm is the fast declination/hour-angle model.
	ModelClosedForm ModelKind = "closed-form"
	// ModelEphemeris is the meeus-backed apparent-position model.
	ModelEphemeris ModelKind = "ephemeris"
)

// Position is one hourly sun-path sample. Elevation is clamped to
// [0, 90] degrees; 0 means the sun is at or below the horizon. Azimuth is
// degrees clockwise from North in [0, 360).
type Position struct {
	Hour      int
	Elevation float64
	Azimuth   float64
}

// Model computes solar positions. Hour is local solar time in decimal
// hours; longitude matters only to implementations that work in absolute
// time.
type Model interface {
	// Elevation returns the sun elevation in degrees, clamped to [0, 90].
	Elevation(latitude float64, dayOfYear int, hour float64) (float64, error)
	// Azimuth returns the sun azimuth in degrees clockwise from North.
	Azimuth(latitude float64, dayOfYear int, hour float64) (float64, error)
	// SunPath returns 24 hourly positions for the given calendar date.
	SunPath(latitude, longitude float64, date time.Time) ([]Position, error)
}

// New returns the Model implementation for kind, defaulting to the
// closed-form model for unrecognized kinds.
func New(kind ModelKind) Model {
	switch kind {
	case ModelEphemeris:
		return &Ephemeris{}
	default:
		return &ClosedForm{}
	}
}

// WinterSolsticeAngle returns the solar-noon elevation at winter solstice
// for the given latitude, clamped to be non-negative:
//
//	α = 90 − |lat| − 23.5
//
// The absolute value selects the hemisphere's own winter implicitly. This
// is the conservative worst-case elevation used for row spacing.
func WinterSolsticeAngle(latitude float64) float64 {
	angle := 90 - math.Abs(latitude) - 23.5
	if angle < 0 {
		return 0
	}
	return angle
}

// validateDayHour rejects out-of-range day-of-year and hour values.
func validateDayHour(dayOfYear int, hour float64) error {
	if dayOfYear < 1 || dayOfYear > 366 {
		return fmt.Errorf("%w: day of year must be in [1, 366], got %d", ErrInvalidParameter, dayOfYear)
	}
	if hour < 0 || hour > 24 {
		return fmt.Errorf("%w: hour must be in [0, 24], got %g", ErrInvalidParameter, hour)
	}
	return nil
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
