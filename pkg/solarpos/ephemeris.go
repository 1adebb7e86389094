package solarpos

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// referenceYear anchors the day-of-year Elevation/Azimuth calls to a
// concrete calendar year so that Julian dates are well-defined. 2024 is a
// leap year, so day 366 is valid.
const referenceYear = 2024

// Ephemeris computes solar positions from the apparent solar coordinates
// of the Meeus algorithms (apparent right ascension/declination plus
// apparent sidereal time), giving sub-degree accuracy. It shares the
// closed-form model's conventions: elevation clamped to [0, 90], azimuth
// clockwise from North, 180 returned when the sun is below the horizon.
type Ephemeris struct{}

// horizontal returns elevation and azimuth (degrees) for an observer at
// latitude/longitude (east positive) at UTC instant t.
func (Ephemeris) horizontal(latitude, longitude float64, t time.Time) (elevation, azimuth float64) {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)

	// Meeus works with west-positive longitude and measures azimuth from
	// South; convert both conventions.
	a, h := coord.EqToHz(ra, dec, unit.AngleFromDeg(latitude), unit.AngleFromDeg(-longitude), st)
	elevation = h.Deg()
	azimuth = math.Mod(a.Deg()+180+360, 360)
	return elevation, azimuth
}

// timeFor converts a day-of-year and solar hour at the given longitude to
// the corresponding UTC instant in the reference year.
func (Ephemeris) timeFor(dayOfYear int, hour, longitude float64) time.Time {
	midnight := time.Date(referenceYear, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
	solarOffset := hour - longitude/15
	return midnight.Add(time.Duration(solarOffset * float64(time.Hour)))
}

// Elevation returns the sun elevation in degrees, clamped to [0, 90]. The
// hour is interpreted as local solar time at the prime meridian.
func (e *Ephemeris) Elevation(latitude float64, dayOfYear int, hour float64) (float64, error) {
	if err := validateDayHour(dayOfYear, hour); err != nil {
		return 0, err
	}
	elevation, _ := e.horizontal(latitude, 0, e.timeFor(dayOfYear, hour, 0))
	return clamp(elevation, 0, 90), nil
}

// Azimuth returns the sun azimuth in degrees clockwise from North, or 180
// when the sun is at or below the horizon.
func (e *Ephemeris) Azimuth(latitude float64, dayOfYear int, hour float64) (float64, error) {
	if err := validateDayHour(dayOfYear, hour); err != nil {
		return 0, err
	}
	elevation, azimuth := e.horizontal(latitude, 0, e.timeFor(dayOfYear, hour, 0))
	if elevation <= 0 {
		return 180, nil
	}
	return azimuth, nil
}

// SunPath returns 24 hourly positions for the given calendar date. Hours
// are local solar time at the given longitude (east positive).
func (e *Ephemeris) SunPath(latitude, longitude float64, date time.Time) ([]Position, error) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	path := make([]Position, 0, 24)
	for hour := 0; hour < 24; hour++ {
		solarOffset := float64(hour) - longitude/15
		t := midnight.Add(time.Duration(solarOffset * float64(time.Hour)))

		elevation, azimuth := e.horizontal(latitude, longitude, t)
		if elevation <= 0 {
			elevation = 0
			azimuth = 180
		}
		path = append(path, Position{
			Hour:      hour,
			Elevation: clamp(elevation, 0, 90),
			Azimuth:   azimuth,
		})
	}
	return path, nil
}
