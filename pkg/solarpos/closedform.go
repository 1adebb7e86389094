package solarpos

import (
	"math"
	"time"
)

// ClosedForm computes solar positions from the classic declination and
// hour-angle formulas. Declination uses the epoch-day-81 approximation
// (day 81 ≈ spring equinox); hour is treated as local solar time, so
// longitude is accepted only for interface parity. Accuracy is within a
// degree or two of ephemeris values, which is ample for row-spacing and
// shading work.
type ClosedForm struct{}

// declination returns the solar declination in degrees for a day of year.
func (ClosedForm) declination(dayOfYear int) float64 {
	return 23.45 * math.Sin(degToRad(360.0/365.0*(float64(dayOfYear)-81)))
}

// hourAngle returns the hour angle in degrees, negative before solar noon.
func (ClosedForm) hourAngle(hour float64) float64 {
	return 15 * (hour - 12)
}

// Elevation returns the sun elevation in degrees, clamped to [0, 90].
func (c *ClosedForm) Elevation(latitude float64, dayOfYear int, hour float64) (float64, error) {
	if err := validateDayHour(dayOfYear, hour); err != nil {
		return 0, err
	}

	latRad := degToRad(latitude)
	decRad := degToRad(c.declination(dayOfYear))
	haRad := degToRad(c.hourAngle(hour))

	sinElevation := math.Sin(latRad)*math.Sin(decRad) +
		math.Cos(latRad)*math.Cos(decRad)*math.Cos(haRad)
	elevation := radToDeg(math.Asin(clamp(sinElevation, -1, 1)))

	return clamp(elevation, 0, 90), nil
}

// Azimuth returns the sun azimuth in degrees clockwise from North. When
// the sun is at or below the horizon it returns 180 (due South) as a
// neutral placeholder.
func (c *ClosedForm) Azimuth(latitude float64, dayOfYear int, hour float64) (float64, error) {
	elevation, err := c.Elevation(latitude, dayOfYear, hour)
	if err != nil {
		return 0, err
	}
	if elevation <= 0 {
		return 180, nil
	}

	latRad := degToRad(latitude)
	decRad := degToRad(c.declination(dayOfYear))
	elRad := degToRad(elevation)

	cosAzimuth := (math.Sin(decRad) - math.Sin(latRad)*math.Sin(elRad)) /
		(math.Cos(latRad) * math.Cos(elRad))
	azimuth := radToDeg(math.Acos(clamp(cosAzimuth, -1, 1)))

	// Afternoon hours mirror to the western half of the sky to keep a
	// consistent 0-360 clockwise-from-North convention.
	if c.hourAngle(hour) > 0 {
		azimuth = 360 - azimuth
	}
	return azimuth, nil
}

// SunPath returns 24 hourly positions for the given calendar date.
func (c *ClosedForm) SunPath(latitude, longitude float64, date time.Time) ([]Position, error) {
	_ = longitude // hour is local solar time in the closed-form model

	dayOfYear := date.YearDay()
	path := make([]Position, 0, 24)
	for hour := 0; hour < 24; hour++ {
		elevation, err := c.Elevation(latitude, dayOfYear, float64(hour))
		if err != nil {
			return nil, err
		}
		azimuth, err := c.Azimuth(latitude, dayOfYear, float64(hour))
		if err != nil {
			return nil, err
		}
		path = append(path, Position{Hour: hour, Elevation: elevation, Azimuth: azimuth})
	}
	return path, nil
}
