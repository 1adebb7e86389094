package shading

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

// Reference dates for the seasonal profile. The equinox stands in for both
// intermediate seasons, hence its double weight in the annual average.
var (
	winterSolsticeDate = time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC)
	summerSolsticeDate = time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	equinoxDate        = time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC)
)

// criticalHourStart and criticalHourEnd bound the high-yield window the
// winter report isolates.
const (
	criticalHourStart = 9
	criticalHourEnd   = 15
)

// ArrayParams is the slice of a layout the shading engine needs.
type ArrayParams struct {
	RowPitch     float64 `yaml:"row_pitch"`
	ModuleLength float64 `yaml:"module_length"`
	TiltAngle    float64 `yaml:"tilt_angle"`
}

// Location is a geographic site position in degrees, east positive.
type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Sample is the shading state for one daylight hour.
type Sample struct {
	Hour             int     `json:"hour"`
	SunElevation     float64 `json:"sun_elevation"`
	ShadingFraction  float64 `json:"shading_fraction"`
	ElectricalLoss   float64 `json:"electrical_loss"`
	PowerLossPercent float64 `json:"power_loss"`
}

// DayAnalysis aggregates the hourly samples of one reference date.
type DayAnalysis struct {
	Date               time.Time `json:"date"`
	Hourly             []Sample  `json:"hourly_data"`
	AverageLossPercent float64   `json:"average_loss"`
}

// Profile is the seasonal shading aggregate over the two solstices and the
// equinox.
type Profile struct {
	WinterSolstice           DayAnalysis `json:"winter_solstice"`
	SummerSolstice           DayAnalysis `json:"summer_solstice"`
	Equinox                  DayAnalysis `json:"equinox"`
	AnnualAverageLossPercent float64     `json:"annual_average_loss"`
	WorstCaseLossPercent     float64     `json:"worst_case_loss"`
}

// WinterReport is the worst-case (winter solstice) analysis with the
// critical-hours window isolated.
type WinterReport struct {
	Date                     time.Time `json:"date"`
	Latitude                 float64   `json:"latitude"`
	Hourly                   []Sample  `json:"hourly_data"`
	CriticalHoursLossPercent float64   `json:"critical_hours_loss"`
	MaxLossPercent           float64   `json:"max_loss"`
	DailyAverageLossPercent  float64   `json:"daily_average_loss"`
	DaylightHours            int       `json:"total_daylight_hours"`
}

// InstantAnalysis is the shading state at one specific moment.
type InstantAnalysis struct {
	Timestamp        time.Time `json:"timestamp"`
	SunElevation     float64   `json:"sun_elevation"`
	SunAzimuth       float64   `json:"sun_azimuth"`
	ShadingFraction  float64   `json:"shading_fraction"`
	ElectricalLoss   float64   `json:"electrical_loss"`
	PowerLossPercent float64   `json:"power_loss_percent"`
	ShadowLength     float64   `json:"shadow_length"`
	ModuleHeight     float64   `json:"module_height"`
}

// Engine runs hourly and seasonal shading analyses against a solar
// position model. A nil model defaults to the closed-form model; a nil
// logger disables diagnostics.
type Engine struct {
	model  solarpos.Model
	logger *zap.SugaredLogger
}

// NewEngine returns an Engine backed by the given solar position model.
func NewEngine(model solarpos.Model, logger *zap.SugaredLogger) *Engine {
	if model == nil {
		model = solarpos.New(solarpos.ModelClosedForm)
	}
	return &Engine{model: model, logger: logger}
}

// HourlyShading computes shading and electrical loss for every daylight
// hour of the given date. Night hours are skipped.
func (e *Engine) HourlyShading(params ArrayParams, date time.Time, lat, lon float64) ([]Sample, error) {
	path, err := e.model.SunPath(lat, lon, date)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(path))
	for _, pos := range path {
		if pos.Elevation <= 0 {
			continue
		}
		fraction, err := InterRowShading(params.RowPitch, params.ModuleLength, params.TiltAngle, pos.Elevation)
		if err != nil {
			return nil, err
		}
		loss, err := ElectricalLoss(fraction, DefaultBypassDiodes)
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{
			Hour:             pos.Hour,
			SunElevation:     pos.Elevation,
			ShadingFraction:  fraction,
			ElectricalLoss:   loss,
			PowerLossPercent: loss * 100,
		})
	}
	return samples, nil
}

// Profile aggregates hourly shading over the winter solstice, summer
// solstice and equinox. The annual average weights the seasons
// 0.25/0.25/0.5 with the equinox standing in for spring and autumn; the
// worst case is the maximum hourly loss across all three days.
func (e *Engine) Profile(params ArrayParams, loc Location) (*Profile, error) {
	winter, err := e.analyzeDay(params, winterSolsticeDate, loc)
	if err != nil {
		return nil, fmt.Errorf("winter solstice analysis: %w", err)
	}
	summer, err := e.analyzeDay(params, summerSolsticeDate, loc)
	if err != nil {
		return nil, fmt.Errorf("summer solstice analysis: %w", err)
	}
	equinox, err := e.analyzeDay(params, equinoxDate, loc)
	if err != nil {
		return nil, fmt.Errorf("equinox analysis: %w", err)
	}

	profile := &Profile{
		WinterSolstice: winter,
		SummerSolstice: summer,
		Equinox:        equinox,
		AnnualAverageLossPercent: 0.25*winter.AverageLossPercent +
			0.25*summer.AverageLossPercent +
			0.5*equinox.AverageLossPercent,
		WorstCaseLossPercent: worstLossPercent(winter.Hourly, summer.Hourly, equinox.Hourly),
	}

	if e.logger != nil {
		e.logger.Debugw("shading profile complete",
			"annual_average_loss", profile.AnnualAverageLossPercent,
			"worst_case_loss", profile.WorstCaseLossPercent)
	}
	return profile, nil
}

// WinterSolsticeReport analyzes the lowest-sun day of the year and
// isolates the 9:00-15:00 critical window.
func (e *Engine) WinterSolsticeReport(params ArrayParams, lat, lon float64) (*WinterReport, error) {
	hourly, err := e.HourlyShading(params, winterSolsticeDate, lat, lon)
	if err != nil {
		return nil, err
	}

	var critical []Sample
	for _, s := range hourly {
		if s.Hour >= criticalHourStart && s.Hour <= criticalHourEnd {
			critical = append(critical, s)
		}
	}

	report := &WinterReport{
		Date:                     winterSolsticeDate,
		Latitude:                 lat,
		Hourly:                   hourly,
		CriticalHoursLossPercent: averageLossPercent(critical),
		MaxLossPercent:           worstLossPercent(critical),
		DailyAverageLossPercent:  averageLossPercent(hourly),
		DaylightHours:            len(hourly),
	}
	return report, nil
}

// AnalyzeInstant evaluates shading for a single solar position, including
// the raw shadow geometry.
func (e *Engine) AnalyzeInstant(params ArrayParams, pos solarpos.Position, t time.Time) (*InstantAnalysis, error) {
	fraction, err := InterRowShading(params.RowPitch, params.ModuleLength, params.TiltAngle, pos.Elevation)
	if err != nil {
		return nil, err
	}
	loss, err := ElectricalLoss(fraction, DefaultBypassDiodes)
	if err != nil {
		return nil, err
	}

	moduleHeight := params.ModuleLength * sinDeg(params.TiltAngle)
	shadow, err := ShadowLength(moduleHeight, pos.Elevation)
	if err != nil {
		return nil, err
	}

	return &InstantAnalysis{
		Timestamp:        t,
		SunElevation:     pos.Elevation,
		SunAzimuth:       pos.Azimuth,
		ShadingFraction:  fraction,
		ElectricalLoss:   loss,
		PowerLossPercent: loss * 100,
		ShadowLength:     shadow,
		ModuleHeight:     moduleHeight,
	}, nil
}

// analyzeDay wraps HourlyShading with the per-day average.
func (e *Engine) analyzeDay(params ArrayParams, date time.Time, loc Location) (DayAnalysis, error) {
	hourly, err := e.HourlyShading(params, date, loc.Latitude, loc.Longitude)
	if err != nil {
		return DayAnalysis{}, err
	}
	return DayAnalysis{
		Date:               date,
		Hourly:             hourly,
		AverageLossPercent: averageLossPercent(hourly),
	}, nil
}

// averageLossPercent is the mean electrical loss of a sample set, as a
// percentage. Empty sets average to zero.
func averageLossPercent(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	losses := make([]float64, len(samples))
	for i, s := range samples {
		losses[i] = s.ElectricalLoss
	}
	return stat.Mean(losses, nil) * 100
}

// worstLossPercent is the maximum hourly loss across the given sample
// sets, as a percentage.
func worstLossPercent(sets ...[]Sample) float64 {
	var losses []float64
	for _, set := range sets {
		for _, s := range set {
			losses = append(losses, s.PowerLossPercent)
		}
	}
	if len(losses) == 0 {
		return 0
	}
	return floats.Max(losses)
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}
