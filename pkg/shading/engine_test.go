package shading

import (
	"testing"
	"time"

	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

// tightParams is an array pitched tight enough to shade itself in winter
// at Gujarat latitudes.
func tightParams() ArrayParams {
	return ArrayParams{RowPitch: 2.5, ModuleLength: 2.278, TiltAngle: 15}
}

func testLocation() Location {
	return Location{Latitude: 23.0225, Longitude: 72.5714}
}

func TestHourlyShadingSkipsNight(t *testing.T) {
	engine := NewEngine(nil, nil)
	date := time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC)

	samples, err := engine.HourlyShading(tightParams(), date, 23.0225, 72.5714)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("expected daylight samples at 23°N in March")
	}
	if len(samples) >= 24 {
		t.Errorf("got %d samples, expected night hours to be skipped", len(samples))
	}
	for _, s := range samples {
		if s.SunElevation <= 0 {
			t.Errorf("hour %d: night sample leaked through (elevation %g)", s.Hour, s.SunElevation)
		}
		if s.ShadingFraction < 0 || s.ShadingFraction > 1 {
			t.Errorf("hour %d: shading fraction %g outside [0, 1]", s.Hour, s.ShadingFraction)
		}
		if s.ElectricalLoss < 0 || s.ElectricalLoss > 1 {
			t.Errorf("hour %d: electrical loss %g outside [0, 1]", s.Hour, s.ElectricalLoss)
		}
		if s.PowerLossPercent != s.ElectricalLoss*100 {
			t.Errorf("hour %d: power loss %g inconsistent with loss %g", s.Hour, s.PowerLossPercent, s.ElectricalLoss)
		}
	}
}

func TestProfile(t *testing.T) {
	engine := NewEngine(solarpos.New(solarpos.ModelClosedForm), nil)

	profile, err := engine.Profile(tightParams(), testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winter := profile.WinterSolstice.AverageLossPercent
	summer := profile.SummerSolstice.AverageLossPercent
	equinox := profile.Equinox.AverageLossPercent

	// Low winter sun must cost at least as much as high summer sun.
	if winter < summer {
		t.Errorf("winter loss %g%% below summer loss %g%%", winter, summer)
	}

	expected := 0.25*winter + 0.25*summer + 0.5*equinox
	if diff := profile.AnnualAverageLossPercent - expected; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("annual average %g%% does not match seasonal weighting %g%%", profile.AnnualAverageLossPercent, expected)
	}

	if profile.WorstCaseLossPercent < winter {
		t.Errorf("worst case %g%% below winter average %g%%", profile.WorstCaseLossPercent, winter)
	}
	if profile.WorstCaseLossPercent > 100 {
		t.Errorf("worst case %g%% above 100%%", profile.WorstCaseLossPercent)
	}

	// A tight 2.5 m pitch at 23°N must show real winter shading loss.
	if winter == 0 {
		t.Error("expected non-zero winter loss for a tightly pitched array")
	}
}

func TestProfileWideArrayIsLossFree(t *testing.T) {
	engine := NewEngine(nil, nil)
	wide := ArrayParams{RowPitch: 12, ModuleLength: 2.278, TiltAngle: 15}

	profile, err := engine.Profile(wide, testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With a 12 m pitch the midday hours are shade-free; only the grazing
	// sunrise/sunset hours contribute, so losses stay small.
	if profile.SummerSolstice.AverageLossPercent > 20 {
		t.Errorf("summer loss %g%% unexpectedly high for a wide array", profile.SummerSolstice.AverageLossPercent)
	}
}

func TestWinterSolsticeReport(t *testing.T) {
	engine := NewEngine(nil, nil)

	report, err := engine.WinterSolsticeReport(tightParams(), 23.0225, 72.5714)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.DaylightHours != len(report.Hourly) {
		t.Errorf("DaylightHours = %d, expected %d", report.DaylightHours, len(report.Hourly))
	}
	if report.DaylightHours == 0 {
		t.Fatal("expected daylight at 23°N on the winter solstice")
	}
	if report.MaxLossPercent < report.CriticalHoursLossPercent {
		t.Errorf("peak %g%% below critical-hours average %g%%", report.MaxLossPercent, report.CriticalHoursLossPercent)
	}
	for _, s := range report.Hourly {
		if s.Hour >= criticalHourStart && s.Hour <= criticalHourEnd && s.PowerLossPercent > report.MaxLossPercent {
			t.Errorf("hour %d loss %g%% exceeds reported peak %g%%", s.Hour, s.PowerLossPercent, report.MaxLossPercent)
		}
	}
}

func TestAnalyzeInstant(t *testing.T) {
	engine := NewEngine(nil, nil)
	now := time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC)

	analysis, err := engine.AnalyzeInstant(tightParams(), solarpos.Position{Hour: 12, Elevation: 30, Azimuth: 180}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.ModuleHeight <= 0 {
		t.Errorf("module height = %g, expected positive", analysis.ModuleHeight)
	}
	if analysis.ShadowLength <= 0 {
		t.Errorf("shadow length = %g, expected positive at 30° sun", analysis.ShadowLength)
	}
	if analysis.PowerLossPercent != analysis.ElectricalLoss*100 {
		t.Errorf("power loss percent %g inconsistent with loss %g", analysis.PowerLossPercent, analysis.ElectricalLoss)
	}
	if !analysis.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, expected %v", analysis.Timestamp, now)
	}
}
