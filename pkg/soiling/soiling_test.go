package soiling

import (
	"errors"
	"testing"
)

func TestRegionalRates(t *testing.T) {
	rates, err := RegionalRates("gujarat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.Monsoon >= rates.PostMonsoon || rates.PostMonsoon >= rates.PreMonsoon {
		t.Errorf("expected monsoon < post-monsoon < pre-monsoon, got %+v", rates)
	}

	// Zone lookup is case-insensitive.
	upper, err := RegionalRates("Gujarat")
	if err != nil {
		t.Fatalf("unexpected error for mixed-case zone: %v", err)
	}
	if upper != rates {
		t.Errorf("case-insensitive lookup returned %+v, expected %+v", upper, rates)
	}

	if _, err := RegionalRates("rajasthan"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown zone: got %v, expected ErrInvalidConfig", err)
	}
}

func TestSeasonRate(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want float64
	}{
		{"january is post-monsoon", 15, 0.35},
		{"day before pre-monsoon", 59, 0.35},
		{"first pre-monsoon day", 60, 0.55},
		{"last pre-monsoon day", 151, 0.55},
		{"first monsoon day", 152, 0.10},
		{"last monsoon day", 273, 0.10},
		{"october is post-monsoon", 274, 0.35},
		{"december is post-monsoon", 365, 0.35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gujaratRates.seasonRate(tt.day); got != tt.want {
				t.Errorf("seasonRate(%d) = %g, expected %g", tt.day, got, tt.want)
			}
		})
	}
}

func TestDailyRate(t *testing.T) {
	tests := []struct {
		name string
		day  int
		tilt float64
		want float64
	}{
		{"flat modules soil fastest", 15, 5, 0.35 * 1.8},
		{"shallow tilt", 15, 15, 0.35 * 1.3},
		{"reference tilt", 15, 25, 0.35 * 1.0},
		{"steep tilt sheds dust", 15, 40, 0.35 * 0.7},
		{"pre-monsoon at reference tilt", 100, 25, 0.55},
		{"monsoon rain washing", 200, 25, 0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DailyRate(tt.day, tt.tilt, "gujarat")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("DailyRate(%d, %g) = %g, expected %g", tt.day, tt.tilt, got, tt.want)
			}
		})
	}

	if _, err := DailyRate(15, 25, "unknown"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown zone: got %v, expected ErrInvalidConfig", err)
	}
}

func TestAnnualLossUncleaned(t *testing.T) {
	loss, err := AnnualLoss("gujarat", 25, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Without cleaning the level saturates early in the year, so the annual
	// mean sits close to the cap.
	if loss < 12 || loss > MaxSoilingPercent {
		t.Errorf("uncleaned annual loss = %g%%, expected between 12%% and %g%%", loss, MaxSoilingPercent)
	}
}

func TestAnnualLossCleaningReducesLoss(t *testing.T) {
	prev, err := AnnualLoss("gujarat", 25, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, freq := range []int{4, 12, 52} {
		loss, err := AnnualLoss("gujarat", 25, freq)
		if err != nil {
			t.Fatalf("frequency %d: unexpected error: %v", freq, err)
		}
		if loss >= prev {
			t.Errorf("frequency %d: loss %g%% not below %g%% at the lower frequency", freq, loss, prev)
		}
		prev = loss
	}

	weekly, _ := AnnualLoss("gujarat", 25, 52)
	if weekly > 3 {
		t.Errorf("weekly cleaning loss = %g%%, expected a low residual", weekly)
	}
}

func TestAnnualLossTiltOrdering(t *testing.T) {
	// Steeper tilt sheds dust, so annual loss must not increase with tilt.
	prev := MaxSoilingPercent + 1
	for _, tilt := range []float64{5, 15, 25, 40} {
		loss, err := AnnualLoss("gujarat", tilt, 12)
		if err != nil {
			t.Fatalf("tilt %g: unexpected error: %v", tilt, err)
		}
		if loss > prev {
			t.Errorf("tilt %g: loss %g%% above loss %g%% at a shallower tilt", tilt, loss, prev)
		}
		prev = loss
	}
}

func TestAnnualLossStaysUnderCap(t *testing.T) {
	for _, freq := range []int{0, 4, 104} {
		loss, err := AnnualLoss("gujarat", 5, freq)
		if err != nil {
			t.Fatalf("frequency %d: unexpected error: %v", freq, err)
		}
		if loss < 0 || loss > MaxSoilingPercent {
			t.Errorf("frequency %d: loss %g%% outside [0, %g]", freq, loss, MaxSoilingPercent)
		}
	}
}

func TestAnnualLossUnknownZone(t *testing.T) {
	if _, err := AnnualLoss("sahara", 25, 12); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, expected ErrInvalidConfig", err)
	}
}

func TestOptimizeCleaningSchedule(t *testing.T) {
	schedule, err := OptimizeCleaningSchedule(0.35, 25, "gujarat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule.Options) != len(cleaningFrequencies) {
		t.Fatalf("got %d options, expected %d", len(schedule.Options), len(cleaningFrequencies))
	}
	for i, opt := range schedule.Options {
		if opt.Frequency != cleaningFrequencies[i] {
			t.Errorf("option %d: frequency %d, expected %d", i, opt.Frequency, cleaningFrequencies[i])
		}
		if opt.Description != FrequencyDescription(opt.Frequency) {
			t.Errorf("option %d: description %q does not match frequency %d", i, opt.Description, opt.Frequency)
		}
	}

	// The winner must beat every other candidate on loss plus penalty.
	bestScore := schedule.ExpectedLossPercent + frequencyPenalty*float64(schedule.OptimalFrequency)
	for _, opt := range schedule.Options {
		score := opt.AnnualLossPercent + frequencyPenalty*float64(opt.Frequency)
		if score < bestScore {
			t.Errorf("frequency %d scores %g, better than optimal %d at %g",
				opt.Frequency, score, schedule.OptimalFrequency, bestScore)
		}
	}

	if schedule.OptimalFrequency == 0 {
		t.Error("expected some cleaning to beat no cleaning in a Gujarat climate")
	}
	if schedule.OptimalDescription != FrequencyDescription(schedule.OptimalFrequency) {
		t.Errorf("optimal description %q does not match frequency %d",
			schedule.OptimalDescription, schedule.OptimalFrequency)
	}

	if _, err := OptimizeCleaningSchedule(0.35, 25, "atacama"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown zone: got %v, expected ErrInvalidConfig", err)
	}
}

func TestFrequencyDescription(t *testing.T) {
	tests := []struct {
		frequency int
		want      string
	}{
		{0, "No cleaning"},
		{4, "Quarterly"},
		{6, "Bi-monthly"},
		{12, "Monthly"},
		{24, "Bi-weekly"},
		{52, "Weekly"},
		{104, "Twice weekly"},
		{7, "7 times per year"},
	}
	for _, tt := range tests {
		if got := FrequencyDescription(tt.frequency); got != tt.want {
			t.Errorf("FrequencyDescription(%d) = %q, expected %q", tt.frequency, got, tt.want)
		}
	}
}
