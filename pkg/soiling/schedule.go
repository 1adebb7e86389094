package soiling

import "fmt"

// cleaningFrequencies is the candidate set evaluated by the schedule
// optimizer: none, quarterly, bi-monthly, monthly, bi-weekly, weekly and
// twice weekly.
var cleaningFrequencies = []int{0, 4, 6, 12, 24, 52, 104}

// frequencyPenalty is the linear cost-of-cleaning weight added per
// cleaning event when scoring candidates.
const frequencyPenalty = 0.1

// ScheduleOption is one evaluated cleaning frequency.
type ScheduleOption struct {
	Frequency         int     `json:"frequency"`
	AnnualLossPercent float64 `json:"annual_loss_percent"`
	Description       string  `json:"description"`
}

// Schedule is the result of the cleaning-frequency optimization.
type Schedule struct {
	OptimalFrequency    int              `json:"optimal_frequency"`
	OptimalDescription  string           `json:"optimal_description"`
	ExpectedLossPercent float64          `json:"expected_annual_loss"`
	Options             []ScheduleOption `json:"all_options"`
}

// OptimizeCleaningSchedule evaluates the fixed candidate frequencies and
// returns the one minimizing annual loss plus a linear cleaning-cost
// penalty, along with the full evaluation table. The soilingRate argument
// is accepted for interface parity with callers that precompute an average
// rate; the simulation derives its own seasonal rates from the zone.
func OptimizeCleaningSchedule(soilingRate, tiltAngle float64, climateZone string) (*Schedule, error) {
	_ = soilingRate

	options := make([]ScheduleOption, 0, len(cleaningFrequencies))
	for _, freq := range cleaningFrequencies {
		loss, err := AnnualLoss(climateZone, tiltAngle, freq)
		if err != nil {
			return nil, err
		}
		options = append(options, ScheduleOption{
			Frequency:         freq,
			AnnualLossPercent: loss,
			Description:       FrequencyDescription(freq),
		})
	}

	best := options[0]
	bestScore := best.AnnualLossPercent + frequencyPenalty*float64(best.Frequency)
	for _, opt := range options[1:] {
		score := opt.AnnualLossPercent + frequencyPenalty*float64(opt.Frequency)
		if score < bestScore {
			best, bestScore = opt, score
		}
	}

	return &Schedule{
		OptimalFrequency:    best.Frequency,
		OptimalDescription:  best.Description,
		ExpectedLossPercent: best.AnnualLossPercent,
		Options:             options,
	}, nil
}

// FrequencyDescription returns the human-readable label for a cleaning
// frequency.
func FrequencyDescription(frequency int) string {
	switch frequency {
	case 0:
		return "No cleaning"
	case 4:
		return "Quarterly"
	case 6:
		return "Bi-monthly"
	case 12:
		return "Monthly"
	case 24:
		return "Bi-weekly"
	case 52:
		return "Weekly"
	case 104:
		return "Twice weekly"
	default:
		return fmt.Sprintf("%d times per year", frequency)
	}
}
