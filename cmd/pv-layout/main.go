// pv-layout runs the full layout pipeline for a site described in a YAML
// file: usable-area resolution, module placement, sizing estimate,
// seasonal shading profile and soiling analysis.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ganeshgowri-ASA/pv-layout-designer/internal/log"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/geometry"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/layout"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/shading"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/soiling"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

// siteFile is the on-disk site description.
type siteFile struct {
	Site      []geometry.Point       `yaml:"site"`
	Placement layout.PlacementConfig `yaml:"placement"`
	Location  shading.Location       `yaml:"location"`
	TargetGCR float64                `yaml:"target_gcr"`
	Soiling   struct {
		ClimateZone      string `yaml:"climate_zone"`
		CleaningsPerYear int    `yaml:"cleanings_per_year"`
	} `yaml:"soiling"`
	SolarModel string `yaml:"solar_model"`
}

func main() {
	var (
		configPath string
		debug      bool
	)
	flag.StringVar(&configPath, "config", "site.yaml", "path to the YAML site description")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := loadSite(configPath)
	if err != nil {
		log.Fatalf("loading site config: %v", err)
	}

	logger := log.GetSugaredLogger()
	model := solarpos.New(solarpos.ModelKind(cfg.SolarModel))

	result, err := layout.NewPlacer(logger).PlaceModules(cfg.Site, cfg.Placement)
	if err != nil {
		log.Fatalf("placing modules: %v", err)
	}
	printLayout(result)
	if result.Err != "" {
		return
	}

	if cfg.TargetGCR > 0 {
		estimate, err := layout.OptimizeLayout(result.UsableArea, layout.ModuleDims{
			Length: cfg.Placement.ModuleLength,
			Width:  cfg.Placement.ModuleWidth,
			Power:  cfg.Placement.ModulePower,
		}, cfg.TargetGCR, cfg.Placement.Latitude, cfg.Placement.TiltAngle)
		if err != nil {
			log.Fatalf("sizing estimate: %v", err)
		}
		printEstimate(cfg.TargetGCR, estimate)
	}

	engine := shading.NewEngine(model, logger)
	params := shading.ArrayParams{
		RowPitch:     result.RowPitch,
		ModuleLength: cfg.Placement.ModuleLength,
		TiltAngle:    cfg.Placement.TiltAngle,
	}
	profile, err := engine.Profile(params, cfg.Location)
	if err != nil {
		log.Fatalf("shading profile: %v", err)
	}
	report, err := engine.WinterSolsticeReport(params, cfg.Location.Latitude, cfg.Location.Longitude)
	if err != nil {
		log.Fatalf("winter solstice report: %v", err)
	}
	printShading(profile, report)

	if cfg.Soiling.ClimateZone != "" {
		annual, err := soiling.AnnualLoss(cfg.Soiling.ClimateZone, cfg.Placement.TiltAngle, cfg.Soiling.CleaningsPerYear)
		if err != nil {
			log.Fatalf("soiling analysis: %v", err)
		}
		schedule, err := soiling.OptimizeCleaningSchedule(0, cfg.Placement.TiltAngle, cfg.Soiling.ClimateZone)
		if err != nil {
			log.Fatalf("cleaning schedule optimization: %v", err)
		}
		printSoiling(cfg.Soiling.CleaningsPerYear, annual, schedule)
	}
}

func loadSite(path string) (*siteFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg siteFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func printLayout(r *layout.LayoutResult) {
	fmt.Println("Layout")
	if r.Err != "" {
		fmt.Printf("  No modules placed: %s\n", r.Err)
		return
	}
	fmt.Printf("  Usable area:      %.1f m²\n", r.UsableArea)
	fmt.Printf("  Modules:          %d in %d rows (%.1f per row)\n", r.TotalModules, r.Rows, r.ModulesPerRow)
	fmt.Printf("  Capacity:         %.2f kWp\n", r.CapacityKWp)
	fmt.Printf("  Row pitch:        %.2f m (spacing %.2f m with walkway)\n", r.RowPitch, r.RowSpacing)
	fmt.Printf("  GCR:              %.3f\n", r.ActualGCR)
	fmt.Printf("  Design elevation: %.2f° (winter solstice noon)\n", r.SolarElevation)
}

func printEstimate(targetGCR float64, e *layout.SizingEstimate) {
	fmt.Printf("\nSizing estimate (target GCR %.2f)\n", targetGCR)
	fmt.Printf("  Recommended modules: %d\n", e.RecommendedModules)
	fmt.Printf("  Capacity:            %.2f kWp\n", e.CapacityKWp)
	fmt.Printf("  Row pitch:           %.2f m at GCR %.3f\n", e.RowPitch, e.GCR)
}

func printShading(p *shading.Profile, w *shading.WinterReport) {
	fmt.Println("\nShading")
	fmt.Printf("  Annual average loss:  %.2f%%\n", p.AnnualAverageLossPercent)
	fmt.Printf("  Worst-case loss:      %.2f%%\n", p.WorstCaseLossPercent)
	fmt.Printf("  Winter solstice:      %.2f%% daily average over %d daylight hours\n",
		w.DailyAverageLossPercent, w.DaylightHours)
	fmt.Printf("  Critical hours 9-15:  %.2f%% average, %.2f%% peak\n",
		w.CriticalHoursLossPercent, w.MaxLossPercent)
}

func printSoiling(cleanings int, annual float64, s *soiling.Schedule) {
	fmt.Println("\nSoiling")
	fmt.Printf("  Annual loss at %d cleanings/year: %.2f%%\n", cleanings, annual)
	fmt.Printf("  Optimal schedule: %s (%.2f%% expected loss)\n", s.OptimalDescription, s.ExpectedLossPercent)
	for _, opt := range s.Options {
		fmt.Printf("    %-14s %6.2f%%\n", opt.Description, opt.AnnualLossPercent)
	}
}
