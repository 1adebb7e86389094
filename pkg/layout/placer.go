package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/geometry"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

// Placer runs the full geometric placement sweep. A nil logger disables
// diagnostics.
type Placer struct {
	logger *zap.SugaredLogger
}

// NewPlacer returns a Placer that logs diagnostics to logger (may be nil).
func NewPlacer(logger *zap.SugaredLogger) *Placer {
	return &Placer{logger: logger}
}

// PlaceModules places modules into the site polygon under cfg and returns
// the layout. The sweep is deterministic: rows advance south to north in
// steps of row pitch plus walkway, columns west to east in steps of module
// width, so identical inputs always yield an identically ordered module
// list.
func PlaceModules(site geometry.Polygon, cfg PlacementConfig) (*LayoutResult, error) {
	return NewPlacer(nil).PlaceModules(site, cfg)
}

// PlaceModules implements the placement sweep described in the package
// documentation.
func (p *Placer) PlaceModules(site geometry.Polygon, cfg PlacementConfig) (*LayoutResult, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	usable, err := geometry.ResolveUsableArea(site, cfg.Margin)
	if err != nil {
		return nil, err
	}
	if usable.Empty() {
		return &LayoutResult{Err: "usable area is zero after applying margins"}, nil
	}

	// Winter solstice noon is the lowest sun of the year; spacing rows for
	// that elevation keeps them shadow-free year round.
	solarElevation := solarpos.WinterSolsticeAngle(cfg.Latitude)
	if solarElevation <= 0 {
		return &LayoutResult{
			UsableArea: usable.Area,
			Err:        fmt.Sprintf("invalid solar elevation angle: %g°", solarElevation),
		}, nil
	}

	rowPitch, err := geometry.RowPitch(cfg.ModuleLength, cfg.TiltAngle, solarElevation)
	if err != nil {
		return nil, err
	}
	rowSpacing := rowPitch + cfg.WalkwayWidth
	actualGCR := cfg.ModuleLength / rowPitch

	min, max := usable.Polygon.Bounds()
	moduleArea := cfg.ModuleLength * cfg.ModuleWidth

	var modules []PlacedModule
	rows := 0
	for y := min.Y; y+cfg.ModuleLength <= max.Y; y += rowSpacing {
		placedInRow := 0
		for x := min.X; x+cfg.ModuleWidth <= max.X; x += cfg.ModuleWidth {
			center := geometry.Point{X: x + cfg.ModuleWidth/2, Y: y + cfg.ModuleLength/2}
			if !usable.Polygon.Contains(center) {
				continue
			}

			footprint := geometry.Rect(x, y, cfg.ModuleWidth, cfg.ModuleLength)
			overlap, err := usable.Polygon.IntersectionArea(footprint)
			if err != nil {
				return nil, fmt.Errorf("module overlap test at (%g, %g): %w", x, y, err)
			}
			if overlap < minOverlapFraction*moduleArea {
				continue
			}

			modules = append(modules, PlacedModule{
				Position:    geometry.Point{X: x, Y: y},
				Center:      center,
				Row:         rows,
				Orientation: cfg.Orientation,
				Rotation:    0,
			})
			placedInRow++
		}
		// Row numbering counts only occupied rows.
		if placedInRow > 0 {
			rows++
		}
	}

	result := &LayoutResult{
		Modules:        modules,
		Rows:           rows,
		TotalModules:   len(modules),
		CapacityKWp:    float64(len(modules)) * cfg.ModulePower / 1000,
		ActualGCR:      actualGCR,
		UsableArea:     usable.Area,
		RowPitch:       rowPitch,
		RowSpacing:     rowSpacing,
		ModuleArea:     moduleArea,
		SolarElevation: solarElevation,
	}
	if rows > 0 {
		result.ModulesPerRow = float64(len(modules)) / float64(rows)
	}

	if p.logger != nil {
		p.logger.Debugw("placement complete",
			"total_modules", result.TotalModules,
			"rows", result.Rows,
			"capacity_kwp", result.CapacityKWp,
			"usable_area", result.UsableArea,
			"row_pitch", result.RowPitch)
	}
	return result, nil
}
