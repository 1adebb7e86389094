package layout

import (
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/geometry"
)

// PlacedModule is one module fixed in the layout. Position is the
// lower-left corner; Rotation is degrees from the north-south axis
// (always 0 for row layouts). Instances belong to the LayoutResult that
// created them and are never mutated afterward.
type PlacedModule struct {
	Position    geometry.Point `json:"position"`
	Center      geometry.Point `json:"center"`
	Row         int            `json:"row"`
	Orientation Orientation    `json:"orientation"`
	Rotation    float64        `json:"rotation"`
}

// LayoutResult is the full output of a placement run. When a geometric
// degeneracy prevents placement (margin erodes the whole site, or the
// winter-solstice elevation is non-positive at the latitude), the zero
// counts are accompanied by a reason in Err rather than a Go error.
type LayoutResult struct {
	Modules        []PlacedModule `json:"modules"`
	Rows           int            `json:"rows"`
	ModulesPerRow  float64        `json:"modules_per_row"`
	TotalModules   int            `json:"total_modules"`
	CapacityKWp    float64        `json:"capacity_kwp"`
	ActualGCR      float64        `json:"actual_gcr"`
	UsableArea     float64        `json:"usable_area"`
	RowPitch       float64        `json:"row_pitch"`
	RowSpacing     float64        `json:"row_spacing"`
	ModuleArea     float64        `json:"module_area"`
	SolarElevation float64        `json:"solar_elevation"`
	Err            string         `json:"error,omitempty"`
}

// ModuleDims are the module dimensions used by the sizing estimator.
type ModuleDims struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Power  float64 `yaml:"power"`
}

// SizingEstimate is the optimizer's non-geometric sizing output.
type SizingEstimate struct {
	RecommendedModules int     `json:"recommended_modules"`
	RowPitch           float64 `json:"row_pitch"`
	GCR                float64 `json:"gcr"`
	CapacityKWp        float64 `json:"capacity_kwp"`
	ModuleArea         float64 `json:"module_area"`
	TotalModuleArea    float64 `json:"total_module_area"`
	SolarElevation     float64 `json:"solar_elevation"`
}
