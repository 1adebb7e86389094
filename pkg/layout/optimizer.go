package layout

import (
	"fmt"
	"math"

	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/geometry"
	"github.com/ganeshgowri-ASA/pv-layout-designer/pkg/solarpos"
)

// OptimizeLayout produces a fast arithmetic sizing estimate from a scalar
// site area, without any polygon geometry: a what-if complement to the
// full placement sweep. The row pitch is the larger of the shadow-free
// pitch and the pitch implied by the target GCR, so the no-self-shading
// constraint is never violated even for an unrealistically dense target.
func OptimizeLayout(siteArea float64, dims ModuleDims, targetGCR, latitude, tiltAngle float64) (*SizingEstimate, error) {
	if targetGCR < 0.2 || targetGCR > 0.7 {
		return nil, fmt.Errorf("%w: target GCR must be between 0.2 and 0.7, got %g", ErrInvalidConfig, targetGCR)
	}
	if dims.Length <= 0 || dims.Width <= 0 || dims.Power <= 0 {
		return nil, fmt.Errorf("%w: module dimensions and power must be positive", ErrInvalidConfig)
	}

	solarElevation := solarpos.WinterSolsticeAngle(latitude)
	if solarElevation <= 0 {
		return nil, fmt.Errorf("%w: invalid solar elevation angle %g° for latitude %g", ErrInvalidConfig, solarElevation, latitude)
	}

	shadowFreePitch, err := geometry.RowPitch(dims.Length, tiltAngle, solarElevation)
	if err != nil {
		return nil, err
	}
	targetPitch := dims.Length / targetGCR
	rowPitch := math.Max(shadowFreePitch, targetPitch)

	actualGCR := dims.Length / rowPitch
	moduleArea := dims.Length * dims.Width

	estimated, err := EstimateModuleCount(siteArea, moduleArea, actualGCR)
	if err != nil {
		return nil, err
	}

	return &SizingEstimate{
		RecommendedModules: estimated,
		RowPitch:           rowPitch,
		GCR:                actualGCR,
		CapacityKWp:        float64(estimated) * dims.Power / 1000,
		ModuleArea:         moduleArea,
		TotalModuleArea:    float64(estimated) * moduleArea,
		SolarElevation:     solarElevation,
	}, nil
}

// EstimateModuleCount estimates how many modules fit in a site area at the
// given ground coverage ratio. Non-positive areas yield zero.
func EstimateModuleCount(siteArea, moduleArea, gcr float64) (int, error) {
	if siteArea <= 0 || moduleArea <= 0 {
		return 0, nil
	}
	if gcr <= 0 || gcr > 1 {
		return 0, fmt.Errorf("%w: GCR must be between 0 and 1, got %g", ErrInvalidConfig, gcr)
	}
	return int(siteArea * gcr / moduleArea), nil
}
