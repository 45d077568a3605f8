// Package config holds the tunable constants for the rasterization core
// in one place rather than scattering magic numbers through the hot paths.
package config

const (
	// DefaultCellPoolSize is the number of cells preallocated for a single
	// (non-banded) rasterization pass.
	DefaultCellPoolSize = 2048

	// BandHeightThreshold is the target bitmap height above which
	// rasterization switches to banded processing.
	BandHeightThreshold = 256

	// MaxBisectionDepth bounds the recursive bisection performed when a
	// band overflows its cell pool; bands at this depth are dropped with
	// a logged warning rather than subdivided further.
	MaxBisectionDepth = 32

	// MaxCurveRecursionDepth bounds adaptive Bézier flattening.
	MaxCurveRecursionDepth = 16

	// SweepSpanBufferSize is the number of spans sweepDirect buffers
	// before flushing to its callback.
	SweepSpanBufferSize = 16

	// SDFEdgeSampleCount is the number of equal parameter steps used when
	// measuring the distance from a pixel center to a curved edge; both
	// endpoints are sampled, so a curve gets SDFEdgeSampleCount+1 samples.
	SDFEdgeSampleCount = 32

	// SDFInsideTestSampleCount is the number of samples used to flatten a
	// curved edge into a polyline for the ray-casting inside test.
	SDFInsideTestSampleCount = 16

	// DefaultSDFSpread is the default pixel distance mapped to one half
	// of the SDF encoding range.
	DefaultSDFSpread = 8.0

	// CascadeShrinkKernelMin and CascadeShrinkKernelMax bound the residual
	// kernel radius K selected by the cascade blur's level solver.
	CascadeShrinkKernelMin = 4
	CascadeShrinkKernelMax = 8
)
