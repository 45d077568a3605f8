package raster

import "github.com/MeKo-Christian/glyphcore/internal/gamma"

// GammaFunction is any of the gamma curves below, evaluated on the
// normalized [0,1] coverage domain.
type GammaFunction = gamma.Function

type (
	GammaPower     = gamma.GammaPower
	GammaThreshold = gamma.GammaThreshold
	GammaLinear    = gamma.GammaLinear
	GammaMultiply  = gamma.GammaMultiply
)

func NewGammaPower(g float64) GammaPower         { return gamma.NewGammaPower(g) }
func NewGammaThreshold(t float64) GammaThreshold { return gamma.NewGammaThreshold(t) }
func NewGammaLinear(s, e float64) GammaLinear    { return gamma.NewGammaLinear(s, e) }
func NewGammaMultiply(v float64) GammaMultiply   { return gamma.NewGammaMultiply(v) }

// GammaByteFunc adapts a GammaFunction to the func(byte) byte form
// RasterizeOptions.GammaFunc and Bitmap.GammaFunc expect.
func GammaByteFunc(g GammaFunction) func(byte) byte { return gamma.ByteFunc(g) }
