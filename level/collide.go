package level

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
)

const collideEpsilon = 1e-5

// clipAxis clips the displacement d of the moving box along axis so that it does not pass into
// solid. Boxes that do not overlap on the other two axes never collide.
func clipAxis(solid, moving cube.BBox, axis int, d float32) float32 {
	if d == 0 {
		return 0
	}
	sMin, sMax := solid.Min(), solid.Max()
	mMin, mMax := moving.Min(), moving.Max()
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if mMax[i] <= sMin[i]+collideEpsilon || mMin[i] >= sMax[i]-collideEpsilon {
			return d
		}
	}

	switch {
	case d > 0 && mMax[axis] <= sMin[axis]+collideEpsilon:
		d = math32.Max(0, math32.Min(d, sMin[axis]-mMax[axis]))
	case d < 0 && mMin[axis] >= sMax[axis]-collideEpsilon:
		d = math32.Min(0, math32.Max(d, sMax[axis]-mMin[axis]))
	}
	return d
}
