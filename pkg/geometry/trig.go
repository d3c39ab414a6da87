package geometry

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/pancad/pancad/pkg/numeric"
)

// cartesianToPolar converts (x, y) to (r, phi) with phi in radians.
func cartesianToPolar(x, y float64) (r, phi float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// polarToCartesian converts (r, phi) to (x, y).
func polarToCartesian(r, phi float64) (x, y float64) {
	return r * math.Cos(phi), r * math.Sin(phi)
}

// cartesianToSpherical converts (x, y, z) to (r, phi, theta). Phi is the
// azimuth angle, theta the inclination from the positive z-axis.
func cartesianToSpherical(x, y, z float64) (r, phi, theta float64) {
	v := v3.Vec{X: x, Y: y, Z: z}
	r = v.Length()
	phi = math.Atan2(y, x)
	if r == 0 {
		return 0, phi, 0
	}
	theta = math.Acos(z / r)
	return r, phi, theta
}

// sphericalToCartesian converts (r, phi, theta) to (x, y, z).
func sphericalToCartesian(r, phi, theta float64) (x, y, z float64) {
	sinT := math.Sin(theta)
	return r * math.Cos(phi) * sinT, r * math.Sin(phi) * sinT, r * math.Cos(theta)
}

// rotate2 rotates a 2D vector counterclockwise by angle radians.
func rotate2(v v2.Vec, angle float64) v2.Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return v2.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// rotateX rotates a 3D vector around the x-axis by angle radians.
func rotateX(v v3.Vec, angle float64) v3.Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return v3.Vec{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
}

// rotateY rotates a 3D vector around the y-axis by angle radians.
func rotateY(v v3.Vec, angle float64) v3.Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return v3.Vec{X: c*v.X + s*v.Z, Y: v.Y, Z: -s*v.X + c*v.Z}
}

// rotateZ rotates a 3D vector around the z-axis by angle radians.
func rotateZ(v v3.Vec, angle float64) v3.Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return v3.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// vecLength returns the euclidean length of a 2 or 3 component vector.
func vecLength(c []float64) float64 {
	switch len(c) {
	case 2:
		return v2.Vec{X: c[0], Y: c[1]}.Length()
	case 3:
		return v3.Vec{X: c[0], Y: c[1], Z: c[2]}.Length()
	default:
		sum := 0.0
		for _, v := range c {
			sum += v * v
		}
		return math.Sqrt(sum)
	}
}

// unitVector scales c to unit length. A zero vector is an error.
func unitVector(c []float64) ([]float64, error) {
	l := vecLength(c)
	if numeric.IsZero(l) {
		return nil, fmt.Errorf("zero vector has no direction")
	}
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = v / l
	}
	return out, nil
}

// uniqueDirection normalizes c to the canonical direction of an infinite
// line. The result has unit length, a non-negative z component, then a
// non-negative y component when z is zero, then a positive x component when
// both y and z are zero.
func uniqueDirection(c []float64) ([]float64, error) {
	u, err := unitVector(c)
	if err != nil {
		return nil, err
	}
	negate := false
	switch len(u) {
	case 2:
		if numeric.IsZero(u[1]) {
			negate = u[0] < 0
		} else {
			negate = u[1] < 0
		}
	case 3:
		switch {
		case !numeric.IsZero(u[2]):
			negate = u[2] < 0
		case !numeric.IsZero(u[1]):
			negate = u[1] < 0
		default:
			negate = u[0] < 0
		}
	default:
		return nil, &DimensionError{Op: "direction", Want: 3, Got: len(u)}
	}
	if negate {
		for i := range u {
			u[i] = -u[i]
		}
	}
	return u, nil
}

// dot returns the dot product of two equal-length vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
