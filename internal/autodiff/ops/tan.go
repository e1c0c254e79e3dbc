package ops

import "math"

// TanOp represents the tangent operation: p = tan(a), a in radians.
//
// Local partial:
//   - dp/da = 1/cos²(a)
//
// The poles at odd multiples of π/2 are domain errors. Since no float64 is
// exactly an odd multiple of π/2, a pole is detected when cos(a) is within
// rounding error of zero (see PoleTolerance). The band is a few ulps wide, so
// the immediate float64 neighbours of the nearest float64 are rejected too,
// even though their tangent (around 1e15 near π/2) is finite.
type TanOp struct{}

// Name returns "tan".
func (TanOp) Name() string { return "tan" }

// Forward computes tan(a).
func (TanOp) Forward(a float64) (Result, error) {
	c := math.Cos(a)
	if math.Abs(c) <= PoleTolerance(a) {
		return Result{}, domainError("tan", a, "tangent at its pole")
	}
	return Result{Value: math.Tan(a), Partials: [2]float64{1 / (c * c)}}, nil
}

// machineEpsilon is the difference between 1 and the next float64.
var machineEpsilon = math.Nextafter(1, 2) - 1

// PoleTolerance returns the magnitude below which cos(a) is treated as zero.
// It grows with |a| because so does the rounding error of the nearest float64
// to an odd multiple of π/2. Any a whose cosine falls below it is treated as
// a pole.
func PoleTolerance(a float64) float64 {
	return 4 * machineEpsilon * math.Max(1, math.Abs(a))
}
