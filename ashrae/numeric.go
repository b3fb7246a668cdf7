package ashrae

import "math"

// newton solves f(x) = 0 with a forward-difference derivative, clamping
// every iterate into [lo, hi].
type newton struct {
	step    float64
	tol     float64
	lo, hi  float64
	maxIter int
}

func (n newton) solve(f func(float64) float64, x float64) float64 {
	for i := 0; i < n.maxIter; i++ {
		fx := f(x)
		d := (f(x+n.step) - fx) / n.step
		if math.IsNaN(d) || math.Abs(d) < 1e-12 {
			break
		}

		next := math.Min(math.Max(x-fx/d, n.lo), n.hi)
		diff := math.Abs(next - x)
		x = next
		if diff <= n.tol {
			break
		}
	}
	return x
}

// largerRoot returns the larger real root of c1 t^2 + c2 t + c3 = 0, NaN if
// there is none.
func largerRoot(c1, c2, c3 float64) float64 {
	delta := c2*c2 - 4.0*c1*c3
	if delta < 0.0 {
		return math.NaN()
	}
	t1 := (-c2 + math.Sqrt(delta)) / (2.0 * c1)
	t2 := (-c2 - math.Sqrt(delta)) / (2.0 * c1)
	return math.Max(t1, t2)
}
