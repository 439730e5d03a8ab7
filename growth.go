package growbuf

// GrowthPolicy computes a new capacity when a buffer must hold at least
// minimum elements. Policies must be deterministic and side-effect free,
// return current unchanged when current >= minimum, and never return less
// than minimum. Both arguments and the result are element counts.
type GrowthPolicy func(current, minimum int) int

// Doubling returns a geometric growth policy: when growth is needed the new
// capacity is max(minimum, current*factor), with a floor of one element so
// a zero-capacity buffer cannot loop without growing. A factor below 2 is
// treated as 2. Geometric growth is what keeps a push sequence amortized
// O(1): total copy work across N pushes is bounded by a geometric series.
func Doubling(factor int) GrowthPolicy {
	if factor < 2 {
		factor = 2
	}
	return func(current, minimum int) int {
		if current >= minimum {
			return current
		}
		grown := current * factor
		if grown < minimum {
			grown = minimum
		}
		if grown < 1 {
			grown = 1
		}
		return grown
	}
}

// DefaultGrowthPolicy doubles capacity on overflow.
var DefaultGrowthPolicy = Doubling(2)
