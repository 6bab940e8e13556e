package floatround

import "math"

const (
	ulpLo = 1 - 0x1p-53 // 1 - 2^-53

	minSubnorm = math.SmallestNonzeroFloat64 // 2^-1074
	maxFinite  = math.MaxFloat64
)

// denormal is 2^-1021, the smallest positive normal float64 magnitude: below
// it, adjacent representable values are exactly minSubnorm apart rather than
// one ULP-at-this-magnitude apart.
var denormal = math.Ldexp(1, -1021)

// Up returns the smallest representable float64 strictly greater than x. x
// must be finite; +Inf is returned unchanged by math.Nextafter semantics but
// Up never receives +Inf from any caller in this module.
func Up(x float64) float64 {
	switch {
	case x > 0:
		if x < denormal {
			return x + minSubnorm
		}

		return math.Nextafter(x, math.Inf(1))
	case x < 0:
		if x > -denormal {
			return x + minSubnorm
		}
		if math.IsInf(x, -1) {
			return -maxFinite
		}

		return x * ulpLo
	default: // x == 0 (either sign)
		return minSubnorm
	}
}

// Down returns the largest representable float64 strictly less than x,
// symmetric to Up.
func Down(x float64) float64 {
	switch {
	case x > 0:
		if x < denormal {
			return x - minSubnorm
		}
		if math.IsInf(x, 1) {
			return maxFinite
		}

		return x * ulpLo
	case x < 0:
		if x > -denormal {
			return x - minSubnorm
		}

		return math.Nextafter(x, math.Inf(-1))
	default: // x == 0 (either sign)
		return -minSubnorm
	}
}
