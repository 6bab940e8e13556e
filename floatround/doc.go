// Package floatround implements directed floating-point rounding: Up and Down
// return the next representable float64 strictly above, respectively below, a
// finite input, handling zero, denormals, and infinities. Equivalent to
// math.Nextafter(x, +Inf) and math.Nextafter(x, -Inf).
package floatround
