package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// KeyPair folds two opposing digital inputs into a single discrete value.
// Both held (or neither) yields 0.
//
// Parameters:
//   - positive: true if the positive-direction input is active
//   - negative: true if the negative-direction input is active
//
// Returns:
//   - float32: +1, -1 or 0
func KeyPair(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
