package utils

import "golang.org/x/exp/constraints"

// MaxSlice returns the maximum value in the slice, or the zero value if the
// slice is empty.
func MaxSlice[V constraints.Ordered](s []V) (max V) {
	for _, v := range s {
		if v > max {
			max = v
		}
	}
	return
}

// MaxAbs returns the largest absolute value in the slice, or 0 if the slice
// is empty.
func MaxAbs[V constraints.Float](s []V) (max V) {
	for _, v := range s {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return
}

// EqualSliceFloat64 checks the equality between two float64 slices.
func EqualSliceFloat64(a, b []float64) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}
