package chebtech

import "math"

// fftInPlace computes the in-place radix-2 decimation-in-time FFT of v.
// len(v) must be a power of two.
func fftInPlace(v []complex128) {
	n := len(v)
	if n < 2 {
		return
	}

	bitReverseInPlace(v)

	roots := make([]complex128, n>>1)
	for k := range roots {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		roots[k] = complex(c, s)
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size
		for i := 0; i < n; i += size {
			for j, w := 0, 0; j < half; j, w = j+1, w+step {
				t := roots[w] * v[i+j+half]
				v[i+j+half] = v[i+j] - t
				v[i+j] += t
			}
		}
	}
}

func bitReverseInPlace(v []complex128) {
	n := len(v)

	var bit, j int

	for i := 1; i < n; i++ {

		bit = n >> 1

		for j >= bit {
			j -= bit
			bit >>= 1
		}

		j += bit

		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
