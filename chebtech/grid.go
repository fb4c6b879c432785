package chebtech

import (
	"fmt"
	"math"
)

// Kind selects one of the two standard families of Chebyshev grids.
type Kind int

const (
	// First is the roots-type grid: the n zeros of T_n. Endpoints excluded.
	First Kind = 1
	// Second is the extrema-type grid: the n extrema of T_{n-1} on [-1, 1].
	// Endpoints +-1 included.
	Second Kind = 2
)

func (k Kind) String() string {
	switch k {
	case First:
		return "first-kind"
	case Second:
		return "second-kind"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) isValid() bool {
	return k == First || k == Second
}

// Points returns the n nodes of the grid in ascending order. Nodes are
// computed with the sine form so that the grid is exactly symmetric about 0.
func (k Kind) Points(n int) []float64 {
	if n < 1 {
		panic(fmt.Errorf("cannot Points: n=%d < 1", n))
	}

	x := make([]float64, n)

	if n == 1 {
		return x
	}

	switch k {
	case First:
		for j := range x {
			x[j] = math.Sin(math.Pi * float64(2*j+1-n) / float64(2*n))
		}
	case Second:
		N := n - 1
		for j := range x {
			x[j] = math.Sin(math.Pi * float64(2*j-N) / float64(2*N))
		}
	default:
		panic(fmt.Errorf("invalid grid kind: %s", k))
	}

	return x
}

// angles returns theta_j = acos(x_j) in closed form for the ascending nodes,
// so that T_m(x_j) = cos(m*theta_j) without any inverse trigonometry.
func (k Kind) angles(n int) []float64 {
	t := make([]float64, n)

	if n == 1 {
		t[0] = math.Pi / 2
		return t
	}

	switch k {
	case First:
		for j := range t {
			t[j] = math.Pi * float64(2*(n-1-j)+1) / float64(2*n)
		}
	case Second:
		N := n - 1
		for j := range t {
			t[j] = math.Pi * float64(N-j) / float64(N)
		}
	default:
		panic(fmt.Errorf("invalid grid kind: %s", k))
	}

	return t
}

// Weights returns the barycentric weights of the n-node grid. The weights
// alternate in sign; on second-kind grids the two endpoint weights are
// halved. Any common scaling of the weights cancels in the barycentric
// formula, so only the relative values matter.
func (k Kind) Weights(n int) []float64 {
	if n < 1 {
		panic(fmt.Errorf("cannot Weights: n=%d < 1", n))
	}

	w := make([]float64, n)

	if n == 1 {
		w[0] = 1
		return w
	}

	switch k {
	case First:
		for j, t := range k.angles(n) {
			w[j] = math.Sin(t)
			if j&1 == 1 {
				w[j] = -w[j]
			}
		}
	case Second:
		for j := range w {
			if j&1 == 1 {
				w[j] = -1
			} else {
				w[j] = 1
			}
		}
		w[0] *= 0.5
		w[n-1] *= 0.5
	default:
		panic(fmt.Errorf("invalid grid kind: %s", k))
	}

	return w
}

// NextSize returns the successor grid size under the doubling policy. On
// second-kind grids the n old nodes reappear as the even-index nodes of the
// 2(n-1)+1 new ones, so previously sampled values can be reused.
func NextSize(n int) int {
	return 2*(n-1) + 1
}
