package bignum

import (
	"math/big"
)

// Interval is an approximation interval [A, B] sampled at Nodes+1 points.
// The precision of A is the reference precision of all derived values.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// ChebyshevApproximation computes the Chebyshev series coefficients of the
// degree-Nodes interpolant of f on the interval, sampling f at the
// first-kind Chebyshev nodes. It is an arbitrary-precision reference for
// the float64 transforms.
func ChebyshevApproximation(f func(x *big.Float) (y *big.Float), interval Interval) (coeffs []*big.Float) {

	nodes := ChebyshevNodes(interval.Nodes+1, interval)

	fi := make([]*big.Float, len(nodes))
	for i := range nodes {
		fi[i] = f(nodes[i])
	}

	return chebyshevCoeffs(nodes, fi, interval)
}

// ChebyshevNodes returns the n first-kind Chebyshev nodes mapped to
// [interval.A, interval.B], in ascending order.
func ChebyshevNodes(n int, interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	nodes = make([]*big.Float, n)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).Add(&interval.A, &interval.B)
	x.Mul(x, half)
	y := new(big.Float).Sub(&interval.B, &interval.A)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

func chebyshevCoeffs(nodes []*big.Float, fi []*big.Float, interval Interval) (coeffs []*big.Float) {

	prec := interval.A.Prec()

	n := len(nodes)

	coeffs = make([]*big.Float, n)
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec)
	}

	two := new(big.Float).SetPrec(prec).SetInt64(2)

	minusab := new(big.Float).Set(&interval.A)
	minusab.Neg(minusab)
	minusab.Sub(minusab, &interval.B)

	bminusa := new(big.Float).Set(&interval.B)
	bminusa.Sub(bminusa, &interval.A)

	u := new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)
	Tnext := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {

		u.Mul(nodes[i], two)
		u.Add(u, minusab)
		u.Quo(u, bminusa)

		Tprev := new(big.Float).SetPrec(prec).SetFloat64(1)
		T := new(big.Float).Set(u)

		for j := 0; j < n; j++ {

			tmp.Mul(fi[i], Tprev)
			coeffs[j].Add(coeffs[j], tmp)

			Tnext.Mul(u, T)
			Tnext.Mul(Tnext, two)
			Tnext.Sub(Tnext, Tprev)

			Tprev.Set(T)
			T.Set(Tnext)
		}
	}

	NHalf := new(big.Float).SetInt64(int64(n))

	coeffs[0].Quo(coeffs[0], NHalf)

	NHalf.Quo(NHalf, two)

	for i := 1; i < n; i++ {
		coeffs[i].Quo(coeffs[i], NHalf)
	}

	return
}

// EvaluateChebyshev evaluates the Chebyshev series with the given
// coefficients on [interval.A, interval.B] at x, via the three-term
// recurrence on the mapped variable.
func EvaluateChebyshev(coeffs []*big.Float, interval Interval, x *big.Float) (y *big.Float) {

	prec := interval.A.Prec()

	two := new(big.Float).SetPrec(prec).SetInt64(2)

	u := new(big.Float).SetPrec(prec).Set(x)
	u.Mul(u, two)
	u.Sub(u, &interval.A)
	u.Sub(u, &interval.B)
	tmp := new(big.Float).Sub(&interval.B, &interval.A)
	u.Quo(u, tmp)

	Tprev := new(big.Float).SetPrec(prec).SetFloat64(1)
	T := new(big.Float).Set(u)
	Tnext := new(big.Float).SetPrec(prec)

	y = new(big.Float).SetPrec(prec).Set(coeffs[0])

	for j := 1; j < len(coeffs); j++ {

		tmp.Mul(coeffs[j], T)
		y.Add(y, tmp)

		Tnext.Mul(u, T)
		Tnext.Mul(Tnext, two)
		Tnext.Sub(Tnext, Tprev)

		Tprev.Set(T)
		T.Set(Tnext)
	}

	return
}
