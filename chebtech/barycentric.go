package chebtech

// Evaluate computes the interpolant through the grid samples at the query
// points xs using the barycentric formula with the closed-form weights of
// the grid kind. values is indexed [column][node]; the result is indexed
// [column][query]. All columns are evaluated in one pass over the nodes per
// query point, amortizing the node-distance computation.
//
// A query point that coincides with a node to machine precision bypasses the
// 0/0 division and returns that node's stored value directly. There are no
// failure modes; query points extremely close to (but not on) a node may
// lose accuracy, an accepted numerical limitation.
func Evaluate(kind Kind, values [][]float64, xs []float64) [][]float64 {
	n := len(values[0])
	nodes := kind.Points(n)
	weights := kind.Weights(n)

	m := len(values)
	out := make([][]float64, m)
	for c := range out {
		out[c] = make([]float64, len(xs))
	}

	num := make([]float64, m)

	for q, x := range xs {
		var den float64
		for c := range num {
			num[c] = 0
		}

		exact := -1
		for i, xi := range nodes {
			if x == xi {
				exact = i
				break
			}
			t := weights[i] / (x - xi)
			den += t
			for c := range values {
				num[c] += t * values[c][i]
			}
		}

		for c := range values {
			if exact >= 0 {
				out[c][q] = values[c][exact]
			} else {
				out[c][q] = num[c] / den
			}
		}
	}

	return out
}
