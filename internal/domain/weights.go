package domain

// Weights is an allocation vector, one entry per asset in table column
// order. A well-formed vector is nonnegative and sums to 1.
type Weights []float64

// NewWeights normalizes raw weights: negatives are floored to zero and
// the remainder rescaled to sum to 1. A vector with no positive mass
// degrades to equal weights rather than failing, matching how manual
// inputs are treated everywhere else.
func NewWeights(raw []float64) Weights {
	out := make(Weights, len(raw))
	var sum float64
	for i, w := range raw {
		if w < 0 {
			w = 0
		}
		out[i] = w
		sum += w
	}
	if sum <= 0 {
		return EqualWeights(len(raw))
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// EqualWeights returns 1/N for each of n assets.
func EqualWeights(n int) Weights {
	if n == 0 {
		return Weights{}
	}
	out := make(Weights, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}
	return out
}

func (w Weights) Sum() float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	return sum
}
