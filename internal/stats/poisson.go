package stats

import "math"

// Source supplies uniform draws in [0, 1).
//
// *math/rand/v2.Rand and *math/rand.Rand both satisfy Source.
type Source interface {
	Float64() float64
}

// PoissonFixed runs Knuth's multiplicative Poisson loop with the same draw
// prob reused on every iteration, and returns the iteration count k.
//
// Unlike Poisson, the count is not reduced by one, so the result is always
// at least 1. Binning code relies on this to get at least one event per bin.
// prob must lie in [0, 1); prob = 1 would never terminate.
func PoissonFixed(prob, lambda float64) (int, error) {
	if err := checkLambda("PoissonFixed", lambda); err != nil {
		return 0, err
	}
	if math.IsNaN(prob) || prob < 0 || prob >= 1 {
		return 0, argError("PoissonFixed", "prob must be in [0, 1), got %v", prob)
	}

	limit := math.Exp(-lambda)
	p := 1.0
	k := 0
	for {
		k++
		p *= prob
		if p <= limit {
			return k, nil
		}
	}
}

// Poisson draws a Poisson-distributed count with mean lambda using Knuth's
// algorithm, taking a fresh draw from src on every iteration. The result
// may be 0.
func Poisson(src Source, lambda float64) (int, error) {
	if src == nil {
		return 0, argError("Poisson", "nil source")
	}
	if err := checkLambda("Poisson", lambda); err != nil {
		return 0, err
	}

	limit := math.Exp(-lambda)
	p := 1.0
	k := 0
	for {
		k++
		p *= src.Float64()
		if p <= limit {
			return k - 1, nil
		}
	}
}

func checkLambda(op string, lambda float64) error {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return argError(op, "lambda must be a positive finite number, got %v", lambda)
	}
	return nil
}
