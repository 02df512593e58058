// Package mathutil provides numerically stable mathematical building blocks
// for the dead-time PSD model.
package mathutil

import (
	"math"
)

// inverseFactorials holds 1/m! for m in [0, MaxFactorial).
// Built once at package init and never mutated afterwards, so it is safe
// for concurrent reads from the parallel spectrum loop.
var inverseFactorials = buildInverseFactorials()

func buildInverseFactorials() [MaxFactorial]float64 {
	var table [MaxFactorial]float64
	table[0] = 1.0
	factorial := 1.0
	for m := 1; m < MaxFactorial; m++ {
		factorial *= float64(m)
		table[m] = 1.0 / factorial
	}
	return table
}

// stirlingFactor computes the correction series A(m) in Stirling's
// approximation l! ≈ √(2πl) (l/e)^l A(l).
func stirlingFactor(m float64) float64 {
	return 1 + stirlingCoeff1/m + stirlingCoeff2/(m*m) +
		stirlingCoeff3/(m*m*m) + stirlingCoeff4/(m*m*m*m)
}

// ExpXmOverFactorial computes e^(-x) x^m / m! for x ≥ 0 and integer m ≥ 0.
//
// The three factors individually overflow or underflow a float64 for large m
// (x^m grows without bound while e^(-x) and 1/m! vanish), but their product
// stays well-behaved. The implementation switches between two regimes:
//
//   - For m·log10(x) < 50, x^m is far from the overflow region and the
//     product is evaluated directly using the precomputed 1/m! table.
//   - Otherwise, Stirling's approximation turns the product into
//     (x e^(1-x/m) / m)^m / (A(m) √(2πm)), whose base has a maximum near
//     x ≈ m and never leaves the representable range.
//
// The limit case x = 0, m = 0 returns exactly 1.
func ExpXmOverFactorial(x float64, m int) float64 {
	if x == 0 && m == 0 {
		return 1.0
	}

	if m < MaxFactorial && float64(m)*math.Log10(x) < directFormulaThreshold {
		return math.Exp(-x) * math.Pow(x, float64(m)) * inverseFactorials[m]
	}

	mf := float64(m)
	return 1.0 / (stirlingFactor(mf) * math.Sqrt(2*math.Pi*mf)) *
		math.Pow(x*math.Exp(1-x/mf)/mf, mf)
}
