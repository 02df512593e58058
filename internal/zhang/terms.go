// Package zhang implements the analytical dead-time PSD model of
// Zhang et al. 1995, ApJ 449, 930. The package computes the lag-domain
// autocovariance terms of a non-paralyzable photon-counting detector and
// synthesizes the expected power spectrum from them.
//
// All functions are pure and operate on scalars or caller-owned slices;
// the only shared state is the immutable inverse-factorial table in
// internal/mathutil, so every entry point is safe for concurrent use.
package zhang

import (
	"math"

	"github.com/tphakala/go-deadtime-psd/internal/mathutil"
)

// Gn evaluates the series of eq. 34 in Zhang+95:
//
//	Gn(x) = Σ_{m=0}^{n-1} e^(-x) x^m / m! · (n - m)
//
// Terms are accumulated in increasing m. The summand peaks near m ≈ x and
// then decays faster than geometrically, so once m > 2x the summation stops
// as soon as the last term falls below the float64 precision relative to the
// running sum. This bounds the cost for large n without losing accuracy.
func Gn(x float64, n int) float64 {
	sum := 0.0

	for m := 0; m < n; m++ {
		term := mathutil.ExpXmOverFactorial(x, m) * float64(n-m)
		sum += term

		if x != 0 && float64(m) > 2*x &&
			-math.Log10(math.Abs(term/sum)) > mathutil.Precision {
			break
		}
	}

	return sum
}

// H evaluates the building block of eq. 35 in Zhang+95.
// The term has no support where k·tb - n·td < 0 and is exactly zero there.
// Note the typo in the published equation: the support condition involves
// k·tb, not k·td.
func H(k, n int, td, tb, tau float64) float64 {
	factor := float64(k)*tb - float64(n)*td

	if factor < 0 {
		return 0.0
	}

	return float64(k) - float64(n)*(td+tau)/tb + tau/tb*Gn(factor/tau, n)
}

// A0 evaluates the zero-lag autocovariance term of eq. 38 in Zhang+95.
func A0(r0, td, tb, tau float64) float64 {
	sum := 0.0
	nMax := int(math.Max(1, tb/td+1))
	for n := 1; n < nMax; n++ {
		sum += H(1, n, td, tb, tau)
	}

	return r0 * tb * (1 + 2*sum)
}

// AK evaluates the lag-k autocovariance term of eq. 39 in Zhang+95.
// The n summation range grows with k·tb/td; the factor 3 keeps the bound
// past the support of every contributing H term.
func AK(k int, r0, td, tb, tau float64) float64 {
	if k == 0 {
		return A0(r0, td, tb, tau)
	}

	sum := 0.0
	nMax := int(math.Max(1, float64(k+2)*tb/td)) * 3
	for n := 1; n < nMax; n++ {
		sum += H(k+1, n, td, tb, tau) - 2*H(k, n, td, tb, tau) + H(k-1, n, td, tb, tau)
	}

	return r0 * tb * sum
}

// BRaw evaluates the normalized covariance term of eq. 45 in Zhang+95:
// the excess of A(k) over its k→∞ limit r0²tb², rescaled by r0·tb.
// The k = 0 term carries weight 2, all others 4.
func BRaw(k int, r0, td, tb, tau float64) float64 {
	weight := 4.0
	if k == 0 {
		weight = 2.0
	}

	return weight * (AK(k, r0, td, tb, tau) - r0*r0*tb*tb) / (r0 * tb)
}

// SafeB is BRaw with a hard cutoff: terms beyond limitK are treated as
// exactly zero. This is an empirical truncation, not a proven bound; callers
// should verify that B really has decayed at limitK for their parameters
// (the diagnostics package exists for exactly that).
func SafeB(k int, r0, td, tb, tau float64, limitK int) float64 {
	if k > limitK {
		return 0.0
	}

	return BRaw(k, r0, td, tb, tau)
}
