package zhang

import (
	"math"
	"runtime"
	"sync"

	"github.com/tphakala/simd/f64"
)

// SpectrumOptions selects optional acceleration paths for Spectrum.
// Both paths produce the same spectrum; Parallel is bit-identical to the
// sequential path (bins are independent and each bin sums in the same
// order), SIMD may differ at the accumulation-order level only.
type SpectrumOptions struct {
	// Parallel distributes frequency bins over GOMAXPROCS goroutines.
	// Each bin writes to a disjoint output slot, so no locking is needed.
	Parallel bool

	// SIMD uses a vectorized dot product for the per-bin cosine sum.
	SIMD bool
}

// Spectrum computes the dead-time-modified power spectrum of eq. 44 in
// Zhang+95 for n/2 frequency bins:
//
//	P[j] = B(0) + Σ_{k=1}^{K-1} (n-k)/n · B(k) · cos(2πjk/n)
//
// with K = min(n, limitK). The B terms do not depend on the bin index, so
// they are evaluated once and the double loop reduces to one cosine-weighted
// accumulation per bin.
func Spectrum(n int, r0, td, tb, tau float64, limitK int, opts SpectrumOptions) []float64 {
	// The baseline B(0) term is always present, even when limitK cuts the
	// cosine sum down to nothing.
	kMax := max(1, min(n, limitK))

	// Lag-domain terms, tapered by the triangular (n-k)/n window.
	// tapered[0] holds the untapered B(0) baseline.
	tapered := make([]float64, kMax)
	tapered[0] = SafeB(0, r0, td, tb, tau, limitK)
	for k := 1; k < kMax; k++ {
		tapered[k] = float64(n-k) / float64(n) * SafeB(k, r0, td, tb, tau, limitK)
	}

	power := make([]float64, n/2)
	if len(power) == 0 {
		return power
	}

	if !opts.Parallel {
		fillBins(power, 0, len(power), tapered, n, opts.SIMD)
		return power
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(power) {
		workers = len(power)
	}

	var wg sync.WaitGroup
	chunk := (len(power) + workers - 1) / workers
	for start := 0; start < len(power); start += chunk {
		end := min(start+chunk, len(power))

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fillBins(power, lo, hi, tapered, n, opts.SIMD)
		}(start, end)
	}
	wg.Wait()

	return power
}

// fillBins computes power[lo:hi]. Writes are confined to that range.
func fillBins(power []float64, lo, hi int, tapered []float64, n int, simd bool) {
	if simd && len(tapered) > 1 {
		cosines := make([]float64, len(tapered)-1)
		for j := lo; j < hi; j++ {
			omega := 2 * math.Pi * float64(j) / float64(n)
			for k := range cosines {
				cosines[k] = math.Cos(omega * float64(k+1))
			}
			power[j] = tapered[0] + f64.DotProduct(tapered[1:], cosines)
		}
		return
	}

	for j := lo; j < hi; j++ {
		omega := 2 * math.Pi * float64(j) / float64(n)
		sum := 0.0
		for k := 1; k < len(tapered); k++ {
			sum += tapered[k] * math.Cos(omega*float64(k))
		}
		power[j] = tapered[0] + sum
	}
}
