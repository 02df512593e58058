package simulate

import (
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Periodogram computes the Leahy-normalized periodogram of a binned light
// curve: P_j = 2 |F_j|² / N_ph, where F is the discrete Fourier transform
// of the counts. The returned arrays have len(counts)/2 bins starting at
// zero frequency, matching the layout of the analytical model.
func Periodogram(counts []float64, binTime float64) (freqs, power []float64) {
	n := len(counts)
	if n < 2 {
		return nil, nil
	}

	nPhotons := floats.Sum(counts)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, counts)

	numBins := n / 2
	power = make([]float64, numBins)
	for j := 0; j < numBins; j++ {
		re, im := real(coeffs[j]), imag(coeffs[j])
		power[j] = re*re + im*im
	}
	if nPhotons > 0 {
		f64.Scale(power, power, 2/nPhotons)
	}

	df := 1 / (float64(n) * binTime)
	freqs = make([]float64, numBins)
	for j := range freqs {
		freqs[j] = float64(j) * df
	}

	return freqs, power
}

// AveragedPeriodogram splits a light curve into consecutive segments of
// segBins bins, computes the Leahy periodogram of each, and averages them.
// Returns nil when segBins is below the two-bin minimum or the curve is
// shorter than one segment.
func AveragedPeriodogram(counts []float64, binTime float64, segBins int) (freqs, power []float64) {
	if segBins < 2 {
		return nil, nil
	}

	numSegments := len(counts) / segBins
	if numSegments == 0 {
		return nil, nil
	}

	for s := 0; s < numSegments; s++ {
		segFreqs, segPower := Periodogram(counts[s*segBins:(s+1)*segBins], binTime)
		if power == nil {
			freqs = segFreqs
			power = segPower
			continue
		}
		floats.Add(power, segPower)
	}
	f64.Scale(power, power, 1/float64(numSegments))

	return freqs, power
}
