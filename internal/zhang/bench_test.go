package zhang

import (
	"testing"
)

func benchInputs() (r0, td, tb, tau float64) {
	tau = 1 / testRate
	r0 = detectedRate(testTd, testRate)
	return r0, testTd, 1e-3, tau
}

func BenchmarkAK(b *testing.B) {
	r0, td, tb, tau := benchInputs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AK(30, r0, td, tb, tau)
	}
}

func BenchmarkSpectrumSequential(b *testing.B) {
	r0, td, tb, tau := benchInputs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Spectrum(4096, r0, td, tb, tau, 60, SpectrumOptions{})
	}
}

func BenchmarkSpectrumParallel(b *testing.B) {
	r0, td, tb, tau := benchInputs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Spectrum(4096, r0, td, tb, tau, 60, SpectrumOptions{Parallel: true})
	}
}

func BenchmarkSpectrumSIMD(b *testing.B) {
	r0, td, tb, tau := benchInputs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Spectrum(4096, r0, td, tb, tau, 60, SpectrumOptions{SIMD: true})
	}
}
