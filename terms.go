package deadtime

import (
	"github.com/tphakala/go-deadtime-psd/internal/zhang"
)

// The covariance-term accessors are the data sources for the diagnostics
// package and for anyone validating the LimitK truncation. Scalar and
// vectorized entry points are provided separately; there is no runtime
// shape dispatch.

// A evaluates the lag-k autocovariance term A_k (eqs. 38-39 in Zhang+95).
func (m *Model) A(k int) float64 {
	return zhang.AK(k, m.r0, m.config.DeadTime, m.config.BinTime, m.tau)
}

// ASequence evaluates A_k for every lag in ks, in order.
func (m *Model) ASequence(ks []int) []float64 {
	values := make([]float64, len(ks))
	for i, k := range ks {
		values[i] = m.A(k)
	}
	return values
}

// B evaluates the normalized covariance term B_k (eq. 45 in Zhang+95),
// with the model's LimitK cutoff applied: lags beyond it return exactly 0.
func (m *Model) B(k int) float64 {
	return zhang.SafeB(k, m.r0, m.config.DeadTime, m.config.BinTime, m.tau, m.config.LimitK)
}

// BSequence evaluates B for every lag in ks, in order.
func (m *Model) BSequence(ks []int) []float64 {
	values := make([]float64, len(ks))
	for i, k := range ks {
		values[i] = m.B(k)
	}
	return values
}

// LimitA is the k→∞ limit of the A terms, r0²·tb² (eq. 43 in Zhang+95).
// Useful for convergence checks; the model itself never sums that far.
func (m *Model) LimitA() float64 {
	r0tb := m.r0 * m.config.BinTime
	return r0tb * r0tb
}
