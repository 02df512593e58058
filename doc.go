// Package deadtime computes dead-time-corrected power spectral density
// models for photon-counting detectors, following the analytical derivation
// of Zhang et al. 1995, ApJ 449, 930.
//
// Every photon-counting detector is blind for a short interval after each
// detected event. This dead time suppresses and distorts the Poisson noise
// level of the measured power spectrum in a frequency-dependent way. The
// package evaluates the expected distorted spectrum analytically from three
// scalar parameters: the incident count rate, the dead time, and the
// sampling bin time.
//
// # Quick Start
//
// For a one-shot model evaluation:
//
//	spectrum, err := deadtime.PSDModel(1024, 300.0, 2.5e-3, 1e-3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// spectrum.Freqs and spectrum.Power hold 512 bins each.
//
// For repeated evaluations or access to the intermediate covariance terms:
//
//	model, err := deadtime.New(&deadtime.Config{
//	    NumBins:      1024,
//	    IncidentRate: 300.0,
//	    DeadTime:     2.5e-3,
//	    BinTime:      1e-3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spectrum := model.Compute()
//	ak := model.A(5)  // lag-5 autocovariance term
//
// # Model Structure
//
// The computation follows the chain of Zhang+95: a numerically stabilized
// factorial-ratio approximation feeds the series G_n (eq. 34), which builds
// the block terms h (eq. 35), the autocovariance terms A_k (eqs. 38-39),
// the normalized terms B_k (eq. 45), and finally the spectrum itself as a
// finite cosine transform of the B_k (eq. 44). The hard numerical work
// lives in internal/zhang and internal/mathutil.
//
// # The LimitK Truncation
//
// The cosine transform truncates the lag sum at Config.LimitK (default 60),
// treating all higher-lag B terms as zero. This is an empirical cutoff, not
// a proven bound. The diagnostics package plots the convergence of the A
// and B sequences so the cutoff can be validated for a given parameter
// regime before trusting the model output.
//
// # Thread Safety
//
// Model values are immutable after construction and safe for concurrent
// use. With Config.EnableParallel, the frequency-bin loop itself is spread
// over GOMAXPROCS goroutines; the result is identical to the sequential
// path.
package deadtime
