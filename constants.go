package deadtime

// Model defaults and advisory thresholds.
const (
	// DefaultLimitK is the default lag cutoff for the B-term truncation.
	// Empirical, not proven; see the package documentation and the
	// diagnostics package before relying on it in unusual regimes.
	DefaultLimitK = 60

	// binTimeWarnRatio triggers the advisory warning when the bin time
	// exceeds this multiple of the dead time. In that regime the
	// dead-time distortion is negligible and the model degenerates to a
	// flat Poisson level.
	binTimeWarnRatio = 100.0
)
