package deadtime

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-deadtime-psd/internal/zhang"
)

// ErrInvalidConfig indicates invalid model parameters.
var ErrInvalidConfig = errors.New("invalid model configuration")

// Config holds the detector parameters and evaluation options for the
// dead-time PSD model.
type Config struct {
	// NumBins is the number of spectral samples N. The output spectrum
	// has N/2 frequency bins, from 0 up to the Nyquist frequency.
	NumBins int

	// IncidentRate is the true photon arrival rate in counts/s, before
	// dead-time losses.
	IncidentRate float64

	// DeadTime is the detector dead time in seconds. Must be shorter
	// than the mean inter-arrival time 1/IncidentRate.
	DeadTime float64

	// BinTime is the sampling bin time of the light curve in seconds.
	BinTime float64

	// LimitK truncates the lag sum: B terms beyond it are treated as
	// zero. Zero selects DefaultLimitK. This is a tunable approximation
	// parameter; validate it with the diagnostics package when in doubt.
	LimitK int

	// EnableParallel spreads the frequency-bin loop over GOMAXPROCS
	// goroutines. The result is identical to the sequential path.
	EnableParallel bool

	// EnableSIMD uses a vectorized dot product for the per-bin cosine
	// sum. Results may differ from the scalar path at the last few bits
	// due to accumulation order.
	EnableSIMD bool
}

// Validate checks the configuration against the model preconditions.
// Violations are reported as errors wrapping ErrInvalidConfig; the model
// never silently propagates Inf or NaN from bad inputs.
func (c *Config) Validate() error {
	if c.NumBins <= 0 {
		return fmt.Errorf("%w: number of bins must be positive, got %d", ErrInvalidConfig, c.NumBins)
	}

	if c.IncidentRate <= 0 {
		return fmt.Errorf("%w: incident rate must be positive, got %g", ErrInvalidConfig, c.IncidentRate)
	}

	if c.DeadTime <= 0 {
		return fmt.Errorf("%w: dead time must be positive, got %g", ErrInvalidConfig, c.DeadTime)
	}

	if c.BinTime <= 0 {
		return fmt.Errorf("%w: bin time must be positive, got %g", ErrInvalidConfig, c.BinTime)
	}

	if c.DeadTime*c.IncidentRate >= 1 {
		return fmt.Errorf("%w: dead time %g s is not shorter than the mean inter-arrival time %g s",
			ErrInvalidConfig, c.DeadTime, 1/c.IncidentRate)
	}

	if c.LimitK < 0 {
		return fmt.Errorf("%w: lag cutoff must be non-negative, got %d", ErrInvalidConfig, c.LimitK)
	}

	return nil
}

// Spectrum is the result of a model evaluation: matching frequency and
// power arrays of length NumBins/2, with Freqs strictly increasing from 0.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// Model is a validated, immutable set of detector parameters with the
// derived quantities precomputed. It is safe for concurrent use.
type Model struct {
	config Config
	tau    float64 // mean incident inter-arrival time, 1/IncidentRate
	r0     float64 // detected count rate after dead-time losses
}

// New creates a model from the configuration. The configuration is
// validated and defaults are applied; the passed Config is not retained.
func New(config *Config) (*Model, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.LimitK == 0 {
		cfg.LimitK = DefaultLimitK
	}

	return &Model{
		config: cfg,
		tau:    1 / cfg.IncidentRate,
		r0:     DetectedRate(cfg.DeadTime, cfg.IncidentRate),
	}, nil
}

// Compute evaluates the dead-time-modified power spectrum of eq. 44 in
// Zhang+95 and constructs the matching frequency axis up to the Nyquist
// frequency 0.5/BinTime.
//
// A warning is logged when BinTime exceeds 100 times DeadTime: in that
// regime the correction is negligible and the parameters are likely
// mis-specified. The warning is advisory only; the computation proceeds.
func (m *Model) Compute() *Spectrum {
	cfg := m.config

	logger().Info("computing dead-time PSD model",
		"bins", cfg.NumBins,
		"incident_rate", cfg.IncidentRate,
		"dead_time", cfg.DeadTime,
		"bin_time", cfg.BinTime,
		"limit_k", cfg.LimitK)

	power := zhang.Spectrum(cfg.NumBins, m.r0, cfg.DeadTime, cfg.BinTime, m.tau, cfg.LimitK,
		zhang.SpectrumOptions{
			Parallel: cfg.EnableParallel,
			SIMD:     cfg.EnableSIMD,
		})

	if cfg.BinTime > binTimeWarnRatio*cfg.DeadTime {
		logger().Warn("bin time is much larger than the dead time; the correction is negligible",
			"bin_time_over_dead_time", cfg.BinTime/cfg.DeadTime)
	}

	maxFreq := 0.5 / cfg.BinTime
	df := maxFreq / float64(len(power))
	freqs := make([]float64, len(power))
	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return &Spectrum{Freqs: freqs, Power: power}
}

// Config returns a copy of the model configuration with defaults applied.
func (m *Model) Config() Config {
	return m.config
}

// DetectedRate returns the observed count rate of the model after
// dead-time losses.
func (m *Model) DetectedRate() float64 {
	return m.r0
}
