package deadtime

// PSDModel computes the dead-time-modified power spectrum in one call,
// with the default lag cutoff and sequential evaluation. numBins is the
// number of spectral samples N; the result has N/2 frequency bins.
func PSDModel(numBins int, incidentRate, deadTime, binTime float64) (*Spectrum, error) {
	return ComputePSDModel(&Config{
		NumBins:      numBins,
		IncidentRate: incidentRate,
		DeadTime:     deadTime,
		BinTime:      binTime,
	})
}

// ComputePSDModel validates the configuration and evaluates the model.
// Equivalent to New followed by Compute.
func ComputePSDModel(config *Config) (*Spectrum, error) {
	model, err := New(config)
	if err != nil {
		return nil, err
	}

	return model.Compute(), nil
}
