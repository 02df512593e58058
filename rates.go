package deadtime

// DetectedRate converts an incident count rate to the rate a detector with
// the given non-paralyzable dead time actually observes.
func DetectedRate(deadTime, incidentRate float64) float64 {
	tau := 1 / incidentRate
	return 1 / (tau + deadTime)
}

// IncidentRate converts a detected count rate back to the true incident
// rate. The inverse of DetectedRate; only meaningful while
// deadTime < 1/detectedRate stays clear of saturation.
func IncidentRate(deadTime, detectedRate float64) float64 {
	tau := 1 / detectedRate
	return 1 / (tau - deadTime)
}
