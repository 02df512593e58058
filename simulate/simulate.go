// Package simulate generates synthetic photon-counting data for validating
// the analytical dead-time PSD model against a brute-force experiment:
// draw Poisson arrival times, filter them through a non-paralyzable dead
// time, bin the survivors into a light curve, and compare its periodogram
// with the model prediction.
package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EventList draws Poisson arrival times with the given incident rate on
// [0, tMax), strictly increasing. The seed fixes the sequence, so repeated
// calls with the same arguments are identical.
func EventList(rate, tMax float64, seed uint64) []float64 {
	interval := distuv.Exponential{
		Rate: rate,
		Src:  rand.NewSource(seed),
	}

	var events []float64
	t := interval.Rand()
	for t < tMax {
		events = append(events, t)
		t += interval.Rand()
	}

	return events
}

// ApplyDeadTime filters an ordered event list through a non-paralyzable
// dead time: after each accepted event the detector is blind for deadTime
// seconds, and events arriving in that window are discarded without
// extending it.
func ApplyDeadTime(events []float64, deadTime float64) []float64 {
	if len(events) == 0 {
		return nil
	}

	kept := make([]float64, 0, len(events))
	kept = append(kept, events[0])
	blindUntil := events[0] + deadTime

	for _, t := range events[1:] {
		if t < blindUntil {
			continue
		}
		kept = append(kept, t)
		blindUntil = t + deadTime
	}

	return kept
}

// Lightcurve bins an event list into counts per bin of width binTime over
// [0, tMax). Events at or beyond tMax are ignored.
func Lightcurve(events []float64, tMax, binTime float64) []float64 {
	numBins := int(tMax / binTime)
	counts := make([]float64, numBins)

	for _, t := range events {
		i := int(t / binTime)
		if i >= 0 && i < numBins {
			counts[i]++
		}
	}

	return counts
}
