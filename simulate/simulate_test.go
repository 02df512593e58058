package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deadtime "github.com/tphakala/go-deadtime-psd"
	"github.com/tphakala/go-deadtime-psd/internal/testutil"
)

const simSeed = 42

func TestEventList_Deterministic(t *testing.T) {
	first := EventList(500, 5, simSeed)
	second := EventList(500, 5, simSeed)
	require.Equal(t, first, second)
}

func TestEventList_OrderedWithinRange(t *testing.T) {
	events := EventList(1000, 10, simSeed)

	require.NotEmpty(t, events)
	testutil.AssertStrictlyIncreasing(t, events)
	assert.GreaterOrEqual(t, events[0], 0.0)
	assert.Less(t, events[len(events)-1], 10.0)

	// ~10000 events expected; allow a generous statistical margin.
	assert.InEpsilon(t, 10000, float64(len(events)), 0.1)
}

func TestApplyDeadTime_MinimumSeparation(t *testing.T) {
	const td = 5e-4
	events := EventList(1000, 10, simSeed)
	kept := ApplyDeadTime(events, td)

	require.NotEmpty(t, kept)
	require.Less(t, len(kept), len(events))
	for i := 1; i < len(kept); i++ {
		assert.GreaterOrEqual(t, kept[i]-kept[i-1], td, "events %d-%d", i-1, i)
	}
}

func TestApplyDeadTime_RateMatchesTheory(t *testing.T) {
	const (
		rate = 1000.0
		td   = 5e-4
		tMax = 50.0
	)

	kept := ApplyDeadTime(EventList(rate, tMax, simSeed), td)
	observed := float64(len(kept)) / tMax
	expected := deadtime.DetectedRate(td, rate)

	// ~33000 surviving events; 5% leaves ample room for Poisson scatter.
	assert.InEpsilon(t, expected, observed, 0.05)
}

func TestApplyDeadTime_Empty(t *testing.T) {
	assert.Nil(t, ApplyDeadTime(nil, 1e-3))
}

func TestLightcurve_CountsConserved(t *testing.T) {
	events := EventList(200, 10, simSeed)
	counts := Lightcurve(events, 10, 1e-2)

	require.Len(t, counts, 1000)

	total := 0.0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, float64(len(events)), total)
}
