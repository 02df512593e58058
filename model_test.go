package deadtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-deadtime-psd/internal/testutil"
)

func validConfig() *Config {
	return &Config{
		NumBins:      1024,
		IncidentRate: 300.0,
		DeadTime:     2.5e-3,
		BinTime:      1e-3,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Zero bins", func(c *Config) { c.NumBins = 0 }, true},
		{"Negative bins", func(c *Config) { c.NumBins = -8 }, true},
		{"Zero rate", func(c *Config) { c.IncidentRate = 0 }, true},
		{"Negative rate", func(c *Config) { c.IncidentRate = -10 }, true},
		{"Zero dead time", func(c *Config) { c.DeadTime = 0 }, true},
		{"Zero bin time", func(c *Config) { c.BinTime = 0 }, true},
		{"Dead time at saturation", func(c *Config) { c.IncidentRate = 400; c.DeadTime = 2.5e-3 }, true},
		{"Dead time beyond saturation", func(c *Config) { c.IncidentRate = 10; c.DeadTime = 0.2 }, true},
		{"Negative lag cutoff", func(c *Config) { c.LimitK = -1 }, true},
		{"Explicit lag cutoff", func(c *Config) { c.LimitK = 120 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	model, err := New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, model)
}

func TestNew_AppliesDefaultLimitK(t *testing.T) {
	model, err := New(validConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultLimitK, model.Config().LimitK)

	cfg := validConfig()
	cfg.LimitK = 90
	model, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 90, model.Config().LimitK)
}

func TestPSDModel_ReferenceCase(t *testing.T) {
	spectrum, err := PSDModel(1024, 100.0, 1e-4, 1e-2)
	require.NoError(t, err)

	require.Len(t, spectrum.Freqs, 512)
	require.Len(t, spectrum.Power, 512)

	assert.Equal(t, 0.0, spectrum.Freqs[0])
	testutil.AssertStrictlyIncreasing(t, spectrum.Freqs)
	testutil.AssertNoNaNOrInf(t, spectrum.Power)

	// Nyquist frequency is 0.5/tb = 50 Hz; the axis stops one step short.
	df := 50.0 / 512
	assert.InDelta(t, df, spectrum.Freqs[1], 1e-12)
	assert.InDelta(t, 50.0-df, spectrum.Freqs[511], 1e-9)
}

func TestPSDModel_DocumentedQuickStart(t *testing.T) {
	// The package documentation promises that these exact parameters
	// yield a 512-bin spectrum; they must stay clear of the dead-time
	// precondition.
	spectrum, err := PSDModel(1024, 300.0, 2.5e-3, 1e-3)
	require.NoError(t, err)
	require.Len(t, spectrum.Freqs, 512)
	require.Len(t, spectrum.Power, 512)
	testutil.AssertNoNaNOrInf(t, spectrum.Power)
}

func TestComputePSDModel_PreconditionViolation(t *testing.T) {
	// Dead time of 0.2 s with a 10 counts/s incident rate exceeds the
	// mean inter-arrival time; this must fail, not return garbage.
	spectrum, err := ComputePSDModel(&Config{
		NumBins:      100,
		IncidentRate: 10.0,
		DeadTime:     0.2,
		BinTime:      0.01,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, spectrum)
}

func TestCompute_Deterministic(t *testing.T) {
	first, err := ComputePSDModel(validConfig())
	require.NoError(t, err)
	second, err := ComputePSDModel(validConfig())
	require.NoError(t, err)

	require.Equal(t, first.Freqs, second.Freqs)
	require.Equal(t, first.Power, second.Power)
}

// recordingHandler captures log records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func TestCompute_WarnsWhenBinTimeDwarfsDeadTime(t *testing.T) {
	handler := &recordingHandler{}
	SetLogger(slog.New(handler))
	defer SetLogger(nil)

	// tb/td = 1000: the correction is negligible and the caller should
	// hear about it.
	// A small lag cutoff keeps the test cheap; the warning does not
	// depend on it.
	_, err := ComputePSDModel(&Config{
		NumBins:      64,
		IncidentRate: 10.0,
		DeadTime:     1e-5,
		BinTime:      1e-2,
		LimitK:       5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, handler.count(slog.LevelInfo))
	assert.Equal(t, 1, handler.count(slog.LevelWarn))
}

func TestCompute_NoWarnInNormalRegime(t *testing.T) {
	handler := &recordingHandler{}
	SetLogger(slog.New(handler))
	defer SetLogger(nil)

	_, err := ComputePSDModel(validConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, handler.count(slog.LevelInfo))
	assert.Equal(t, 0, handler.count(slog.LevelWarn))
}
