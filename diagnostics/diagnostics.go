// Package diagnostics verifies the convergence behavior behind the
// dead-time PSD model's truncations. The model assumes that the A terms
// approach their analytic limit and that the B terms vanish by the LimitK
// cutoff; CheckA and CheckB compute the sequences so the caller can see
// whether that holds for a given parameter regime, and optionally render
// a convergence plot.
//
// The package touches the numeric core only through the public term
// accessors, never the other way around.
package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	deadtime "github.com/tphakala/go-deadtime-psd"
)

// plotFloor keeps zero residuals representable on the logarithmic axis.
const plotFloor = 1e-16

// CheckA computes the autocovariance terms A_k for k in [0, maxK] and, when
// savePath is non-empty, plots |A_k - r0²tb²| against k on a log axis. The
// residual should fall towards zero well before maxK; if it does not, the
// model's lag truncation is too aggressive for these parameters.
func CheckA(config *deadtime.Config, maxK int, savePath string) ([]int, []float64, error) {
	model, ks, err := termModel(config, maxK)
	if err != nil {
		return nil, nil, err
	}

	values := model.ASequence(ks)

	if savePath != "" {
		residuals := make([]float64, len(values))
		limit := model.LimitA()
		for i, v := range values {
			residuals[i] = v - limit
		}
		if err := saveConvergencePlot(ks, residuals, "A_k - r0^2 tb^2", savePath); err != nil {
			return nil, nil, err
		}
	}

	return ks, values, nil
}

// CheckB computes the normalized covariance terms B_k for k in [0, maxK]
// and, when savePath is non-empty, plots |B_k| against k on a log axis.
// The cutoff is lifted to maxK for the check, so the values show the true
// decay rather than the truncated one.
func CheckB(config *deadtime.Config, maxK int, savePath string) ([]int, []float64, error) {
	model, ks, err := termModel(config, maxK)
	if err != nil {
		return nil, nil, err
	}

	values := model.BSequence(ks)

	if savePath != "" {
		if err := saveConvergencePlot(ks, values, "B_k", savePath); err != nil {
			return nil, nil, err
		}
	}

	return ks, values, nil
}

// termModel builds a model whose lag cutoff is opened up to maxK, so the
// term sequences are evaluated without truncation.
func termModel(config *deadtime.Config, maxK int) (*deadtime.Model, []int, error) {
	if config == nil {
		return nil, nil, fmt.Errorf("diagnostics: config is nil")
	}
	if maxK < 0 {
		return nil, nil, fmt.Errorf("diagnostics: maxK must be non-negative, got %d", maxK)
	}

	cfg := *config
	if cfg.LimitK < maxK {
		cfg.LimitK = maxK
	}
	// The term sequences do not depend on the spectral sample count, so a
	// bare detector-parameter config is accepted here.
	if cfg.NumBins == 0 {
		cfg.NumBins = 2
	}

	model, err := deadtime.New(&cfg)
	if err != nil {
		return nil, nil, err
	}

	ks := make([]int, maxK+1)
	for i := range ks {
		ks[i] = i
	}

	return model, ks, nil
}

func saveConvergencePlot(ks []int, values []float64, label, savePath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Convergence of %s", label)
	p.X.Label.Text = "k"
	p.Y.Label.Text = fmt.Sprintf("|%s|", label)
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	pts := make(plotter.XYs, len(ks))
	for i, k := range ks {
		pts[i].X = float64(k)
		pts[i].Y = math.Max(math.Abs(values[i]), plotFloor)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("diagnostics: building plot: %w", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, savePath); err != nil {
		return fmt.Errorf("diagnostics: saving plot: %w", err)
	}

	return nil
}
