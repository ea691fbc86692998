package coviddb

import(
	"fmt"
)

// LinearFit holds the coefficients of a simple least-squares line
// y = Slope*x + Intercept, plus the r-squared of the fit.
type LinearFit struct {
	Slope, Intercept float64
	R2               float64
	N                int
}

func (lf LinearFit)String() string {
	return fmt.Sprintf("y = %.5fx + %.5f (r2=%.3f, n=%d)", lf.Slope, lf.Intercept, lf.R2, lf.N)
}

func (lf LinearFit)Predict(x float64) float64 {
	return lf.Slope*x + lf.Intercept
}

// {{{ LeastSquares

// LeastSquares fits y against x by ordinary least squares. Needs at least
// two points with distinct x values.
func LeastSquares(xs, ys []float64) (LinearFit, error) {
	if len(xs) != len(ys) {
		return LinearFit{}, fmt.Errorf("LeastSquares: %d xs vs %d ys", len(xs), len(ys))
	}
	n := float64(len(xs))
	if n < 2 {
		return LinearFit{}, fmt.Errorf("LeastSquares: need >=2 points, have %d", len(xs))
	}

	var sumX, sumY, sumXX, sumXY float64
	for i,x := range xs {
		sumX += x
		sumY += ys[i]
		sumXX += x*x
		sumXY += x*ys[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return LinearFit{}, fmt.Errorf("LeastSquares: all x values identical")
	}

	fit := LinearFit{N:len(xs)}
	fit.Slope = (n*sumXY - sumX*sumY) / denom
	fit.Intercept = (sumY - fit.Slope*sumX) / n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i,x := range xs {
		ssTot += (ys[i]-meanY)*(ys[i]-meanY)
		resid := ys[i] - fit.Predict(x)
		ssRes += resid*resid
	}
	if ssTot > 0 {
		fit.R2 = 1.0 - ssRes/ssTot
	} else {
		fit.R2 = 1.0 // all ys identical; a flat line fits exactly
	}

	return fit, nil
}

// }}}
// {{{ FitDeathsAgainstCases

// FitDeathsAgainstCases regresses deaths-per-thousand on cases-per-thousand
// over the country totals table.
func FitDeathsAgainstCases(totals []CountryTotal) (LinearFit, error) {
	xs,ys := []float64{},[]float64{}
	for _,ct := range totals {
		xs = append(xs, ct.CasesPerThousand)
		ys = append(ys, ct.DeathsPerThousand)
	}
	return LeastSquares(xs, ys)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
