package coviddb

import(
	"math"
	"testing"
)

func TestLeastSquaresExactLine(t *testing.T) {
	// Collinear points on y = 2x + 1.
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}

	fit,err := LeastSquares(xs, ys)
	if err != nil { t.Fatal(err) }

	if math.Abs(fit.Slope-2.0) > 1e-9 || math.Abs(fit.Intercept-1.0) > 1e-9 {
		t.Errorf("expected y=2x+1, got %s", fit)
	}
	if math.Abs(fit.R2-1.0) > 1e-9 {
		t.Errorf("expected r2=1, got %f", fit.R2)
	}
	if got := fit.Predict(10); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("Predict(10): expected 21, got %f", got)
	}
}

func TestLeastSquaresDegenerateInputs(t *testing.T) {
	if _,err := LeastSquares([]float64{1}, []float64{1}); err == nil {
		t.Errorf("single point should not fit")
	}
	if _,err := LeastSquares([]float64{1,2}, []float64{1}); err == nil {
		t.Errorf("length mismatch should not fit")
	}
	if _,err := LeastSquares([]float64{3,3,3}, []float64{1,2,3}); err == nil {
		t.Errorf("identical x values should not fit")
	}
}

func TestFitDeathsAgainstCases(t *testing.T) {
	totals := []CountryTotal{
		{Country:"A", CasesPerThousand:1, DeathsPerThousand:0.1},
		{Country:"B", CasesPerThousand:2, DeathsPerThousand:0.2},
		{Country:"C", CasesPerThousand:3, DeathsPerThousand:0.3},
	}
	fit,err := FitDeathsAgainstCases(totals)
	if err != nil { t.Fatal(err) }
	if math.Abs(fit.Slope-0.1) > 1e-9 || math.Abs(fit.Intercept) > 1e-9 {
		t.Errorf("expected y=0.1x, got %s", fit)
	}
}
