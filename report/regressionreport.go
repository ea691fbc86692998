package report

import(
	"fmt"

	"github.com/skypies/coviddb"
)

func init() {
	HandleReport(RegressionReporter, ".regression",
		"Least-squares fit of deaths/thousand against cases/thousand over country totals")
}

func RegressionReporter(r *Report, ds *coviddb.Dataset) error {
	totals := coviddb.Totals(ds.Days)
	r.I["[A] Countries"] = len(totals)

	fit,err := coviddb.FitDeathsAgainstCases(totals)
	if err != nil { return err }

	r.S["fit"] = fit.String()
	r.F["fit_slope"] = fit.Slope
	r.F["fit_intercept"] = fit.Intercept
	r.F["fit_r2"] = fit.R2

	r.SetHeaders([]string{"country", "cases/thousand", "deaths/thousand", "predicted", "residual"})

	for _,ct := range totals {
		predicted := fit.Predict(ct.CasesPerThousand)
		r.AddRow([]string{
			ct.Country,
			fmt.Sprintf("%.3f", ct.CasesPerThousand),
			fmt.Sprintf("%.4f", ct.DeathsPerThousand),
			fmt.Sprintf("%.4f", predicted),
			fmt.Sprintf("%+.4f", ct.DeathsPerThousand-predicted),
		})
	}

	r.Infof("fit over %d countries: %s\n", len(totals), fit)

	return nil
}
