package report

import(
	"fmt"
	"strings"

	"github.com/skypies/util/histogram"

	"github.com/skypies/coviddb"
)

func init() {
	HandleReport(SummaryReporter, ".summary",
		"The fixed console summary: one country's per-million stats, the top-N ranking, "+
			"and the regression coefficients")
}

func SummaryReporter(r *Report, ds *coviddb.Dataset) error {
	date := r.RankingDate(ds)

	series := ds.CountrySeries(r.Options.Country)
	if len(series) == 0 {
		return fmt.Errorf("country '%s' not in dataset", r.Options.Country)
	}
	last := series[len(series)-1]

	r.F["cases_per_million"] = last.CasesPerMillion
	r.F["deaths_per_million"] = last.DeathsPerMillion
	r.I["country_days"] = len(series)

	// Where the chosen country sits in the whole-world distribution.
	r.H = histogram.Histogram{NumBuckets:40, ValMax:4000}
	for _,cd := range ds.OnDate(date) {
		r.H.Add(histogram.ScalarVal(cd.DeathsPerMillion))
	}

	top := ds.TopByDeathsPerMillion(date, r.Options.TopN)
	r.S["top_countries"] = strings.Join(top, ", ")

	fit,err := coviddb.FitDeathsAgainstCases(coviddb.Totals(ds.Days))
	if err != nil { return err }
	r.S["fit"] = fit.String()
	r.F["fit_slope"] = fit.Slope
	r.F["fit_intercept"] = fit.Intercept

	r.SetHeaders([]string{"section", "value"})
	r.AddRow([]string{fmt.Sprintf("%s cases/million", r.Options.Country),
		fmt.Sprintf("%.1f", last.CasesPerMillion)})
	r.AddRow([]string{fmt.Sprintf("%s deaths/million", r.Options.Country),
		fmt.Sprintf("%.1f", last.DeathsPerMillion)})
	r.AddRow([]string{fmt.Sprintf("top %d by deaths/million (%s)",
		r.Options.TopN, date.Format("2006-01-02")), r.S["top_countries"]})
	r.AddRow([]string{"deaths/k vs cases/k", r.S["fit"]})

	return nil
}
