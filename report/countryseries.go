package report

import(
	"fmt"

	"github.com/skypies/coviddb"
)

func init() {
	HandleReport(CountrySeriesReporter, ".countryseries",
		"One row per day for a single country: cumulative counts and per-million rates")
	SummarizeReport(".countryseries", func(r *Report) {
		r.Infof("%d country-days listed\n", r.I["[A] Rows"])
	})
}

func CountrySeriesReporter(r *Report, ds *coviddb.Dataset) error {
	series := ds.CountrySeries(r.Options.Country)
	if len(series) == 0 {
		return fmt.Errorf("country '%s' not in dataset", r.Options.Country)
	}

	r.SetHeaders([]string{"date", "cases", "deaths", "cases/million", "deaths/million"})

	for _,cd := range series {
		r.I["[A] Rows"]++
		r.AddRow([]string{
			cd.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", cd.Cases),
			fmt.Sprintf("%d", cd.Deaths),
			fmt.Sprintf("%.2f", cd.CasesPerMillion),
			fmt.Sprintf("%.2f", cd.DeathsPerMillion),
		})
	}

	return nil
}
