package report

import(
	"fmt"

	"github.com/skypies/coviddb"
)

func init() {
	HandleReport(TopDeathsReporter, ".topdeaths",
		"Countries ranked by deaths per million on the ranking date")
	SummarizeReport(".topdeaths", func(r *Report) {
		r.Infof("%d of %d countries kept\n", r.I["[B] Ranked"], r.I["[A] Candidates"])
	})
}

func TopDeathsReporter(r *Report, ds *coviddb.Dataset) error {
	date := r.RankingDate(ds)

	rows := ds.OnDate(date)
	r.I["[A] Candidates"] = len(rows)
	if len(rows) == 0 {
		return fmt.Errorf("no rows on %s", date.Format("2006-01-02"))
	}

	byCountry := map[string]coviddb.CountryDay{}
	for _,cd := range rows { byCountry[cd.Country] = cd }

	r.SetHeaders([]string{"rank", "country", "deaths/million", "cases/million", "population"})

	for i,name := range ds.TopByDeathsPerMillion(date, r.Options.TopN) {
		cd := byCountry[name]
		r.I["[B] Ranked"]++
		r.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			name,
			fmt.Sprintf("%.1f", cd.DeathsPerMillion),
			fmt.Sprintf("%.1f", cd.CasesPerMillion),
			fmt.Sprintf("%d", cd.Population),
		})
	}

	return nil
}
