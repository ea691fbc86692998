package coviddb

import(
	"sort"
	"time"
)

// Dataset is the country-day table after the complete-rows filter, plus the
// sorted list of dates it covers. It is built once per run and never
// mutated; every report and chart reads from it.
type Dataset struct {
	Days  []CountryDay
	Dates []time.Time // sorted, unique
}

// {{{ BuildDataset

// BuildDataset runs the whole join/aggregate/filter sequence:
// union join on (province, country, date), population attach, country-day
// aggregation with per-million rates, then the complete-rows filter.
func BuildDataset(cases, deaths, recovered []Observation, pops PopulationTable) *Dataset {
	merged := MergeSeries(cases, deaths, recovered)
	days := DropIncomplete(AggregateByCountryDay(merged, pops))

	seen := map[time.Time]bool{}
	dates := []time.Time{}
	for _,cd := range days {
		if !seen[cd.Date] {
			seen[cd.Date] = true
			dates = append(dates, cd.Date)
		}
	}
	sort.Slice(dates, func(i,j int) bool { return dates[i].Before(dates[j]) })

	return &Dataset{Days:days, Dates:dates}
}

// }}}

// {{{ ds.LastDate

// LastDate is the final date in the snapshot; rankings are pinned to it.
func (ds *Dataset)LastDate() time.Time {
	if len(ds.Dates) == 0 { return time.Time{} }
	return ds.Dates[len(ds.Dates)-1]
}

// }}}
// {{{ ds.CountrySeries

// CountrySeries returns the country's rows in date order. The Days slice is
// already sorted (country, date), so this is a contiguous subslice copy.
func (ds *Dataset)CountrySeries(country string) []CountryDay {
	out := []CountryDay{}
	for _,cd := range ds.Days {
		if cd.Country == country {
			out = append(out, cd)
		}
	}
	return out
}

// }}}
// {{{ ds.Countries

func (ds *Dataset)Countries() []string {
	seen := map[string]bool{}
	out := []string{}
	for _,cd := range ds.Days {
		if !seen[cd.Country] {
			seen[cd.Country] = true
			out = append(out, cd.Country)
		}
	}
	sort.Strings(out)
	return out
}

// }}}
// {{{ ds.OnDate

func (ds *Dataset)OnDate(date time.Time) []CountryDay {
	out := []CountryDay{}
	for _,cd := range ds.Days {
		if cd.Date.Equal(date) {
			out = append(out, cd)
		}
	}
	return out
}

// }}}
// {{{ ds.TopByDeathsPerMillion

// TopByDeathsPerMillion ranks countries by deaths-per-million on the given
// date (callers pass LastDate) and returns the first n country names.
// Ties break on country name ascending, so the ranking is deterministic.
func (ds *Dataset)TopByDeathsPerMillion(date time.Time, n int) []string {
	rows := ds.OnDate(date)

	sort.Slice(rows, func(i,j int) bool {
		if rows[i].DeathsPerMillion != rows[j].DeathsPerMillion {
			return rows[i].DeathsPerMillion > rows[j].DeathsPerMillion
		}
		return rows[i].Country < rows[j].Country
	})

	out := []string{}
	for i,cd := range rows {
		if i >= n { break }
		out = append(out, cd.Country)
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
