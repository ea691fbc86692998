package coviddb

import(
	"fmt"
	"sort"
	"time"
)

// CountryDay is one row of the country-day aggregate: metrics summed across
// all of a country's provinces for one date, with the population attached
// and the per-million rates derived.
type CountryDay struct {
	Country    string
	Date       time.Time

	Cases, Deaths, Recovered          int64
	HasCases, HasDeaths, HasRecovered bool

	Population int64

	CasesPerMillion  float64
	DeathsPerMillion float64
}

// Complete is the row-level contract the filter enforces: both required
// metrics present, and a usable population.
func (cd CountryDay)Complete() bool {
	return cd.HasCases && cd.HasDeaths && cd.Population > 0
}

func (cd CountryDay)String() string {
	return fmt.Sprintf("%s @ %s: %d cases, %d deaths (pop %d)",
		cd.Country, cd.Date.Format("2006-01-02"), cd.Cases, cd.Deaths, cd.Population)
}

// {{{ AggregateByCountryDay

// AggregateByCountryDay collapses province-day rows into country-day rows.
// The population is attached to each province row via a country-level join
// before summing, so a country that reports N provinces ends up with N times
// its population in the aggregate. The upstream pipeline does exactly this,
// and its per-million rates are scaled accordingly; we reproduce it rather
// than silently correct the published numbers.
func AggregateByCountryDay(merged []MergedRow, pops PopulationTable) []CountryDay {
	type countryDate struct {
		Country string
		Date    time.Time
	}
	byKey := map[countryDate]*CountryDay{}

	for _,mr := range merged {
		key := countryDate{mr.Country, mr.Date}
		cd,exists := byKey[key]
		if !exists {
			cd = &CountryDay{Country:mr.Country, Date:mr.Date}
			byKey[key] = cd
		}

		if mr.HasCases {
			cd.Cases += mr.Cases
			cd.HasCases = true
		}
		if mr.HasDeaths {
			cd.Deaths += mr.Deaths
			cd.HasDeaths = true
		}
		if mr.HasRecovered {
			cd.Recovered += mr.Recovered
			cd.HasRecovered = true
		}

		cd.Population += pops.Lookup(mr.Country)
	}

	out := make([]CountryDay, 0, len(byKey))
	for _,cd := range byKey {
		if cd.Population > 0 {
			cd.CasesPerMillion = float64(cd.Cases) * PerMillion / float64(cd.Population)
			cd.DeathsPerMillion = float64(cd.Deaths) * PerMillion / float64(cd.Population)
		}
		out = append(out, *cd)
	}

	sort.Slice(out, func(i,j int) bool {
		if out[i].Country != out[j].Country { return out[i].Country < out[j].Country }
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// }}}
// {{{ DropIncomplete

// DropIncomplete removes every row with a missing field: absent cases,
// absent deaths, or no population (which also leaves the rates undefined).
// No partial-row salvage. The recovered series is optional upstream and
// never disqualifies a row.
func DropIncomplete(rows []CountryDay) []CountryDay {
	out := []CountryDay{}
	for _,cd := range rows {
		if cd.Complete() {
			out = append(out, cd)
		}
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
