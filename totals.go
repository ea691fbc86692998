package coviddb

import(
	"fmt"
	"sort"
)

// CountryTotal is one row of the whole-range totals table: the maximum
// observed cumulative counts per country. The series are cumulative, so the
// max over the date range equals the value on the final reported day.
type CountryTotal struct {
	Country    string
	Cases      int64
	Deaths     int64
	Population int64

	CasesPerThousand  float64
	DeathsPerThousand float64
}

func (ct CountryTotal)String() string {
	return fmt.Sprintf("%s: %d cases (%.2f/k), %d deaths (%.3f/k)",
		ct.Country, ct.Cases, ct.CasesPerThousand, ct.Deaths, ct.DeathsPerThousand)
}

// {{{ Totals

// Totals reduces the country-day table to one row per country, keeping the
// max cumulative cases and deaths. Countries with no cases, or no usable
// population, are excluded. Output is sorted by country name.
func Totals(days []CountryDay) []CountryTotal {
	byCountry := map[string]*CountryTotal{}

	for _,cd := range days {
		ct,exists := byCountry[cd.Country]
		if !exists {
			ct = &CountryTotal{Country:cd.Country}
			byCountry[cd.Country] = ct
		}
		if cd.Cases > ct.Cases { ct.Cases = cd.Cases }
		if cd.Deaths > ct.Deaths { ct.Deaths = cd.Deaths }
		if cd.Population > ct.Population { ct.Population = cd.Population }
	}

	out := []CountryTotal{}
	for _,ct := range byCountry {
		if ct.Cases <= 0 || ct.Population <= 0 { continue }
		ct.CasesPerThousand = float64(ct.Cases) * PerThousand / float64(ct.Population)
		ct.DeathsPerThousand = float64(ct.Deaths) * PerThousand / float64(ct.Population)
		out = append(out, *ct)
	}

	sort.Slice(out, func(i,j int) bool { return out[i].Country < out[j].Country })

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
