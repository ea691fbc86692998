package coviddb

import(
	"sort"
)

// MergedRow is a province-day row after the union join: each metric that
// appeared in its source series carries a value and a presence flag. A key
// present in (say) the cases file but absent from the deaths file yields a
// row with HasDeaths==false; nothing is dropped at this stage.
type MergedRow struct {
	RegionDay
	Cases, Deaths, Recovered          int64
	HasCases, HasDeaths, HasRecovered bool
}

// {{{ MergeSeries

// MergeSeries union-joins the three metric series on (province, country,
// date). Every RegionDay key present in any input appears exactly once in
// the output. Output order is stable: country, then province, then date.
func MergeSeries(cases, deaths, recovered []Observation) []MergedRow {
	byKey := map[RegionDay]*MergedRow{}

	row := func(key RegionDay) *MergedRow {
		if r,exists := byKey[key]; exists { return r }
		r := &MergedRow{RegionDay:key}
		byKey[key] = r
		return r
	}

	for _,o := range cases {
		r := row(o.RegionDay())
		r.Cases, r.HasCases = o.Value, true
	}
	for _,o := range deaths {
		r := row(o.RegionDay())
		r.Deaths, r.HasDeaths = o.Value, true
	}
	for _,o := range recovered {
		r := row(o.RegionDay())
		r.Recovered, r.HasRecovered = o.Value, true
	}

	out := make([]MergedRow, 0, len(byKey))
	for _,r := range byKey {
		out = append(out, *r)
	}

	sort.Slice(out, func(i,j int) bool {
		if out[i].Country != out[j].Country { return out[i].Country < out[j].Country }
		if out[i].Province != out[j].Province { return out[i].Province < out[j].Province }
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
