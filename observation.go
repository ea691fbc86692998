package coviddb

import(
	"fmt"
	"time"
)

// Observation is one long-format row from a reshaped time series: the
// cumulative value of a single metric, for a single region, on a single day.
// The upstream files are wide (one column per date); the loaders in csse/
// emit exactly one Observation per (wide row x date column).
type Observation struct {
	Province string    // empty for countries that report as a single unit
	Country  string
	Date     time.Time // midnight UTC; the upstream data has no timezones
	Value    int64     // cumulative count, not a daily delta
}

// RegionDay is the join key shared by all the metric series.
type RegionDay struct {
	Province string
	Country  string
	Date     time.Time
}

func (o Observation)RegionDay() RegionDay {
	return RegionDay{Province:o.Province, Country:o.Country, Date:o.Date}
}

// CombinedKey mimics the upstream display identifier: "Province, Country",
// or just "Country" when there is no province breakdown.
func (rd RegionDay)CombinedKey() string {
	if rd.Province == "" { return rd.Country }
	return fmt.Sprintf("%s, %s", rd.Province, rd.Country)
}

func (rd RegionDay)String() string {
	return fmt.Sprintf("%s @ %s", rd.CombinedKey(), rd.Date.Format("2006-01-02"))
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
