package csse

import(
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skypies/coviddb"
)

// {{{ notes

/* The time series files are wide: fixed region columns, then one column per
date, in m/d/yy form.

[0]Province/State, [1]Country/Region, [2]Lat, [3]Long,
  [4]1/22/20, [5]1/23/20, ... one column per day since

E.g.:

,Sweden,60.128161,18.643501,0,0,...,1190,1279
Hubei,China,30.9756,112.2707,444,444,...,67802,67802

Values are cumulative running totals, never daily deltas.

 */

// }}}

const nRegionCols = 4 // Province/State, Country/Region, Lat, Long

// {{{ ParseWide

// ParseWide reshapes a wide time series file into long rows: exactly one
// Observation per (wide row x date column). Blank cells count as zero, so
// the reshape contract holds even for ragged upstream data. Both metric
// files share the same region columns, which is what makes the downstream
// join key line up.
func ParseWide(r io.Reader) ([]coviddb.Observation, error) {
	rdr := csv.NewReader(r)

	headers,err := rdr.Read()
	if err != nil { return nil, err }
	if len(headers) <= nRegionCols {
		return nil, fmt.Errorf("wide file has only %d columns", len(headers))
	}

	dates := make([]time.Time, 0, len(headers)-nRegionCols)
	for _,h := range headers[nRegionCols:] {
		t,err := time.Parse("1/2/06", h)
		if err != nil { return nil, fmt.Errorf("bad date column %q: %v", h, err) }
		dates = append(dates, t)
	}

	out := []coviddb.Observation{}
	for {
		vals,err := rdr.Read()
		if err == io.EOF { break }
		if err != nil { return nil, err }
		if len(vals) != len(headers) {
			return nil, fmt.Errorf("header/val mismatch (%d/%d)", len(headers), len(vals))
		}

		for i,date := range dates {
			cell := vals[nRegionCols+i]
			var v int64
			if cell != "" {
				f,err := strconv.ParseFloat(cell, 64)
				if err != nil { return nil, fmt.Errorf("bad count %q: %v", cell, err) }
				v = int64(f)
			}

			out = append(out, coviddb.Observation{
				Province: vals[0],
				Country:  vals[1],
				Date:     date,
				Value:    v,
			})
		}
	}

	return out, nil
}

// }}}
// {{{ ParseLookup

// ParseLookup builds the country population table from the lookup file.
// First row per country wins, so the whole-country total (which precedes
// the province breakdowns) is the value kept. Rows with a blank or
// unparseable population are skipped.
func ParseLookup(r io.Reader) (coviddb.PopulationTable, error) {
	pt := coviddb.PopulationTable{}

	rdr := NewRowReader(r)
	for {
		row,err := rdr.Read()
		if err == io.EOF { break }
		if err != nil { return nil, err }

		country := row["Country_Region"]
		if country == "" { continue }

		pop,err := strconv.ParseInt(row["Population"], 10, 64)
		if err != nil { continue }

		pt.AddFirstWins(country, pop)
	}

	return pt, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
