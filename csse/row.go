package csse

import(
	"encoding/csv"
	"fmt"
	"io"
)

// {{{ notes

/* The lookup file is header-keyed CSV; the column set has grown over time,
so we turn each row into a map from header name to value rather than
hardwiring indexes.

[0]UID, [1]iso2, [2]iso3, [3]code3, [4]FIPS, [5]Admin2,
  [6]Province_State, [7]Country_Region, [8]Lat, [9]Long_,
  [10]Combined_Key, [11]Population

E.g.:

156,CN,CHN,156,,,
  ,China,35.8617,104.1954,
  China,1404676330
156,CN,CHN,156,,,
  Anhui,China,31.8257,117.2264,
  "Anhui, China",61027171

Countries appear as a whole-country row first (blank Province_State), then
once per province. Only that first row carries the authoritative national
population.

 */

// }}}

type RowReader struct {
	csvreader *csv.Reader
	headers   []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	return &rdr
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
