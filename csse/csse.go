// Package csse fetches and parses the JHU CSSE covid CSV snapshots.
package csse

import(
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/skypies/coviddb"
)

// The four fixed upstream resources. The repo layout is versioned; these
// paths track the master snapshot.
const(
	baseUrl = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/" +
		"csse_covid_19_data/"

	ConfirmedUrl = baseUrl + "csse_covid_19_time_series/time_series_covid19_confirmed_global.csv"
	DeathsUrl    = baseUrl + "csse_covid_19_time_series/time_series_covid19_deaths_global.csv"
	RecoveredUrl = baseUrl + "csse_covid_19_time_series/time_series_covid19_recovered_global.csv"
	LookupUrl    = baseUrl + "UID_ISO_FIPS_Lookup_Table.csv"
)

// Snapshot is everything one run works from: the three reshaped metric
// series plus the population lookup.
type Snapshot struct {
	Cases, Deaths, Recovered []coviddb.Observation
	Populations              coviddb.PopulationTable
	FetchedAt                time.Time
}

func (s *Snapshot)String() string {
	return fmt.Sprintf("snapshot of %d/%d/%d observations, %d populations (fetched %s)",
		len(s.Cases), len(s.Deaths), len(s.Recovered), len(s.Populations),
		s.FetchedAt.Format(time.RFC3339))
}

// {{{ fetchBody

func fetchBody(c *http.Client, url string) (string, error) {
	if c == nil {
		client := http.Client{}
		c = &client
	}

	resp,err := c.Get(url)
	if err != nil { return "", err }

	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	body,err := ioutil.ReadAll(resp.Body)
	if err != nil { return "", err }

	return string(body), nil
}

// }}}
// {{{ Fetch

// Fetch downloads and parses all four resources. Any network or parse
// failure aborts the whole fetch; there are no retries.
func Fetch(c *http.Client) (*Snapshot, error) {
	snap := Snapshot{FetchedAt: time.Now().UTC()}

	for _,src := range []struct{
		Url  string
		Into *[]coviddb.Observation
	}{
		{ConfirmedUrl, &snap.Cases},
		{DeathsUrl,    &snap.Deaths},
		{RecoveredUrl, &snap.Recovered},
	} {
		body,err := fetchBody(c, src.Url)
		if err != nil { return nil, err }

		obs,err := ParseWide(strings.NewReader(body))
		if err != nil { return nil, fmt.Errorf("parse %s: %v", src.Url, err) }

		*src.Into = obs
	}

	body,err := fetchBody(c, LookupUrl)
	if err != nil { return nil, err }

	pops,err := ParseLookup(strings.NewReader(body))
	if err != nil { return nil, fmt.Errorf("parse %s: %v", LookupUrl, err) }
	snap.Populations = pops

	return &snap, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
