package report

// go test -v github.com/skypies/coviddb/report

import(
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/skypies/coviddb"
)

func d(s string) time.Time {
	t,_ := time.Parse("2006-01-02", s)
	return t
}

func testDataset() *coviddb.Dataset {
	obs := func(country, date string, v int64) coviddb.Observation {
		return coviddb.Observation{Country:country, Date:d(date), Value:v}
	}
	cases := []coviddb.Observation{
		obs("Sweden", "2020-03-01", 10), obs("Sweden", "2020-03-02", 20),
		obs("Italy", "2020-03-01", 100), obs("Italy", "2020-03-02", 200),
		obs("Norway", "2020-03-01", 5), obs("Norway", "2020-03-02", 9),
	}
	deaths := []coviddb.Observation{
		obs("Sweden", "2020-03-01", 1), obs("Sweden", "2020-03-02", 4),
		obs("Italy", "2020-03-01", 10), obs("Italy", "2020-03-02", 30),
		obs("Norway", "2020-03-01", 0), obs("Norway", "2020-03-02", 2),
	}
	pops := coviddb.PopulationTable{"Sweden": 1000, "Italy": 1000, "Norway": 500}
	return coviddb.BuildDataset(cases, deaths, nil, pops)
}

func TestRegistry(t *testing.T) {
	names := []string{}
	for _,entry := range ListReports() { names = append(names, entry.Name) }
	joined := strings.Join(names, ",")

	for _,expected := range []string{".summary", ".countryseries", ".topdeaths", ".regression"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("report %s not registered (have %s)", expected, joined)
		}
	}

	if _,err := InstantiateReport(".nosuchreport"); err == nil {
		t.Errorf("unknown report should not instantiate")
	}
}

func TestTopDeathsReport(t *testing.T) {
	rep,err := InstantiateReport(".topdeaths")
	if err != nil { t.Fatal(err) }
	rep.Options = Options{Name:".topdeaths", TopN:2}

	if err := rep.Process(testDataset()); err != nil { t.Fatal(err) }

	if len(rep.RowsText) != 2 {
		t.Fatalf("expected 2 ranked rows, got %d", len(rep.RowsText))
	}
	// Italy 30/1000/day-2 leads; Norway vs Sweden tie broken by name.
	if rep.RowsText[0][1] != "Italy" || rep.RowsText[1][1] != "Norway" {
		t.Errorf("ranking rows: %v", rep.RowsText)
	}
	if rep.I["[B] Ranked"] != 2 {
		t.Errorf("counters: %v", rep.I)
	}
}

func TestSummaryReport(t *testing.T) {
	rep,err := InstantiateReport(".summary")
	if err != nil { t.Fatal(err) }
	rep.Options = Options{Name:".summary", Country:"Sweden", TopN:3}

	if err := rep.Process(testDataset()); err != nil { t.Fatal(err) }

	if rep.F["deaths_per_million"] != 4000.0 {
		t.Errorf("Sweden deaths/million: got %f", rep.F["deaths_per_million"])
	}
	if rep.S["top_countries"] != "Italy, Norway, Sweden" {
		t.Errorf("top countries: got %q", rep.S["top_countries"])
	}
	if rep.S["fit"] == "" {
		t.Errorf("no fit recorded")
	}
}

func TestSummaryReportUnknownCountry(t *testing.T) {
	rep,_ := InstantiateReport(".summary")
	rep.Options = Options{Name:".summary", Country:"Narnia", TopN:3}
	if err := rep.Process(testDataset()); err == nil {
		t.Errorf("unknown country should fail")
	}
}

func TestCountrySeriesCSV(t *testing.T) {
	rep,_ := InstantiateReport(".countryseries")
	rep.Options = Options{Name:".countryseries", Country:"Sweden"}
	if err := rep.Process(testDataset()); err != nil { t.Fatal(err) }

	buf := bytes.Buffer{}
	rep.OutputAsCSV(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 { // header + 2 days
		t.Fatalf("expected 3 CSV lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "2020-03-01,10,1,") {
		t.Errorf("first data line: %q", lines[1])
	}
}

func TestFormValueReportOptions(t *testing.T) {
	req := func(query string) *http.Request {
		u,_ := url.Parse("http://x/covid/report?" + query)
		return &http.Request{URL:u, Form:u.Query()}
	}

	if _,err := FormValueReportOptions(req("")); err == nil {
		t.Errorf("missing rep arg should fail")
	}
	if _,err := FormValueReportOptions(req("rep=.topdeaths&date=soon")); err == nil {
		t.Errorf("bad date should fail")
	}
	if _,err := FormValueReportOptions(req("rep=.topdeaths&n=-1")); err == nil {
		t.Errorf("negative n should fail")
	}

	opt,err := FormValueReportOptions(req("rep=.topdeaths&country=Sweden&date=2020-03-01&n=5"))
	if err != nil { t.Fatal(err) }
	if opt.Name != ".topdeaths" || opt.Country != "Sweden" || opt.TopN != 5 {
		t.Errorf("options mangled: %+v", opt)
	}
	if !opt.Date.Equal(d("2020-03-01")) {
		t.Errorf("date: %s", opt.Date)
	}

	// Defaults.
	opt,err = FormValueReportOptions(req("rep=.regression"))
	if err != nil { t.Fatal(err) }
	if opt.TopN != 10 {
		t.Errorf("default n: got %d", opt.TopN)
	}
}
