package ui

// go test -v github.com/skypies/coviddb/ui

import(
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skypies/coviddb"
)

func testServer() *Server {
	d := func(s string) time.Time {
		t,_ := time.Parse("2006-01-02", s)
		return t
	}
	obs := func(country, date string, v int64) coviddb.Observation {
		return coviddb.Observation{Country:country, Date:d(date), Value:v}
	}
	cases := []coviddb.Observation{
		obs("Sweden", "2020-03-01", 10), obs("Sweden", "2020-03-02", 20),
		obs("Italy", "2020-03-01", 100), obs("Italy", "2020-03-02", 200),
	}
	deaths := []coviddb.Observation{
		obs("Sweden", "2020-03-01", 1), obs("Sweden", "2020-03-02", 4),
		obs("Italy", "2020-03-01", 10), obs("Italy", "2020-03-02", 30),
	}
	pops := coviddb.PopulationTable{"Sweden": 1000, "Italy": 1000}
	ds := coviddb.BuildDataset(cases, deaths, nil, pops)
	return &Server{DS:ds}
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	s.AddHandlers(mux)
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestIndexHandler(t *testing.T) {
	w := get(t, testServer(), "/covid/")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ".topdeaths") {
		t.Errorf("index should list reports:\n%s", w.Body.String())
	}
}

func TestReportHandler(t *testing.T) {
	s := testServer()

	w := get(t, s, "/covid/report?rep=.topdeaths&n=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Italy") {
		t.Errorf("expected Italy in ranking:\n%s", w.Body.String())
	}

	w = get(t, s, "/covid/report?rep=.countryseries&country=Sweden&format=csv")
	if w.Code != http.StatusOK {
		t.Fatalf("csv status %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), "date,cases,deaths") {
		t.Errorf("csv output:\n%s", w.Body.String())
	}

	if w := get(t, s, "/covid/report"); w.Code != http.StatusBadRequest {
		t.Errorf("missing rep arg: status %d", w.Code)
	}
	if w := get(t, s, "/covid/report?rep=.summary&country=Narnia"); w.Code != http.StatusInternalServerError {
		t.Errorf("unknown country: status %d", w.Code)
	}
}

func TestSeriesHandler(t *testing.T) {
	s := testServer()

	w := get(t, s, "/covid/series?country=Sweden")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Errorf("body is not a PDF")
	}

	if w := get(t, s, "/covid/series?country=Narnia"); w.Code != http.StatusBadRequest {
		t.Errorf("unknown country: status %d", w.Code)
	}
}
