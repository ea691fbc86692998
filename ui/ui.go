// Package ui is the local viewer: a few handlers that run reports and
// stream chart PDFs from an already-built in-memory dataset. Nothing here
// persists anything; it is the interactive way to look at one run's output.
package ui

import(
	"fmt"
	"net/http"

	"github.com/skypies/coviddb"
	"github.com/skypies/coviddb/geodata"
	"github.com/skypies/coviddb/report"
)

type Server struct {
	DS    *coviddb.Dataset
	World *geodata.WorldMap
}

func (s *Server)AddHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/covid/report", s.reportHandler)
	mux.HandleFunc("/covid/series", s.seriesHandler)
	mux.HandleFunc("/covid/top",    s.topHandler)
	mux.HandleFunc("/covid/fit",    s.fitHandler)
	mux.HandleFunc("/covid/map",    s.mapHandler)
	mux.HandleFunc("/covid/",       s.indexHandler)
}

// {{{ indexHandler

func (s *Server)indexHandler(w http.ResponseWriter, r *http.Request) {
	str := "Reports (/covid/report?rep=NAME[&country=X][&n=N][&date=YYYY-MM-DD][&format=csv]):\n"
	for _,entry := range report.ListReports() {
		str += fmt.Sprintf("  %-16.16s %s\n", entry.Name, entry.Description)
	}
	str += "\nCharts:\n"
	str += "  /covid/series?country=X\n"
	str += "  /covid/top?n=N\n"
	str += "  /covid/fit\n"
	str += "  /covid/map\n"
	str += fmt.Sprintf("\nDataset: %d country-days over %d dates (last %s)\n",
		len(s.DS.Days), len(s.DS.Dates), s.DS.LastDate().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(str))
}

// }}}
// {{{ reportHandler

// ?rep=.topdeaths        (report name; see /covid/ for the list)
//  &country=Sweden       (single-country reports)
//  &n=10                 (ranked reports)
//  &date=2020-05-01      (ranking date; defaults to the last snapshot date)
//  &format=csv           (text table by default)

func (s *Server)reportHandler(w http.ResponseWriter, r *http.Request) {
	rep,err := report.SetupReport(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rep.Process(s.DS); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.FormValue("format") == "csv" {
		w.Header().Set("Content-Type", "text/plain")
		rep.OutputAsCSV(w)
		return
	}

	str := fmt.Sprintf("[%s] %s\n\n", rep.Name, rep.ToCGIArgs())
	for _,row := range rep.RowsText {
		for _,cell := range row {
			str += fmt.Sprintf("%-24.24s ", cell)
		}
		str += "\n"
	}
	if rep.Log != "" {
		str += "\n" + rep.Log
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(str))
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
