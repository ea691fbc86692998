package ui

import(
	"net/http"

	"github.com/skypies/util/widget"

	"github.com/skypies/coviddb/cpdf"
)

// {{{ seriesHandler

// ?country=Sweden   (which country's per-million series to chart)

func (s *Server)seriesHandler(w http.ResponseWriter, r *http.Request) {
	country := r.FormValue("country")
	if country == "" { country = "Sweden" }

	g,err := cpdf.NewSeriesPdf(s.DS, country)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := g.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ topHandler

// ?n=10   (how many ranked countries to draw)

func (s *Server)topHandler(w http.ResponseWriter, r *http.Request) {
	n := widget.FormValueIntWithDefault(r, "n", 10)

	g,err := cpdf.NewRankedPdf(s.DS, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := g.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ fitHandler

func (s *Server)fitHandler(w http.ResponseWriter, r *http.Request) {
	g,err := cpdf.NewScatterPdf(s.DS)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := g.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}
// {{{ mapHandler

func (s *Server)mapHandler(w http.ResponseWriter, r *http.Request) {
	g,err := cpdf.NewMapPdf(s.DS, s.World)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := g.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
