package cpdf

import(
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/coviddb"
)

// RankedPdf is the top-N chart: one labeled deaths-per-million line per
// ranked country, shared linear axes, whole date range. The ranking itself
// (and the date it is pinned to) is the caller's business; this just draws
// what it is given, in the order given.
type RankedPdf struct {
	Dates       []time.Time
	RankingDate time.Time
	MaxRate     float64

	LineThickness float64

	Grid         *BaseGrid
	*gofpdf.Fpdf // Embedded pointer

	nDrawn int
}

// {{{ rp.Init

func (g *RankedPdf)Init() {
	g.Fpdf = gofpdf.New("P", "mm", "A4", "")
	g.AddPage()
	g.SetFont("Arial", "", 10)

	if g.LineThickness == 0.0 { g.LineThickness = 0.4 }

	nDays := float64(len(g.Dates)-1)
	if nDays < 1 { nDays = 1 }

	tickEvery := 14.0
	for nDays/tickEvery > 12 { tickEvery *= 2 }

	maxY := g.MaxRate * 1.05
	if maxY <= 0 { maxY = 1 }

	g.Grid = &BaseGrid{
		Fpdf: g.Fpdf,
		OffsetU: 25,
		OffsetV: 35,
		W: 150, // leave room on the right for the line labels
		H: 120,
		MinX: 0,
		MaxX: nDays,
		MinY: 0,
		MaxY: maxY,
		Clip: true,
		XGridlineEvery: tickEvery,
		YGridlineEvery: niceStep(maxY),
		XTickLabeler: func(x float64) string {
			if len(g.Dates) == 0 { return "" }
			return g.Dates[0].AddDate(0,0,int(x)).Format("Jan 02")
		},
		YTickFmt: "%.0f",
	}
}

// }}}
// {{{ niceStep

// A gridline interval that yields 5-10 lines for the given axis max.
func niceStep(max float64) float64 {
	steps := []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}
	for _,s := range steps {
		if max/s <= 10 { return s }
	}
	return max / 10
}

// }}}
// {{{ rp.DrawFrame

func (g *RankedPdf)DrawFrame() {
	g.Grid.DrawGridlines()
}

// }}}
// {{{ rp.DrawCountry

// DrawCountry plots one country's deaths-per-million series and labels the
// line at its right-hand end. Call in ranking order; colors rotate through
// the palette.
func (g *RankedPdf)DrawCountry(name string, days []coviddb.CountryDay) {
	rgb := PaletteColor(g.nDrawn)
	g.nDrawn++

	if len(days) < 2 { return }

	xval := func(t time.Time) float64 {
		return t.Sub(g.Dates[0]).Hours() / 24.0
	}

	g.SetLineWidth(g.LineThickness)
	g.SetDrawColor(rgb[0], rgb[1], rgb[2])
	g.Grid.LineColor = rgb
	for i,_ := range days[1:] {
		g.Grid.Line(xval(days[i].Date), days[i].DeathsPerMillion,
			xval(days[i+1].Date), days[i+1].DeathsPerMillion)
	}
	g.DrawPath("D")

	// Label at the line's final value.
	last := days[len(days)-1]
	g.SetFont("Arial", "", 7)
	g.SetTextColor(rgb[0], rgb[1], rgb[2])
	g.Grid.MoveTo(xval(last.Date), last.DeathsPerMillion)
	g.Grid.MoveBy(1.5, -1.5)
	g.Cell(30, 3, name)
	g.DrawPath("D")
	g.SetTextColor(0,0,0)
}

// }}}
// {{{ rp.DrawCaption

func (g *RankedPdf)DrawCaption() {
	title := fmt.Sprintf("Deaths per million, top %d countries (ranked at %s)\n",
		g.nDrawn, g.RankingDate.Format("2006-01-02"))

	g.SetTextColor(0x50, 0x70, 0xc0)
	g.Fpdf.MoveTo(10, 10)
	g.MultiCell(0, 4, title, "", "", false)
	g.DrawPath("D")
	g.SetTextColor(0,0,0)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
