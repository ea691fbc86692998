package cpdf

import(
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/coviddb"
)

// SeriesPdf is the single-country chart: cases and deaths per million over
// the whole date range, on a log10 value axis.
type SeriesPdf struct {
	Country       string
	Dates         []time.Time // the snapshot's full (sorted) date range
	MaxRate       float64     // top of the Y axis; rounded up to a decade

	LineThickness float64
	ShowRecovered bool

	Grid         *BaseGrid
	*gofpdf.Fpdf // Embedded pointer

	Caption      string
}

// {{{ ceilDecade

func ceilDecade(v float64) float64 {
	if v <= 1 { return 10 }
	return math.Pow(10, math.Ceil(math.Log10(v)))
}

// }}}

// {{{ sp.Init

func (g *SeriesPdf)Init() {
	g.Fpdf = gofpdf.New("P", "mm", "A4", "")
	g.AddPage()
	g.SetFont("Arial", "", 10)

	if g.LineThickness == 0.0 { g.LineThickness = 0.4 }

	nDays := float64(len(g.Dates)-1)
	if nDays < 1 { nDays = 1 }

	// Tick roughly every two weeks, snapped so the label count stays sane.
	tickEvery := 14.0
	for nDays/tickEvery > 12 { tickEvery *= 2 }

	g.Grid = &BaseGrid{
		Fpdf: g.Fpdf,
		OffsetU: 25,
		OffsetV: 35,
		W: 165,
		H: 120,
		MinX: 0,
		MaxX: nDays,
		MinY: 1,
		MaxY: ceilDecade(g.MaxRate),
		LogY: true,
		Clip: true,
		XGridlineEvery: tickEvery,
		XTickLabeler: g.dateLabel,
		YTickFmt: "%.0f",
	}
}

// }}}
// {{{ sp.xval, dateLabel

// The X axis is days since the first date in the snapshot.
func (g *SeriesPdf)xval(date time.Time) float64 {
	if len(g.Dates) == 0 { return 0 }
	return date.Sub(g.Dates[0]).Hours() / 24.0
}

func (g *SeriesPdf)dateLabel(x float64) string {
	if len(g.Dates) == 0 { return "" }
	return g.Dates[0].AddDate(0,0,int(x)).Format("Jan 02")
}

// }}}
// {{{ sp.DrawFrame

func (g *SeriesPdf)DrawFrame() {
	g.Grid.DrawGridlines()
}

// }}}
// {{{ sp.DrawSeries

func (g *SeriesPdf)DrawSeries(days []coviddb.CountryDay) {
	g.SetLineWidth(g.LineThickness)

	g.drawLine(days, BlueRGB, func(cd coviddb.CountryDay) float64 { return cd.CasesPerMillion })
	g.drawLine(days, RedRGB, func(cd coviddb.CountryDay) float64 { return cd.DeathsPerMillion })

	if g.ShowRecovered {
		g.drawLine(days, GreenRGB, func(cd coviddb.CountryDay) float64 {
			if !cd.HasRecovered || cd.Population <= 0 { return 0 }
			return float64(cd.Recovered) * coviddb.PerMillion / float64(cd.Population)
		})
	}
}

func (g *SeriesPdf)drawLine(days []coviddb.CountryDay, rgb []int, f func(coviddb.CountryDay) float64) {
	if len(days) < 2 { return }

	g.SetDrawColor(rgb[0], rgb[1], rgb[2])
	g.Grid.LineColor = rgb
	for i,_ := range days[1:] {
		g.Grid.Line(g.xval(days[i].Date), f(days[i]), g.xval(days[i+1].Date), f(days[i+1]))
	}
	g.DrawPath("D")
}

// }}}
// {{{ sp.DrawLegend

func (g *SeriesPdf)DrawLegend() {
	entries := []struct{
		Label string
		RGB   []int
	}{
		{"cases / million", BlueRGB},
		{"deaths / million", RedRGB},
	}
	if g.ShowRecovered {
		entries = append(entries, struct{Label string; RGB []int}{"recovered / million", GreenRGB})
	}

	g.SetFont("Arial", "", 8)
	u,v := g.Grid.OffsetU+4.0, g.Grid.OffsetV+5.0
	for _,e := range entries {
		g.SetDrawColor(e.RGB[0], e.RGB[1], e.RGB[2])
		g.SetLineWidth(0.8)
		g.Fpdf.MoveTo(u, v-1)
		g.Fpdf.LineTo(u+6, v-1)
		g.DrawPath("D")
		g.SetTextColor(0,0,0)
		g.Fpdf.MoveTo(u+8, v-3)
		g.Cell(40, 4, e.Label)
		v += 5
	}
	g.DrawPath("D")
}

// }}}
// {{{ sp.DrawCaption

func (g *SeriesPdf)DrawCaption() {
	title := fmt.Sprintf("%s, per-million rates (log scale)\n", g.Country)
	title += g.Caption

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
