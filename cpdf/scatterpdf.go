package cpdf

import(
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/coviddb"
)

// ScatterPdf plots the country totals (deaths per thousand against cases
// per thousand) with the fitted line overlaid.
type ScatterPdf struct {
	Fit      coviddb.LinearFit
	MaxX     float64 // axis tops; derived from data by the caller
	MaxY     float64

	Grid         *BaseGrid
	*gofpdf.Fpdf // Embedded pointer
}

// {{{ scp.Init

func (g *ScatterPdf)Init() {
	g.Fpdf = gofpdf.New("P", "mm", "A4", "")
	g.AddPage()
	g.SetFont("Arial", "", 10)

	maxX,maxY := g.MaxX*1.05, g.MaxY*1.1
	if maxX <= 0 { maxX = 1 }
	if maxY <= 0 { maxY = 1 }

	g.Grid = &BaseGrid{
		Fpdf: g.Fpdf,
		OffsetU: 25,
		OffsetV: 35,
		W: 160,
		H: 130,
		MinX: 0,
		MaxX: maxX,
		MinY: 0,
		MaxY: maxY,
		Clip: true,
		XGridlineEvery: niceStep(maxX),
		YGridlineEvery: niceStep(maxY),
		XTickFmt: "%.0f",
		YTickFmt: "%.2f",
	}
}

// }}}
// {{{ scp.DrawFrame

func (g *ScatterPdf)DrawFrame() {
	g.Grid.DrawGridlines()
}

// }}}
// {{{ scp.DrawTotals

func (g *ScatterPdf)DrawTotals(totals []coviddb.CountryTotal) {
	g.SetDrawColor(BlueRGB[0], BlueRGB[1], BlueRGB[2])
	g.SetLineWidth(0.25)

	for _,ct := range totals {
		u,v,oob := g.Grid.UV(ct.CasesPerThousand, ct.DeathsPerThousand)
		if oob { continue }
		g.Circle(u, v, 0.8, "D")
	}
	g.DrawPath("D")
}

// }}}
// {{{ scp.DrawFitLine

func (g *ScatterPdf)DrawFitLine() {
	g.SetLineWidth(0.4)
	g.Grid.LineColor = RedRGB
	g.Grid.Line(0, g.Fit.Predict(0), g.Grid.MaxX, g.Fit.Predict(g.Grid.MaxX))
	g.DrawPath("D")
}

// }}}
// {{{ scp.DrawCaption

func (g *ScatterPdf)DrawCaption() {
	title := "Deaths/thousand vs cases/thousand, country totals\n"
	title += fmt.Sprintf("Fit: %s\n", g.Fit)

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
