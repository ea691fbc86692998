package cpdf

import(
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/geo"

	"github.com/skypies/coviddb/geodata"
)

// MapPdf is the world choropleth: country outlines filled on a color ramp
// keyed by deaths per thousand. Values must already be keyed by the map
// dataset's country names (see geodata.Harmonize); countries with no value
// are drawn in grey.
type MapPdf struct {
	World    *geodata.WorldMap
	Values   map[string]float64
	MaxValue float64

	Bounds   geo.LatlongBox // map extent; defaults to the world's bounds

	OffsetU, OffsetV, W, H float64

	*gofpdf.Fpdf // Embedded pointer
}

// {{{ mp.Init

func (g *MapPdf)Init() {
	g.Fpdf = gofpdf.New("L", "mm", "A4", "")
	g.AddPage()
	g.SetFont("Arial", "", 10)

	if g.W == 0 { g.W = 260 }
	if g.H == 0 { g.H = 140 }
	if g.OffsetU == 0 { g.OffsetU = 18 }
	if g.OffsetV == 0 { g.OffsetV = 30 }

	empty := geo.LatlongBox{}
	if g.Bounds == empty && g.World != nil {
		g.Bounds = g.World.Bounds()
	}
}

// }}}
// {{{ mp.uv

// Equirectangular: lat/long map linearly onto the page rectangle.
func (g *MapPdf)uv(pos geo.Latlong) (float64, float64) {
	xRatio := (pos.Long - g.Bounds.SW.Long) / (g.Bounds.NE.Long - g.Bounds.SW.Long)
	yRatio := (pos.Lat - g.Bounds.SW.Lat) / (g.Bounds.NE.Lat - g.Bounds.SW.Lat)
	return g.OffsetU + xRatio*g.W, g.OffsetV + (1.0-yRatio)*g.H
}

// }}}
// {{{ mp.rampRGB

// White through to dark red as frac goes 0 -> 1.
func rampRGB(frac float64) (int, int, int) {
	if frac < 0 { frac = 0 }
	if frac > 1 { frac = 1 }
	gb := int(235.0 * (1.0 - frac))
	return 220 + int(35.0*(1.0-frac))/2, gb, gb
}

// }}}
// {{{ mp.DrawCountries

func (g *MapPdf)DrawCountries() {
	g.SetLineWidth(0.1)
	g.SetDrawColor(0x80, 0x80, 0x80)

	for _,c := range g.World.Countries {
		if val,exists := g.Values[c.Name]; exists && g.MaxValue > 0 {
			r,gg,b := rampRGB(val / g.MaxValue)
			g.SetFillColor(r, gg, b)
		} else {
			g.SetFillColor(0xd8, 0xd8, 0xd8) // no data for this region
		}

		for _,ring := range c.Rings {
			if len(ring) < 3 { continue }
			pts := make([]gofpdf.PointType, 0, len(ring))
			for _,pos := range ring {
				u,v := g.uv(pos)
				pts = append(pts, gofpdf.PointType{X:u, Y:v})
			}
			g.Polygon(pts, "FD")
		}
	}
}

// }}}
// {{{ mp.DrawLegend

func (g *MapPdf)DrawLegend() {
	u,v := g.OffsetU, g.OffsetV+g.H+8.0
	w,h := 60.0, 4.0
	nCells := 40

	g.SetLineWidth(0.05)
	for i := 0; i < nCells; i++ {
		frac := float64(i) / float64(nCells-1)
		r,gg,b := rampRGB(frac)
		g.SetFillColor(r, gg, b)
		g.Rect(u+float64(i)*w/float64(nCells), v, w/float64(nCells), h, "F")
	}

	g.SetFont("Arial", "", 7)
	g.SetTextColor(0,0,0)
	g.Text(u, v+h+3.5, "0")
	g.Text(u+w-8, v+h+3.5, fmt.Sprintf("%.2f", g.MaxValue))
	g.Text(u+w+4, v+h, "deaths / thousand")
}

// }}}
// {{{ mp.DrawCaption

func (g *MapPdf)DrawCaption() {
	g.SetTextColor(0x50, 0x70, 0xc0)
	g.Fpdf.MoveTo(10, 10)
	g.MultiCell(0, 4, "Deaths per thousand by country\n", "", "", false)
	g.DrawPath("D")
	g.SetTextColor(0,0,0)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
