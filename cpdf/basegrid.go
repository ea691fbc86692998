package cpdf

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Describes a grid we're going to plot over, and the location of its top-left
// corner in PDF space. Y can be linear or log10; the covid series span four
// orders of magnitude, so the single-country chart needs the log axis.
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// Describe the portion of PDF page space the grid will be drawn over (labels go outside)
	OffsetU     float64
	OffsetV     float64
	W,H         float64 // width and height of the grid, in PDF units (should be mm)

	// Control how (x,y) vals are mapped into (u,v) vals
	MinX,MinY,MaxX,MaxY float64 // the range of values that should be scaled onto the grid
	LogY                bool    // plot log10(y); MinY must be > 0
	Clip                bool    // whether to clip lines to fit inside grid

	// How to draw gridlines
	NoGridlines                    bool
	XGridlineEvery, YGridlineEvery float64 // From Min[XY] to Max[XY]; ignored on log Y (decades)
	XTickFmt,       YTickFmt       string  // Will be passed a float64 via fmt.Sprintf; blank==none
	XTickLabeler   func(float64) string    // Overrides XTickFmt; for date axes

	// Other formatting
	LineColor []int // rgb, each [0,255]
}

// {{{ bg.yRatio

func (bg BaseGrid)yRatio(y float64) float64 {
	if bg.LogY {
		if y < bg.MinY { y = bg.MinY } // log axis floor; zero counts plot on the axis
		return (math.Log10(y) - math.Log10(bg.MinY)) /
			(math.Log10(bg.MaxY) - math.Log10(bg.MinY))
	}
	return (y - bg.MinY) / (bg.MaxY - bg.MinY)
}

// }}}
// {{{ bg.U, V, UV

// the bool is whether the coord is out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := bg.yRatio(y)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H))
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveBy, LineBy

func (bg BaseGrid)MoveBy(x,y float64) {
	currX,currY := bg.GetXY()
	bg.Fpdf.MoveTo(currX+x, currY+y)
}
func (bg BaseGrid)LineBy(x,y float64) {
	currX,currY := bg.GetXY()
	bg.Fpdf.LineTo(currX+x, currY+y)
}

// }}}
// {{{ bg.MaybeSet{Draw|Text}Color

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}
// {{{ bg.MoveTo, LineTo, Line

// We submit coords in gridspace (e.g. x,y), and the grid transforms them into PDFspace.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

// Only draw the line if both points are inside bounds
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.MaybeSetDrawColor()
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
	}

	bg.DrawPath("D")
}

// }}}
// {{{ bg.yGridValues

// Linear Y: every YGridlineEvery. Log Y: the decades spanning [MinY,MaxY].
func (bg BaseGrid)yGridValues() []float64 {
	out := []float64{}
	if bg.LogY {
		for p := math.Ceil(math.Log10(bg.MinY)); p <= math.Log10(bg.MaxY); p++ {
			out = append(out, math.Pow(10, p))
		}
	} else if bg.YGridlineEvery > 0 {
		for y := bg.MinY; y <= bg.MaxY; y += bg.YGridlineEvery {
			out = append(out, y)
		}
	}
	return out
}

// }}}
// {{{ bg.DrawGridlines

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 8)

	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)
	if bg.XGridlineEvery > 0 {
		for x := bg.MinX; x <= bg.MaxX; x += bg.XGridlineEvery {
			if !bg.NoGridlines {
				bg.MoveTo(x, bg.MinY)
				bg.LineTo(x, bg.MaxY)
			}

			label := ""
			if bg.XTickLabeler != nil {
				label = bg.XTickLabeler(x)
			} else if bg.XTickFmt != "" {
				label = fmt.Sprintf(bg.XTickFmt, x)
			}
			if label != "" {
				bg.MoveTo(x, bg.MinY)
				bg.MoveBy(-4, 2)  // Offset in MM
				bg.SetTextColor(0,0,0)
				bg.Cell(30, 4, label)
				bg.DrawPath("D")
			}
		}
	}

	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)
	for _,y := range bg.yGridValues() {
		if !bg.NoGridlines {
			bg.MoveTo(bg.MinX, y)
			bg.LineTo(bg.MaxX, y)
		}

		if bg.YTickFmt != "" {
			bg.MoveTo(bg.MinX, y)
			bg.MoveBy(-19, -2)
			bg.MaybeSetTextColor()
			bg.CellFormat(18, 4, fmt.Sprintf(bg.YTickFmt, y), "", 0, "R", false, 0, "")
			bg.SetTextColor(0,0,0)
			bg.DrawPath("D")
		}
	}
	bg.DrawPath("D")
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
