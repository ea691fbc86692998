// Package cpdf renders the covid charts (time series, ranked lines,
// regression scatter, choropleth map) as PDFs.
package cpdf

var (
	RedRGB   = []int{0xff, 0, 0}
	GreenRGB = []int{0, 0xa0, 0}
	BlueRGB  = []int{0, 0, 0xff}
	GreyRGB  = []int{0x90, 0x90, 0x90}
)

// A rotation of distinguishable line colors for multi-country charts.
var LinePalette = [][]int{
	{0xe6, 0x19, 0x4b},
	{0x3c, 0xb4, 0x4b},
	{0x43, 0x63, 0xd8},
	{0xf5, 0x82, 0x31},
	{0x91, 0x1e, 0xb4},
	{0x46, 0xf0, 0xf0},
	{0xf0, 0x32, 0xe6},
	{0x80, 0x80, 0x00},
	{0x00, 0x80, 0x80},
	{0x9a, 0x63, 0x24},
}

func PaletteColor(i int) []int {
	return LinePalette[i % len(LinePalette)]
}
