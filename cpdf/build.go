package cpdf

import(
	"fmt"

	"github.com/skypies/coviddb"
	"github.com/skypies/coviddb/geodata"
)

// Constructors that wire a dataset into each fully-drawn chart. Callers
// just stream or save the embedded Fpdf afterwards.

// {{{ NewSeriesPdf

func NewSeriesPdf(ds *coviddb.Dataset, country string) (*SeriesPdf, error) {
	series := ds.CountrySeries(country)
	if len(series) == 0 {
		return nil, fmt.Errorf("country '%s' not in dataset", country)
	}

	maxRate := 0.0
	showRecovered := false
	for _,cd := range series {
		if cd.CasesPerMillion > maxRate { maxRate = cd.CasesPerMillion }
		if cd.HasRecovered { showRecovered = true }
	}

	g := SeriesPdf{
		Country: country,
		Dates: ds.Dates,
		MaxRate: maxRate,
		ShowRecovered: showRecovered,
	}
	g.Init()
	g.DrawFrame()
	g.DrawSeries(series)
	g.DrawLegend()
	g.DrawCaption()

	return &g, nil
}

// }}}
// {{{ NewRankedPdf

func NewRankedPdf(ds *coviddb.Dataset, n int) (*RankedPdf, error) {
	date := ds.LastDate()
	top := ds.TopByDeathsPerMillion(date, n)
	if len(top) == 0 {
		return nil, fmt.Errorf("nothing to rank on %s", date.Format("2006-01-02"))
	}

	maxRate := 0.0
	for _,name := range top {
		for _,cd := range ds.CountrySeries(name) {
			if cd.DeathsPerMillion > maxRate { maxRate = cd.DeathsPerMillion }
		}
	}

	g := RankedPdf{
		Dates: ds.Dates,
		RankingDate: date,
		MaxRate: maxRate,
	}
	g.Init()
	g.DrawFrame()
	for _,name := range top {
		g.DrawCountry(name, ds.CountrySeries(name))
	}
	g.DrawCaption()

	return &g, nil
}

// }}}
// {{{ NewScatterPdf

func NewScatterPdf(ds *coviddb.Dataset) (*ScatterPdf, error) {
	totals := coviddb.Totals(ds.Days)

	fit,err := coviddb.FitDeathsAgainstCases(totals)
	if err != nil { return nil, err }

	maxX,maxY := 0.0,0.0
	for _,ct := range totals {
		if ct.CasesPerThousand > maxX { maxX = ct.CasesPerThousand }
		if ct.DeathsPerThousand > maxY { maxY = ct.DeathsPerThousand }
	}

	g := ScatterPdf{Fit:fit, MaxX:maxX, MaxY:maxY}
	g.Init()
	g.DrawFrame()
	g.DrawTotals(totals)
	g.DrawFitLine()
	g.DrawCaption()

	return &g, nil
}

// }}}
// {{{ NewMapPdf

func NewMapPdf(ds *coviddb.Dataset, world *geodata.WorldMap) (*MapPdf, error) {
	if world == nil || len(world.Countries) == 0 {
		return nil, fmt.Errorf("no world outlines")
	}

	// Key the values by the map dataset's names; countries the rename map
	// doesn't reconcile just miss the join and render grey.
	values := map[string]float64{}
	maxVal := 0.0
	for _,ct := range coviddb.Totals(ds.Days) {
		name := geodata.Harmonize(ct.Country)
		values[name] = ct.DeathsPerThousand
		if ct.DeathsPerThousand > maxVal { maxVal = ct.DeathsPerThousand }
	}

	g := MapPdf{World:world, Values:values, MaxValue:maxVal}
	g.Init()
	g.DrawCountries()
	g.DrawLegend()
	g.DrawCaption()

	return &g, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
