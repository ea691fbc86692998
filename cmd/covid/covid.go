package main

// One-shot covid pipeline: fetch the CSV snapshots, build the country-day
// dataset, print the console summary, write the chart PDFs. Or run the
// local viewer over the same dataset with -serve.

import(
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/skypies/coviddb"
	"github.com/skypies/coviddb/cpdf"
	"github.com/skypies/coviddb/csse"
	"github.com/skypies/coviddb/geodata"
	"github.com/skypies/coviddb/report"
	"github.com/skypies/coviddb/ui"
)

var(
	fVerbosity int
	fCountry string
	fTopN int
	fOutDir string
	fServe string
	fSkipMap bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fCountry, "country", "Sweden", "country for the summary and series chart")
	flag.IntVar(&fTopN, "n", 10, "how many countries in the ranked outputs")
	flag.StringVar(&fOutDir, "out", ".", "directory the chart PDFs are written into")
	flag.StringVar(&fServe, "serve", "", "addr to serve the viewer on (e.g. :8080), instead of writing PDFs")
	flag.BoolVar(&fSkipMap, "skipmap", false, "skip the world outlines fetch and the choropleth")
	flag.Parse()
}

// {{{ build

func build() (*coviddb.Dataset, *geodata.WorldMap) {
	log.Printf("fetching CSV snapshot")
	snap,err := csse.Fetch(nil)
	if err != nil { log.Fatal(err) }
	if fVerbosity > 0 { fmt.Printf("%s\n", snap) }

	ds := coviddb.BuildDataset(snap.Cases, snap.Deaths, snap.Recovered, snap.Populations)
	if len(ds.Days) == 0 { log.Fatal("dataset came out empty") }
	log.Printf("built %d country-days over %d dates (last %s)",
		len(ds.Days), len(ds.Dates), ds.LastDate().Format("2006-01-02"))

	var world *geodata.WorldMap
	if !fSkipMap {
		log.Printf("fetching world outlines")
		world,err = geodata.Fetch(nil)
		if err != nil { log.Fatal(err) }
	}

	return ds, world
}

// }}}
// {{{ printSummary

func printSummary(ds *coviddb.Dataset) {
	rep,err := report.InstantiateReport(".summary")
	if err != nil { log.Fatal(err) }
	rep.Options = report.Options{Name:".summary", Country:fCountry, TopN:fTopN}

	if err := rep.Process(ds); err != nil { log.Fatal(err) }

	for _,row := range rep.RowsText {
		fmt.Printf("%-44.44s %s\n", row[0], row[1])
	}

	if fVerbosity > 0 {
		fmt.Printf("\nDeaths/million distribution on %s: %s\n",
			rep.RankingDate(ds).Format("2006-01-02"), rep.H)
	}
	if fVerbosity > 1 {
		fmt.Printf("Stats:-\n%s", rep.Stats)
	}
}

// }}}
// {{{ writeCharts

func writeCharts(ds *coviddb.Dataset, world *geodata.WorldMap) {
	outfile := func(name string) string { return filepath.Join(fOutDir, name) }

	g1,err := cpdf.NewSeriesPdf(ds, fCountry)
	if err != nil { log.Fatal(err) }
	if err := g1.OutputFileAndClose(outfile("series.pdf")); err != nil { log.Fatal(err) }
	log.Printf("wrote %s", outfile("series.pdf"))

	g2,err := cpdf.NewRankedPdf(ds, fTopN)
	if err != nil { log.Fatal(err) }
	if err := g2.OutputFileAndClose(outfile("top.pdf")); err != nil { log.Fatal(err) }
	log.Printf("wrote %s", outfile("top.pdf"))

	g3,err := cpdf.NewScatterPdf(ds)
	if err != nil { log.Fatal(err) }
	if err := g3.OutputFileAndClose(outfile("fit.pdf")); err != nil { log.Fatal(err) }
	log.Printf("wrote %s", outfile("fit.pdf"))

	if world != nil {
		g4,err := cpdf.NewMapPdf(ds, world)
		if err != nil { log.Fatal(err) }
		if err := g4.OutputFileAndClose(outfile("map.pdf")); err != nil { log.Fatal(err) }
		log.Printf("wrote %s", outfile("map.pdf"))
	}
}

// }}}
// {{{ serve

func serve(ds *coviddb.Dataset, world *geodata.WorldMap) {
	server := ui.Server{DS:ds, World:world}
	mux := http.NewServeMux()
	server.AddHandlers(mux)

	log.Printf("viewer on http://localhost%s/covid/", fServe)
	log.Fatal(http.ListenAndServe(fServe, mux))
}

// }}}

func main() {
	ds,world := build()

	if fServe != "" {
		serve(ds, world)
		return
	}

	printSummary(ds)
	writeCharts(ds, world)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
