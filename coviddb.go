// This package contains all the types for the covid country-day database,
// and the table operations that derive it. No HTTP imports.
package coviddb

const(
	// Scale factors for the derived per-capita rates. The country-day
	// table reports per-million; the whole-range totals table reports
	// per-thousand, to match the regression axes.
	PerMillion  = 1000000.0
	PerThousand = 1000.0
)

// Metric names a cumulative series pulled from the upstream snapshot.
type Metric string
const(
	MetricCases     Metric = "cases"
	MetricDeaths    Metric = "deaths"
	MetricRecovered Metric = "recovered"
)
