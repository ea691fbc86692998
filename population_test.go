package coviddb

import "testing"

// Row order mirrors the upstream lookup file: the country total precedes the
// province breakdowns, and only the first row may stick.
func TestPopulationFirstRowWins(t *testing.T) {
	pt := PopulationTable{}
	pt.AddFirstWins("X", 100) // country-level total
	pt.AddFirstWins("X", 40)  // province A
	pt.AddFirstWins("X", 60)  // province B

	if got := pt.Lookup("X"); got != 100 {
		t.Errorf("expected country total 100, got %d", got)
	}
	if got := pt.Lookup("unknown"); got != 0 {
		t.Errorf("unknown country should yield 0, got %d", got)
	}
}
