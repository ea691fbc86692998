package coviddb

import "testing"

func TestTotals(t *testing.T) {
	days := []CountryDay{
		{Country:"Sweden", Date:d("2020-03-01"), Cases:10, Deaths:1, Population:1000},
		{Country:"Sweden", Date:d("2020-03-02"), Cases:20, Deaths:4, Population:1000},
		{Country:"Quiet", Date:d("2020-03-02"), Cases:0, Deaths:0, Population:1000},  // no cases
		{Country:"Nowhere", Date:d("2020-03-02"), Cases:5, Deaths:0, Population:0},   // no population
	}

	totals := Totals(days)

	if len(totals) != 1 {
		t.Fatalf("expected 1 total row, got %d: %v", len(totals), totals)
	}
	ct := totals[0]
	if ct.Country != "Sweden" || ct.Cases != 20 || ct.Deaths != 4 {
		t.Errorf("cumulative max not kept: %+v", ct)
	}
	if ct.CasesPerThousand != 20.0 {
		t.Errorf("cases/thousand: expected 20, got %f", ct.CasesPerThousand)
	}
	if ct.DeathsPerThousand != 4.0 {
		t.Errorf("deaths/thousand: expected 4, got %f", ct.DeathsPerThousand)
	}
}
