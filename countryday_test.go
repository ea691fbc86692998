package coviddb

import(
	"testing"
)

func TestAggregateSumsAcrossProvinces(t *testing.T) {
	cases := []Observation{
		obs("Hubei", "China", "2020-03-01", 500),
		obs("Beijing", "China", "2020-03-01", 40),
	}
	deaths := []Observation{
		obs("Hubei", "China", "2020-03-01", 30),
		obs("Beijing", "China", "2020-03-01", 2),
	}
	pops := PopulationTable{"China": 1000}

	out := AggregateByCountryDay(MergeSeries(cases, deaths, nil), pops)

	if len(out) != 1 {
		t.Fatalf("expected 1 country-day row, got %d", len(out))
	}
	cd := out[0]
	if cd.Cases != 540 || cd.Deaths != 32 {
		t.Errorf("bad sums: %+v", cd)
	}
}

// The country population is attached per province row before summing, so a
// two-province country carries double its population into the aggregate.
// This matches the upstream pipeline's published numbers; see
// AggregateByCountryDay.
func TestAggregatePopulationSummedPerProvince(t *testing.T) {
	cases := []Observation{
		obs("Hubei", "China", "2020-03-01", 500),
		obs("Beijing", "China", "2020-03-01", 40),
		obs("", "Sweden", "2020-03-01", 10),
	}
	deaths := []Observation{
		obs("Hubei", "China", "2020-03-01", 30),
		obs("Beijing", "China", "2020-03-01", 2),
		obs("", "Sweden", "2020-03-01", 1),
	}
	pops := PopulationTable{"China": 1000, "Sweden": 50}

	byCountry := map[string]CountryDay{}
	for _,cd := range AggregateByCountryDay(MergeSeries(cases, deaths, nil), pops) {
		byCountry[cd.Country] = cd
	}

	if byCountry["China"].Population != 2000 {
		t.Errorf("China (2 provinces): expected population 2000, got %d",
			byCountry["China"].Population)
	}
	if byCountry["Sweden"].Population != 50 {
		t.Errorf("Sweden (1 row): expected population 50, got %d",
			byCountry["Sweden"].Population)
	}

	// Rates divide by the summed population.
	if got := byCountry["China"].CasesPerMillion; got != 540.0*PerMillion/2000.0 {
		t.Errorf("China cases/million: got %f", got)
	}
	if got := byCountry["Sweden"].DeathsPerMillion; got != 1.0*PerMillion/50.0 {
		t.Errorf("Sweden deaths/million: got %f", got)
	}
}

func TestDropIncomplete(t *testing.T) {
	rows := []CountryDay{
		{Country:"Sweden", HasCases:true, HasDeaths:true, Population:50},       // keep
		{Country:"NoDeaths", HasCases:true, Population:50},                     // drop
		{Country:"NoCases", HasDeaths:true, Population:50},                     // drop
		{Country:"NoPop", HasCases:true, HasDeaths:true},                       // drop
		{Country:"NoRecov", HasCases:true, HasDeaths:true, Population:9},       // keep
	}

	out := DropIncomplete(rows)

	if len(out) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d: %v", len(out), out)
	}
	for _,cd := range out {
		if !cd.HasCases || !cd.HasDeaths || cd.Population <= 0 {
			t.Errorf("incomplete row survived the filter: %+v", cd)
		}
	}
}
