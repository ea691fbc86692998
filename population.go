package coviddb

// PopulationTable maps a country name to its whole-country population.
type PopulationTable map[string]int64

// AddFirstWins records a population for a country, unless one is already
// known. The upstream lookup file lists the country-level total row before
// any per-province breakdown rows, so first-wins keeps the country total and
// discards every province figure.
func (pt PopulationTable)AddFirstWins(country string, population int64) {
	if _,exists := pt[country]; exists { return }
	pt[country] = population
}

// Lookup returns the country population, or zero when the country is unknown.
func (pt PopulationTable)Lookup(country string) int64 {
	return pt[country]
}
