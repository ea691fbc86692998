package geodata

// The epidemiological snapshot and the map outlines disagree on a short
// list of country names. This fixed mapping translates the snapshot's
// naming into the map's naming before the choropleth join; anything still
// unmatched afterwards is simply left off the map.
var CountryRenames = map[string]string{
	"US":                  "USA",
	"Korea, South":        "South Korea",
	"Taiwan*":             "Taiwan",
	"Burma":               "Myanmar",
	"Czechia":             "Czech Republic",
	"Cote d'Ivoire":       "Ivory Coast",
	"Congo (Kinshasa)":    "Democratic Republic of the Congo",
	"Congo (Brazzaville)": "Republic of the Congo",
	"North Macedonia":     "Macedonia",
	"Serbia":              "Republic of Serbia",
	"Tanzania":            "United Republic of Tanzania",
}

// Harmonize maps an epidemiological country name to the map dataset's name
// for the same region. Names with no known mismatch pass through unchanged.
func Harmonize(name string) string {
	if mapped,exists := CountryRenames[name]; exists { return mapped }
	return name
}
