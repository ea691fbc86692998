package geodata

// go test -v github.com/skypies/coviddb/geodata

import(
	"testing"
)

var worldJson = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Squareland"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Twin Isles"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[20,20],[25,20],[25,25],[20,20]]],
          [[[30,30],[35,30],[35,35],[30,30]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Pointville"},
      "geometry": {"type": "Point", "coordinates": [1,1]}
    }
  ]
}`

func TestParse(t *testing.T) {
	wm,err := Parse([]byte(worldJson))
	if err != nil { t.Fatal(err) }

	// The point feature is not mappable and should be dropped.
	if len(wm.Countries) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(wm.Countries))
	}

	byName := wm.ByName()

	sq := byName["Squareland"]
	if len(sq.Rings) != 1 || len(sq.Rings[0]) != 5 {
		t.Errorf("Squareland rings mangled: %+v", sq)
	}
	// GeoJSON is [long, lat]; make sure we didn't swap them.
	if p := sq.Rings[0][1]; p.Lat != 0 || p.Long != 10 {
		t.Errorf("coordinate order swapped: %+v", p)
	}

	ti := byName["Twin Isles"]
	if len(ti.Rings) != 2 {
		t.Errorf("Twin Isles should have 2 rings, got %d", len(ti.Rings))
	}
}

func TestBounds(t *testing.T) {
	wm,err := Parse([]byte(worldJson))
	if err != nil { t.Fatal(err) }

	box := wm.Bounds()
	if box.SW.Lat != 0 || box.SW.Long != 0 {
		t.Errorf("SW corner: %+v", box.SW)
	}
	if box.NE.Lat != 35 || box.NE.Long != 35 {
		t.Errorf("NE corner: %+v", box.NE)
	}
}

func TestParseEmpty(t *testing.T) {
	if _,err := Parse([]byte(`{"type":"FeatureCollection","features":[]}`)); err == nil {
		t.Errorf("empty collection should be an error")
	}
}

func TestHarmonize(t *testing.T) {
	tests := []struct{
		In, Expected string
	}{
		{"US", "USA"},
		{"Korea, South", "South Korea"},
		{"Sweden", "Sweden"},         // no mismatch; passes through
		{"Narnia", "Narnia"},         // unknown; passes through (and will miss the join)
	}
	for _,test := range tests {
		if got := Harmonize(test.In); got != test.Expected {
			t.Errorf("Harmonize(%q): expected %q, got %q", test.In, test.Expected, got)
		}
	}
}
