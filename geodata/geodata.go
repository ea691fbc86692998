// Package geodata fetches and parses the world-country outlines used by the
// choropleth map.
package geodata

import(
	"fmt"
	"io/ioutil"
	"net/http"

	geojson "github.com/paulmach/go.geojson"
	"github.com/skypies/geo"
)

// WorldUrl serves a FeatureCollection with one feature per country, each
// carrying a "name" property and a Polygon or MultiPolygon geometry.
const WorldUrl = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"

// Country is one mappable region: a display name plus its outline rings,
// in lat/long space.
type Country struct {
	Name  string
	Rings [][]geo.Latlong
}

type WorldMap struct {
	Countries []Country
}

// {{{ ringFromCoords

// GeoJSON positions are [longitude, latitude].
func ringFromCoords(coords [][]float64) []geo.Latlong {
	ring := make([]geo.Latlong, 0, len(coords))
	for _,pos := range coords {
		if len(pos) < 2 { continue }
		ring = append(ring, geo.Latlong{Lat:pos[1], Long:pos[0]})
	}
	return ring
}

// }}}
// {{{ Parse

func Parse(b []byte) (*WorldMap, error) {
	fc,err := geojson.UnmarshalFeatureCollection(b)
	if err != nil { return nil, err }

	wm := WorldMap{}
	for _,f := range fc.Features {
		name := f.PropertyMustString("name", "")
		if name == "" || f.Geometry == nil { continue }

		c := Country{Name:name}
		if f.Geometry.IsPolygon() {
			for _,coords := range f.Geometry.Polygon {
				c.Rings = append(c.Rings, ringFromCoords(coords))
			}
		} else if f.Geometry.IsMultiPolygon() {
			for _,poly := range f.Geometry.MultiPolygon {
				for _,coords := range poly {
					c.Rings = append(c.Rings, ringFromCoords(coords))
				}
			}
		} else {
			continue // point features etc. aren't mappable regions
		}

		wm.Countries = append(wm.Countries, c)
	}

	if len(wm.Countries) == 0 {
		return nil, fmt.Errorf("geodata: no usable country features")
	}

	return &wm, nil
}

// }}}
// {{{ Fetch

// Fetch downloads and parses the world outlines. Failure is fatal to the
// run, same as the CSV fetches; no retry.
func Fetch(c *http.Client) (*WorldMap, error) {
	if c == nil {
		client := http.Client{}
		c = &client
	}

	resp,err := c.Get(WorldUrl)
	if err != nil { return nil, err }

	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", WorldUrl, resp.Status)
	}

	body,err := ioutil.ReadAll(resp.Body)
	if err != nil { return nil, err }

	return Parse(body)
}

// }}}

// {{{ wm.Bounds

func (wm *WorldMap)Bounds() geo.LatlongBox {
	box := geo.LatlongBox{}
	first := true
	for _,c := range wm.Countries {
		for _,ring := range c.Rings {
			for _,pos := range ring {
				if first {
					box = geo.LatlongBox{SW:pos, NE:pos}
					first = false
					continue
				}
				box.Enclose(pos)
			}
		}
	}
	return box
}

// }}}
// {{{ wm.ByName

func (wm *WorldMap)ByName() map[string]Country {
	out := map[string]Country{}
	for _,c := range wm.Countries {
		out[c.Name] = c
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
