package geo

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// earthRadiusKM is the great-circle radius used for all link-path
// distance calculations. Unlike the meter-scale constants some
// geometry libraries use, link paths are reported in kilometers.
const earthRadiusKM = 6371.0

// Point is one coordinate of a link's path, with the cumulative
// great-circle distance in kilometers from the path's first point.
type Point struct {
	Lon              float64 `json:"lon"`
	Lat              float64 `json:"lat"`
	CumulativeDistKM float64 `json:"cumulativeDistKm"`
}

// Link is an undirected connection between two station codes, with
// its geographic path materialized as a sequence of Points.
type Link struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Path []Point `json:"path"`
}

// LinkKey identifies a link independent of traversal direction:
// LinkKey(a, b) always equals LinkKey(b, a).
func LinkKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

type linksEnvelope struct {
	Payload struct {
		Features []linkFeature `json:"features"`
	} `json:"payload"`
}

type linkFeature struct {
	Geometry struct {
		Coordinates [][2]float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"properties"`
}

// ParseLinks parses the route.json payload envelope described in
// §4.6: payload.features is an array of GeoJSON-ish line features.
func ParseLinks(raw []byte) ([]Link, error) {
	var envelope linksEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "geo: parsing route.json")
	}

	links := make([]Link, 0, len(envelope.Payload.Features))
	for _, f := range envelope.Payload.Features {
		path := make([]Point, len(f.Geometry.Coordinates))
		var cumulative float64
		for i, coord := range f.Geometry.Coordinates {
			lon, lat := coord[0], coord[1]
			if i > 0 {
				cumulative += HaversineKM(path[i-1].Lat, path[i-1].Lon, lat, lon)
			}
			path[i] = Point{Lon: lon, Lat: lat, CumulativeDistKM: cumulative}
		}

		links = append(links, Link{
			From: strings.ToLower(f.Properties.From),
			To:   strings.ToLower(f.Properties.To),
			Path: path,
		})
	}

	return links, nil
}

// HaversineKM returns the great-circle distance in kilometers between
// two lat/lon points.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * math.Pi / 180.0
	φ2 := lat2 * math.Pi / 180.0
	dφ := (lat2 - lat1) * math.Pi / 180.0
	dλ := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dφ/2)*math.Sin(dφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
