// Package geo parses the geographic station and link datasets used
// to render and filter timetable rides, and implements the haversine
// great-circle distance calculation used to annotate link paths.
package geo

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// StationRank classifies a station's size/importance, 0 (Technical)
// through 7 (Mega).
type StationRank int

const (
	RankTechnical StationRank = iota
	RankStop
	RankSmall
	RankMedium
	RankMediumLarge
	RankLarge
	RankMajor
	RankMega
)

var stationRankByName = map[string]StationRank{
	"MEGA_STATION":     RankMega,
	"MAJOR_STATION":    RankMajor,
	"LARGE_STATION":    RankLarge,
	"MEDIUM_LARGE_STATION": RankMediumLarge,
	"MEDIUM_STATION":   RankMedium,
	"SMALL_STATION":    RankSmall,
	"STOP_STATION":     RankStop,
	"TECHNICAL_STATION": RankTechnical,
}

// Station is one entry from stations.json, normalized to a lowercase
// code.
type Station struct {
	Code string      `json:"code"`
	Name string      `json:"name"`
	Lat  float64     `json:"lat"`
	Lng  float64     `json:"lng"`
	Rank StationRank `json:"rank"`
}

type stationsEnvelope struct {
	Payload []stationPayload `json:"payload"`
}

type stationPayload struct {
	Code  string `json:"code"`
	Namen struct {
		Lang string `json:"lang"`
	} `json:"namen"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	StationType string  `json:"stationType"`
}

// ParseStations parses the stations.json payload envelope described
// in §4.6: a top-level object with a "payload" array.
func ParseStations(raw []byte) ([]Station, error) {
	var envelope stationsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "geo: parsing stations.json")
	}

	stations := make([]Station, 0, len(envelope.Payload))
	for _, p := range envelope.Payload {
		rank, ok := stationRankByName[p.StationType]
		if !ok {
			return nil, errors.Errorf("geo: station %q has unknown stationType %q", p.Code, p.StationType)
		}

		stations = append(stations, Station{
			Code: strings.ToLower(p.Code),
			Name: p.Namen.Lang,
			Lat:  p.Lat,
			Lng:  p.Lng,
			Rank: rank,
		})
	}

	return stations, nil
}
