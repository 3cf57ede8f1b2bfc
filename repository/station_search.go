package repository

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/treinplanner/iffserver/geo"
)

// StationByCode performs an exact lowercase-code lookup.
func (r *Repository) StationByCode(code string) (geo.Station, bool) {
	return r.geo.StationByCode(strings.ToLower(code))
}

// SelectStationByName resolves a free-text station name: a
// case-insensitive exact name match wins outright; failing that, a
// single unique case-insensitive substring match is accepted.
// Multiple substring matches are genuinely ambiguous (see §4.7); this
// logs the discarded candidates at debug level and returns any one of
// them, along with the full candidate list.
func (r *Repository) SelectStationByName(needle string) (station geo.Station, candidates []geo.Station, ok bool) {
	lowered := strings.ToLower(strings.TrimSpace(needle))
	if lowered == "" {
		return geo.Station{}, nil, false
	}

	for _, s := range r.geo.Stations() {
		if strings.ToLower(s.Name) == lowered {
			return s, []geo.Station{s}, true
		}
	}

	var matches []geo.Station
	for _, s := range r.geo.Stations() {
		if strings.Contains(strings.ToLower(s.Name), lowered) {
			matches = append(matches, s)
		}
	}

	if len(matches) == 0 {
		return geo.Station{}, nil, false
	}

	if len(matches) > 1 {
		codes := make([]string, len(matches))
		for i, m := range matches {
			codes[i] = m.Code
		}
		log.Debug().
			Str("needle", needle).
			Strs("candidates", codes).
			Msg("repository: ambiguous station name match, picking first candidate")
	}

	return matches[0], matches, true
}
