package httpapi

import (
	"github.com/treinplanner/iffserver/geo"
	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
	"github.com/treinplanner/iffserver/ride"
)

// RideJSON is the wire shape documented for every endpoint that
// emits rides. distance and dayValidity are reserved fields, always 0
// for now.
type RideJSON struct {
	ID          string    `json:"id"`
	Operator    uint32    `json:"operator"`
	StartTime   int       `json:"startTime"`
	EndTime     int       `json:"endTime"`
	Distance    int       `json:"distance"`
	DayValidity int       `json:"dayValidity"`
	Legs        []LegJSON `json:"legs"`
}

// LegJSON is the wire shape of one Leg. stopType is null for Moving
// legs and encodes 1..5 for Stationary legs per ride.StopType.
type LegJSON struct {
	TimeStart   int      `json:"timeStart"`
	TimeEnd     int      `json:"timeEnd"`
	Moving      bool     `json:"moving"`
	Waypoints   []string `json:"waypoints"`
	From        *string  `json:"from,omitempty"`
	To          *string  `json:"to,omitempty"`
	StationCode *string  `json:"stationCode,omitempty"`
	Platform    *PlatformJSON `json:"platform,omitempty"`
	StopType    *int     `json:"stopType"`
}

// PlatformJSON is PlatformInfo rendered for the wire: platform fields
// as their canonical string form.
type PlatformJSON struct {
	ArrivalPlatform   *string `json:"arrivalPlatform,omitempty"`
	DeparturePlatform *string `json:"departurePlatform,omitempty"`
	FootnoteID        uint64  `json:"footnoteId"`
}

// toRideJSON renders a Ride to its wire shape, resolving location
// handles against in.
func toRideJSON(rd ride.Ride, in *interner.Interner) RideJSON {
	legs := make([]LegJSON, 0, len(rd.Legs))
	for _, leg := range rd.Legs {
		legs = append(legs, toLegJSON(leg, in))
	}

	return RideJSON{
		ID:        rd.ID,
		Operator:  rd.Operator,
		StartTime: int(rd.StartTime.Minutes()),
		EndTime:   int(rd.EndTime.Minutes()),
		Legs:      legs,
	}
}

func toLegJSON(leg ride.Leg, in *interner.Interner) LegJSON {
	switch v := leg.(type) {
	case ride.Moving:
		waypoints := make([]string, 0, len(v.Waypoints))
		for _, wp := range v.Waypoints {
			waypoints = append(waypoints, in.Resolve(wp))
		}
		from := in.Resolve(v.From)
		to := in.Resolve(v.To)
		return LegJSON{
			TimeStart: int(v.Start.Minutes()),
			TimeEnd:   int(v.End.Minutes()),
			Moving:    true,
			Waypoints: waypoints,
			From:      &from,
			To:        &to,
		}
	case ride.Stationary:
		code := in.Resolve(v.Station)
		stopType := int(v.StopType)
		return LegJSON{
			TimeStart:   int(v.Start.Minutes()),
			TimeEnd:     int(v.End.Minutes()),
			Moving:      false,
			Waypoints:   []string{},
			StationCode: &code,
			StopType:    &stopType,
			Platform:    toPlatformJSON(v.Platform),
		}
	default:
		return LegJSON{Waypoints: []string{}}
	}
}

func toPlatformJSON(p *iff.PlatformInfo) *PlatformJSON {
	if p == nil {
		return nil
	}
	out := &PlatformJSON{FootnoteID: p.FootnoteID}
	if p.ArrivalPlatform != nil {
		s := p.ArrivalPlatform.String()
		out.ArrivalPlatform = &s
	}
	if p.DeparturePlatform != nil {
		s := p.DeparturePlatform.String()
		out.DeparturePlatform = &s
	}
	return out
}

// companyListResponse, stationListResponse and linkListResponse reuse
// the domain types directly: iff.Company and geo.Station/geo.Link already carry json
// tags suited to the documented response shapes.
type companyListResponse = []iff.Company
type stationListResponse = []geo.Station
type linkListResponse = []geo.Link
