package ride

import (
	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
)

// GenerateLegs renders a normalized (Departure-first, Arrival-last)
// timetable slice into its presentation legs: one Stationary leg for
// the first stop, then for every later non-waypoint stop a Moving leg
// from the previous non-waypoint stop followed by a Stationary leg at
// the new stop.
func GenerateLegs(entries []iff.TimetableEntry) ([]Leg, error) {
	if len(entries) == 0 {
		return nil, errors.New("cannot generate legs from an empty ride")
	}

	first := entries[0]
	depart, ok := iff.DepartureTime(first.StopKind)
	if !ok {
		return nil, errors.New("first stop has no departure time")
	}

	legs := []Leg{
		Stationary{
			Station:  first.Location,
			Start:    depart.OffsetBy(-1),
			End:      depart,
			StopType: StopTypeDeparture,
			Platform: iff.PlatformOf(first.StopKind),
		},
	}

	var waypoints []interner.Handle
	prevIdx := 0

	for i := 1; i < len(entries); i++ {
		entry := entries[i]

		if iff.IsWaypoint(entry.StopKind) {
			waypoints = append(waypoints, entry.Location)
			continue
		}

		prev := entries[prevIdx]
		prevDepart, ok := iff.DepartureTime(prev.StopKind)
		if !ok {
			return nil, errors.Errorf("stop %d has no departure time to move from", prevIdx)
		}
		arrive, ok := iff.ArrivalTime(entry.StopKind)
		if !ok {
			return nil, errors.Errorf("stop %d has no arrival time to move to", i)
		}

		legs = append(legs, Moving{
			From:      prev.Location,
			To:        entry.Location,
			Waypoints: waypoints,
			Start:     prevDepart,
			End:       arrive,
		})
		waypoints = nil

		switch v := entry.StopKind.(type) {
		case iff.Arrival:
			legs = append(legs, Stationary{Station: entry.Location, Start: v.Arrive, End: v.Arrive.OffsetBy(1), StopType: StopTypeArrival, Platform: v.Platform})
		case iff.StopShort:
			legs = append(legs, Stationary{Station: entry.Location, Start: v.At, End: v.At.OffsetBy(1), StopType: StopTypeShort, Platform: v.Platform})
		case iff.StopLong:
			legs = append(legs, Stationary{Station: entry.Location, Start: v.Arrive, End: v.Depart, StopType: StopTypeLong, Platform: v.Platform})
		case iff.Departure:
			return nil, errors.Errorf("stop %d: an intermediate Departure is illegal", i)
		}

		prevIdx = i
	}

	return legs, nil
}
