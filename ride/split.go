package ride

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/iff"
)

// SplitRecord turns one raw timetable Record into zero or more Rides,
// one per RideID, per the endpoint-normalized slicing algorithm.
func SplitRecord(rec iff.Record) ([]Ride, error) {
	if len(rec.RideIDs) == 0 {
		return nil, nil
	}

	modeFor, err := transitModeSelector(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "record %d", rec.ID)
	}

	nonWaypoints := nonWaypointIndices(rec.Timetable)

	rideNumbers := make([]string, len(rec.RideIDs))
	for k, rid := range rec.RideIDs {
		rideNumbers[k] = strconv.FormatUint(uint64(rid.RideNumber), 10)
	}

	rides := make([]Ride, 0, len(rec.RideIDs))
	for k, rid := range rec.RideIDs {
		mode, err := modeFor(k)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: ride %d", rec.ID, rid.RideNumber)
		}

		if rid.FirstStopIdx < 1 || rid.LastStopIdx < rid.FirstStopIdx || int(rid.LastStopIdx) > len(nonWaypoints) {
			return nil, errors.Errorf("record %d: ride-id %d has out-of-range stop range [%d,%d] over %d non-waypoint stops",
				rec.ID, rid.RideNumber, rid.FirstStopIdx, rid.LastStopIdx, len(nonWaypoints))
		}

		firstRaw := nonWaypoints[rid.FirstStopIdx-1]
		lastRaw := nonWaypoints[rid.LastStopIdx-1]

		entries := make([]iff.TimetableEntry, lastRaw-firstRaw+1)
		copy(entries, rec.Timetable[firstRaw:lastRaw+1])

		if err := normalizeEndpoints(entries); err != nil {
			return nil, errors.Wrapf(err, "record %d: ride %d", rec.ID, rid.RideNumber)
		}

		legs, err := GenerateLegs(entries)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: ride %d", rec.ID, rid.RideNumber)
		}

		start, ok := iff.DepartureTime(entries[0].StopKind)
		if !ok {
			return nil, errors.Errorf("record %d: ride %d: normalized first stop has no departure time", rec.ID, rid.RideNumber)
		}
		end, ok := iff.ArrivalTime(entries[len(entries)-1].StopKind)
		if !ok {
			return nil, errors.Errorf("record %d: ride %d: normalized last stop has no arrival time", rec.ID, rid.RideNumber)
		}

		var previous, next *string
		if k > 0 {
			p := rideNumbers[k-1]
			previous = &p
		}
		if k+1 < len(rideNumbers) {
			n := rideNumbers[k+1]
			next = &n
		}

		rides = append(rides, Ride{
			ID:          rideNumbers[k],
			Operator:    rid.CompanyID,
			LineID:      rid.LineID,
			RideName:    rid.RideName,
			TransitMode: mode.ModeCode,
			DayValidity: rec.DayValidityFootnote,
			Previous:    previous,
			Next:        next,
			Legs:        legs,
			StartTime:   start,
			EndTime:     end,
		})
	}

	return rides, nil
}

// transitModeSelector implements the two supported record shapes: a
// single transit mode shared by every ride-id, or one mode per
// ride-id matched positionally. Any other combination is an
// ingestion error.
func transitModeSelector(rec iff.Record) (func(k int) (iff.TransitMode, error), error) {
	switch {
	case len(rec.TransitTypes) == 1:
		mode := rec.TransitTypes[0]
		return func(int) (iff.TransitMode, error) { return mode, nil }, nil
	case len(rec.TransitTypes) == len(rec.RideIDs):
		modes := rec.TransitTypes
		return func(k int) (iff.TransitMode, error) { return modes[k], nil }, nil
	default:
		return nil, errors.Errorf("unsupported combination of %d transit modes and %d ride-ids", len(rec.TransitTypes), len(rec.RideIDs))
	}
}

func nonWaypointIndices(entries []iff.TimetableEntry) []int {
	idxs := make([]int, 0, len(entries))
	for i, e := range entries {
		if !iff.IsWaypoint(e.StopKind) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// normalizeEndpoints forces entries[0] to Departure and the last
// entry to Arrival, carrying over platform and time (falling back to
// the only time the original kind had) per the ride-split invariant.
func normalizeEndpoints(entries []iff.TimetableEntry) error {
	if len(entries) == 0 {
		return errors.New("empty ride slice")
	}

	first := entries[0]
	switch v := first.StopKind.(type) {
	case iff.Departure:
		// already correct
	case iff.Arrival:
		entries[0].StopKind = iff.Departure{Platform: v.Platform, Depart: v.Arrive}
	case iff.StopShort:
		entries[0].StopKind = iff.Departure{Platform: v.Platform, Depart: v.At}
	case iff.StopLong:
		entries[0].StopKind = iff.Departure{Platform: v.Platform, Depart: v.Depart}
	default:
		return errors.New("first stop of a ride must not be a waypoint")
	}

	lastIdx := len(entries) - 1
	last := entries[lastIdx]
	switch v := last.StopKind.(type) {
	case iff.Arrival:
		// already correct
	case iff.Departure:
		entries[lastIdx].StopKind = iff.Arrival{Platform: v.Platform, Arrive: v.Depart}
	case iff.StopShort:
		entries[lastIdx].StopKind = iff.Arrival{Platform: v.Platform, Arrive: v.At}
	case iff.StopLong:
		entries[lastIdx].StopKind = iff.Arrival{Platform: v.Platform, Arrive: v.Arrive}
	default:
		return errors.New("last stop of a ride must not be a waypoint")
	}

	return nil
}
