package repository

import (
	"time"

	"github.com/treinplanner/iffserver/dayoffset"
	"github.com/treinplanner/iffserver/ride"
)

// ActiveRidesAt returns rides whose start time is strictly before t
// and end time strictly after t, and which are valid on date.
func (r *Repository) ActiveRidesAt(t dayoffset.DayOffset, date time.Time) []ride.Ride {
	var out []ride.Ride
	for _, rd := range r.rides {
		if rd.StartTime.Before(t) && rd.EndTime.After(t) && r.IsRideValid(rd, date) {
			out = append(out, rd)
		}
	}
	return out
}

// ActiveRidesInTimespan returns rides overlapping [tStart, tEnd] —
// start_time <= tEnd and end_time > tStart — valid on date.
func (r *Repository) ActiveRidesInTimespan(tStart, tEnd dayoffset.DayOffset, date time.Time) []ride.Ride {
	var out []ride.Ride
	for _, rd := range r.rides {
		startsInRange := !rd.StartTime.After(tEnd)
		endsAfterStart := rd.EndTime.After(tStart)
		if startsInRange && endsAfterStart && r.IsRideValid(rd, date) {
			out = append(out, rd)
		}
	}
	return out
}

// RidesOnDate returns every ride valid on date, irrespective of time.
func (r *Repository) RidesOnDate(date time.Time) []ride.Ride {
	var out []ride.Ride
	for _, rd := range r.rides {
		if r.IsRideValid(rd, date) {
			out = append(out, rd)
		}
	}
	return out
}

// IsRideValid delegates to the validity engine, treating an
// out-of-range date (or an unknown footnote) as simply not valid.
func (r *Repository) IsRideValid(rd ride.Ride, date time.Time) bool {
	return r.IsValidOnDay(rd.DayValidity, date)
}

// IsValidOnDay is the query-surface validity check keyed directly by
// footnote id, for callers that don't have a Ride in hand.
func (r *Repository) IsValidOnDay(footnoteID uint64, date time.Time) bool {
	return r.validity.IsValidOnDay(footnoteID, date)
}

// RideByID returns the first ride with the given id, if any. Ride ids
// are not guaranteed unique across the whole repository (a ride
// number can repeat across ride-id namespaces in principle), so this
// is a best-effort lookup used by the route mapper.
func (r *Repository) RideByID(id string) (ride.Ride, bool) {
	for _, rd := range r.rides {
		if rd.ID == id {
			return rd, true
		}
	}
	return ride.Ride{}, false
}
