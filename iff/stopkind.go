package iff

import (
	"github.com/treinplanner/iffserver/dayoffset"
)

// PlatformInfo ties an (optional) arrival and departure platform to
// the footnote that governs its own validity — distinct from the
// footnote governing the ride itself.
type PlatformInfo struct {
	ArrivalPlatform   *Platform `json:"arrival_platform,omitempty"`
	DeparturePlatform *Platform `json:"departure_platform,omitempty"`
	FootnoteID        uint64    `json:"footnote_id"`
}

// StopKind is the closed set of stop shapes a TimetableEntry can take.
// It is a sealed interface: stopKind() exists only to prevent other
// packages from adding variants, keeping the switch in every consumer
// exhaustive.
type StopKind interface {
	stopKind()
}

// Waypoint marks a location the train passes without a passenger
// event.
type Waypoint struct{}

func (Waypoint) stopKind() {}

// Departure is the first stop of a (normalized) ride.
type Departure struct {
	Platform *PlatformInfo
	Depart   dayoffset.DayOffset
}

func (Departure) stopKind() {}

// Arrival is the last stop of a (normalized) ride.
type Arrival struct {
	Platform *PlatformInfo
	Arrive   dayoffset.DayOffset
}

func (Arrival) stopKind() {}

// StopShort is an intermediate stop with a single recorded time
// (arrival and departure coincide).
type StopShort struct {
	Platform *PlatformInfo
	At       dayoffset.DayOffset
}

func (StopShort) stopKind() {}

// StopLong is an intermediate stop with separate arrival and
// departure times (a dwell). Invariant: Arrive <= Depart.
type StopLong struct {
	Platform *PlatformInfo
	Arrive   dayoffset.DayOffset
	Depart   dayoffset.DayOffset
}

func (StopLong) stopKind() {}

// DepartureTime returns the time at which the train leaves this stop,
// if any (Waypoint and Arrival have none).
func DepartureTime(k StopKind) (dayoffset.DayOffset, bool) {
	switch v := k.(type) {
	case Departure:
		return v.Depart, true
	case StopShort:
		return v.At, true
	case StopLong:
		return v.Depart, true
	default:
		return dayoffset.DayOffset{}, false
	}
}

// ArrivalTime returns the time at which the train reaches this stop,
// if any (Waypoint and Departure have none).
func ArrivalTime(k StopKind) (dayoffset.DayOffset, bool) {
	switch v := k.(type) {
	case Arrival:
		return v.Arrive, true
	case StopShort:
		return v.At, true
	case StopLong:
		return v.Arrive, true
	default:
		return dayoffset.DayOffset{}, false
	}
}

// PlatformOf returns the PlatformInfo attached to k, if any.
func PlatformOf(k StopKind) *PlatformInfo {
	switch v := k.(type) {
	case Departure:
		return v.Platform
	case Arrival:
		return v.Platform
	case StopShort:
		return v.Platform
	case StopLong:
		return v.Platform
	default:
		return nil
	}
}

// IsWaypoint reports whether k is the Waypoint variant.
func IsWaypoint(k StopKind) bool {
	_, ok := k.(Waypoint)
	return ok
}
