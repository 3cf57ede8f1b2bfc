// Package ride implements the ride-splitting and leg-generation
// algorithm: turning one parsed iff.Record into zero or more
// independently queryable Rides.
package ride

import (
	"github.com/treinplanner/iffserver/dayoffset"
	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
)

// StopType is the wire-facing classification of a Stationary leg's
// underlying stop kind. Moving legs carry no StopType.
type StopType int

const (
	StopTypeWaypoint StopType = iota + 1
	StopTypeShort
	StopTypeLong
	StopTypeDeparture
	StopTypeArrival
)

// Leg is the closed set of presentation units a Ride decomposes into:
// either stationary at a location or moving between two, through zero
// or more waypoints.
type Leg interface {
	leg()
}

// Stationary is time spent at a single location.
type Stationary struct {
	Station  interner.Handle
	Start    dayoffset.DayOffset
	End      dayoffset.DayOffset
	StopType StopType
	Platform *iff.PlatformInfo
}

func (Stationary) leg() {}

// Moving is the transit between two consecutive non-waypoint stops,
// passing through zero or more interior waypoints.
type Moving struct {
	From      interner.Handle
	To        interner.Handle
	Waypoints []interner.Handle
	Start     dayoffset.DayOffset
	End       dayoffset.DayOffset
}

func (Moving) leg() {}

// Ride is one contiguous journey under a single ride number, derived
// by splitting a multi-ride-id Record. Previous/Next are modeled as
// value-typed ride-number strings rather than pointers: a consumer
// that wants the neighbor object performs a second lookup, which
// avoids shared-ownership cycles entirely.
type Ride struct {
	ID          string
	Operator    uint32
	LineID      *uint32
	RideName    *string
	TransitMode string
	DayValidity uint64
	Previous    *string
	Next        *string
	Legs        []Leg
	StartTime   dayoffset.DayOffset
	EndTime     dayoffset.DayOffset
}
