package iff

import (
	"time"

	"github.com/treinplanner/iffserver/interner"
)

// TimetableEntry is one stop in a raw record's timetable, as parsed
// directly from the IFF file (before ride-splitting and endpoint
// normalization).
type TimetableEntry struct {
	Location interner.Handle
	StopKind StopKind
}

// TransitMode names the service category ("IC", "SPR", ...) that
// applies to a 1-indexed, non-waypoint-counted range of stops within
// a record.
type TransitMode struct {
	ModeCode     string
	FirstStopIdx uint32
	LastStopIdx  uint32
}

// RideID is a single ride-id sub-journey descriptor: one Record may
// carry several of these, each describing a distinct ride number that
// shares the record's physical timetable.
type RideID struct {
	CompanyID    uint32
	RideNumber   uint32
	LineID       *uint32
	FirstStopIdx uint32
	LastStopIdx  uint32
	RideName     *string
}

// Record is one raw "#"-delimited entry from the timetable file.
type Record struct {
	ID                  uint64
	Timetable           []TimetableEntry
	RideIDs             []RideID
	DayValidityFootnote uint64
	TransitTypes        []TransitMode
}

// Header is the delivery metadata shared by all four IFF members.
type Header struct {
	CompanyID      uint64
	FirstValidDate time.Time
	LastValidDate  time.Time
	Version        uint64
	Description    string
}

// Company describes one operator as listed in company.dat.
type Company struct {
	ID             uint64 `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	EndOfTimetable uint32 `json:"endOfTimetable"` // minutes from midnight, see dayoffset.DayOffset
}
