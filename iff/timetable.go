package iff

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/dayoffset"
	"github.com/treinplanner/iffserver/interner"
)

// ParseTimetable parses the full contents of a decoded timetbls.dat
// member into its header and records. A malformed individual record,
// or a line outside any record that doesn't start with '#', is
// returned as a warning and skipped rather than aborting the whole
// parse. A malformed header stops the parse: it is returned as the
// only warning, with no records.
func ParseTimetable(content string, in *interner.Interner) (Header, []Record, []error) {
	s := newLineScanner(content)

	header, err := parseHeader(s)
	if err != nil {
		return Header{}, nil, []error{errors.Wrap(err, "iff: timetable header")}
	}

	var records []Record
	var warnings []error

	for !s.atEnd() {
		line, _ := s.peek()
		if !strings.HasPrefix(line, "#") {
			warnings = append(warnings, errors.Errorf("iff: line %d: expected record start '#...', got %q", s.lineNumber(), line))
			s.next()
			continue
		}

		rec, err := parseRecord(s, in)
		if err != nil {
			warnings = append(warnings, errors.Wrapf(err, "iff: record starting at line %d", s.lineNumber()))
			continue
		}
		records = append(records, rec)
	}

	return header, records, warnings
}

func parseRecord(s *lineScanner, in *interner.Interner) (Record, error) {
	idLine, _ := s.next()
	id, err := parseLeadingUint(strings.TrimPrefix(idLine, "#"))
	if err != nil {
		return Record{}, errors.Wrap(err, "record id")
	}

	var rideIDs []RideID
	for {
		line, ok := s.peek()
		if !ok || !strings.HasPrefix(line, "%") {
			break
		}
		s.next()
		rideID, err := parseRideID(line)
		if err != nil {
			return Record{}, errors.Wrap(err, "ride-id line")
		}
		rideIDs = append(rideIDs, rideID)
	}

	footnoteLine, ok := s.next()
	if !ok || !strings.HasPrefix(footnoteLine, "-") {
		return Record{}, errors.Errorf("record %d: expected day-footnote line '-...'", id)
	}
	footnote, err := parseDayFootnoteLine(footnoteLine)
	if err != nil {
		return Record{}, errors.Wrap(err, "day-footnote line")
	}

	skipAttributeLinesUntil(s, "&")

	var transitTypes []TransitMode
	for {
		line, ok := s.peek()
		if !ok || !strings.HasPrefix(line, "&") {
			break
		}
		s.next()
		mode, err := parseTransitMode(line)
		if err != nil {
			return Record{}, errors.Wrap(err, "transit-mode line")
		}
		transitTypes = append(transitTypes, mode)
	}
	if len(transitTypes) == 0 {
		return Record{}, errors.Errorf("record %d: no transit-mode line", id)
	}

	skipAttributeLinesUntil(s, ">")

	rawEntries, err := parseStopLines(s)
	if err != nil {
		return Record{}, errors.Wrapf(err, "record %d: stop lines", id)
	}

	timetable := internTimetable(rawEntries, in)

	return Record{
		ID:                  id,
		Timetable:           timetable,
		RideIDs:             rideIDs,
		DayValidityFootnote: footnote,
		TransitTypes:        transitTypes,
	}, nil
}

func internTimetable(raw []rawStopEntry, in *interner.Interner) []TimetableEntry {
	entries := make([]TimetableEntry, len(raw))
	for i, r := range raw {
		entries[i] = TimetableEntry{
			Location: in.Intern(strings.ToLower(r.code)),
			StopKind: r.stopKind,
		}
	}
	return entries
}

// skipAttributeLinesUntil consumes lines that aren't the start of the
// next known section, leaving the scanner positioned right before it.
// It stops at end of input too, so a missing mandatory section is
// reported by its own caller instead of silently consuming to EOF.
func skipAttributeLinesUntil(s *lineScanner, marker string) {
	for {
		line, ok := s.peek()
		if !ok {
			return
		}
		if strings.HasPrefix(line, marker) || strings.HasPrefix(line, "#") {
			return
		}
		s.next()
	}
}

func parseRideID(line string) (RideID, error) {
	fields := strings.SplitN(strings.TrimPrefix(line, "%"), ",", 6)
	if len(fields) < 5 {
		return RideID{}, errors.Errorf("ride-id line %q does not have at least 5 fields", line)
	}

	companyID, err := parseLeadingUint(fields[0])
	if err != nil {
		return RideID{}, errors.Wrap(err, "ride-id company")
	}
	rideNumber, err := parseLeadingUint(fields[1])
	if err != nil {
		return RideID{}, errors.Wrap(err, "ride-id number")
	}

	var lineID *uint32
	if strings.TrimSpace(fields[2]) != "" {
		v, err := parseLeadingUint(fields[2])
		if err != nil {
			return RideID{}, errors.Wrap(err, "ride-id line id")
		}
		v32 := uint32(v)
		lineID = &v32
	}

	first, err := parseLeadingUint(fields[3])
	if err != nil {
		return RideID{}, errors.Wrap(err, "ride-id first-stop index")
	}
	last, err := parseLeadingUint(fields[4])
	if err != nil {
		return RideID{}, errors.Wrap(err, "ride-id last-stop index")
	}

	var rideName *string
	if len(fields) == 6 {
		if name := strings.TrimRight(fields[5], " "); name != "" {
			rideName = &name
		}
	}

	return RideID{
		CompanyID:    uint32(companyID),
		RideNumber:   uint32(rideNumber),
		LineID:       lineID,
		FirstStopIdx: uint32(first),
		LastStopIdx:  uint32(last),
		RideName:     rideName,
	}, nil
}

func parseDayFootnoteLine(line string) (uint64, error) {
	fields := strings.SplitN(strings.TrimPrefix(line, "-"), ",", 3)
	if len(fields) != 3 {
		return 0, errors.Errorf("day-footnote line %q does not have 3 fields", line)
	}
	return parseLeadingUint(fields[0])
}

func parseTransitMode(line string) (TransitMode, error) {
	fields := strings.SplitN(strings.TrimPrefix(line, "&"), ",", 3)
	if len(fields) != 3 {
		return TransitMode{}, errors.Errorf("transit-mode line %q does not have 3 fields", line)
	}
	first, err := parseLeadingUint(fields[1])
	if err != nil {
		return TransitMode{}, errors.Wrap(err, "transit-mode first-stop index")
	}
	last, err := parseLeadingUint(fields[2])
	if err != nil {
		return TransitMode{}, errors.Wrap(err, "transit-mode last-stop index")
	}
	return TransitMode{
		ModeCode:     strings.TrimSpace(fields[0]),
		FirstStopIdx: uint32(first),
		LastStopIdx:  uint32(last),
	}, nil
}

// rawStopEntry is parseStopLines' intermediate form: the location is
// still a string code, not yet resolved against the interner.
type rawStopEntry struct {
	code     string
	stopKind StopKind
}

func parseStopLines(s *lineScanner) ([]rawStopEntry, error) {
	var entries []rawStopEntry

	for {
		line, ok := s.peek()
		if !ok || strings.HasPrefix(line, "#") {
			break
		}
		s.next()

		if line == "" {
			continue
		}

		kind := line[0]
		rest := line[1:]

		code, stopKind, err := parseStopLine(kind, rest)
		if err != nil {
			return nil, err
		}

		platform := maybeParsePlatformLine(s)
		attachPlatform(&stopKind, platform)

		entries = append(entries, rawStopEntry{code: code, stopKind: stopKind})
	}

	if len(entries) == 0 {
		return nil, errors.New("record has no stop lines")
	}

	return entries, nil
}

func parseStopLine(kind byte, rest string) (string, StopKind, error) {
	switch kind {
	case '>':
		code, t, err := parseCodeAndTime(rest)
		if err != nil {
			return "", nil, err
		}
		return code, Departure{Depart: t}, nil
	case ';':
		return strings.TrimSpace(rest), Waypoint{}, nil
	case '.':
		code, t, err := parseCodeAndTime(rest)
		if err != nil {
			return "", nil, err
		}
		return code, StopShort{At: t}, nil
	case '+':
		fields := strings.SplitN(rest, ",", 3)
		if len(fields) != 3 {
			return "", nil, errors.Errorf("long-stop line %q does not have 3 fields", rest)
		}
		arrive, err := dayoffset.Parse(fields[1])
		if err != nil {
			return "", nil, errors.Wrap(err, "long-stop arrival time")
		}
		depart, err := dayoffset.Parse(fields[2])
		if err != nil {
			return "", nil, errors.Wrap(err, "long-stop departure time")
		}
		return strings.TrimSpace(fields[0]), StopLong{Arrive: arrive, Depart: depart}, nil
	case '<':
		code, t, err := parseCodeAndTime(rest)
		if err != nil {
			return "", nil, err
		}
		return code, Arrival{Arrive: t}, nil
	default:
		return "", nil, errors.Errorf("unrecognized stop-line discriminator %q", string(kind))
	}
}

func parseCodeAndTime(rest string) (string, dayoffset.DayOffset, error) {
	fields := strings.SplitN(rest, ",", 2)
	if len(fields) != 2 {
		return "", dayoffset.DayOffset{}, errors.Errorf("stop line %q does not have code,time", rest)
	}
	t, err := dayoffset.Parse(fields[1])
	if err != nil {
		return "", dayoffset.DayOffset{}, errors.Wrap(err, "stop time")
	}
	return strings.TrimSpace(fields[0]), t, nil
}

func maybeParsePlatformLine(s *lineScanner) *PlatformInfo {
	line, ok := s.peek()
	if !ok || !strings.HasPrefix(line, "?") {
		return nil
	}
	s.next()

	fields := strings.SplitN(strings.TrimPrefix(line, "?"), ",", 3)
	if len(fields) != 3 {
		return nil
	}

	info := &PlatformInfo{}
	if arr, err := ParsePlatform(fields[0]); err == nil {
		info.ArrivalPlatform = &arr
	}
	if dep, err := ParsePlatform(fields[1]); err == nil {
		info.DeparturePlatform = &dep
	}
	if footnote, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64); err == nil {
		info.FootnoteID = footnote
	}
	return info
}

func attachPlatform(k *StopKind, platform *PlatformInfo) {
	if platform == nil {
		return
	}
	switch v := (*k).(type) {
	case Departure:
		v.Platform = platform
		*k = v
	case Arrival:
		v.Platform = platform
		*k = v
	case StopShort:
		v.Platform = platform
		*k = v
	case StopLong:
		v.Platform = platform
		*k = v
	}
}
