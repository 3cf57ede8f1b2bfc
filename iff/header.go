package iff

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const deliveryDateLayout = "02012006"

// parseHeader reads the mandatory "@..." header line every IFF member
// begins with.
func parseHeader(s *lineScanner) (Header, error) {
	line, ok := s.next()
	if !ok {
		return Header{}, errors.New("iff: expected header line, found end of file")
	}

	return parseHeaderLine(line)
}

func parseHeaderLine(line string) (Header, error) {
	if !strings.HasPrefix(line, "@") {
		return Header{}, errors.Errorf("iff: header line %q does not start with '@'", line)
	}

	fields := strings.SplitN(line[1:], ",", 5)
	if len(fields) != 5 {
		return Header{}, errors.Errorf("iff: header line %q does not have 5 fields", line)
	}

	companyID, err := parseLeadingUint(fields[0])
	if err != nil {
		return Header{}, errors.Wrap(err, "iff: header company id")
	}

	firstValid, err := parseDDMMYYYY(fields[1])
	if err != nil {
		return Header{}, errors.Wrap(err, "iff: header first valid date")
	}

	lastValid, err := parseDDMMYYYY(fields[2])
	if err != nil {
		return Header{}, errors.Wrap(err, "iff: header last valid date")
	}

	version, err := parseLeadingUint(fields[3])
	if err != nil {
		return Header{}, errors.Wrap(err, "iff: header version")
	}

	return Header{
		CompanyID:      companyID,
		FirstValidDate: firstValid,
		LastValidDate:  lastValid,
		Version:        version,
		Description:    fields[4],
	}, nil
}

func parseDDMMYYYY(s string) (time.Time, error) {
	t, err := time.Parse(deliveryDateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing date %q", s)
	}
	return t, nil
}

// parseLeadingUint parses a decimal field that may carry leading
// zeros, treating an all-blank or empty field as zero.
func parseLeadingUint(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing integer field %q", s)
	}
	return v, nil
}

// ProbeVersion reads only the delivery header of archivePath and
// returns its version field, so a caller deciding whether a freshly
// fetched archive supersedes a cached one doesn't need to parse the
// (much larger) timetable file first.
func ProbeVersion(archivePath string) (uint64, error) {
	content, err := readMember(archivePath, deliveryFileName)
	if err != nil {
		return 0, err
	}

	s := newLineScanner(content)
	header, err := parseHeader(s)
	if err != nil {
		return 0, errors.Wrap(err, "probing delivery version")
	}

	return header.Version, nil
}
