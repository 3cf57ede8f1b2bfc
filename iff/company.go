package iff

import (
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"
)

// companyRow is the positional record shape of one company.dat line:
// ID,CODE,NAME,HHMM. gocsv's header-less unmarshaller maps columns by
// struct field order, so the csv tags here are documentation only.
type companyRow struct {
	ID             string `csv:"id"`
	Code           string `csv:"code"`
	Name           string `csv:"name"`
	EndOfTimetable string `csv:"end_of_timetable"`
}

// ParseCompanies parses the full contents of a decoded company.dat
// member.
func ParseCompanies(content string) (Header, []Company, error) {
	s := newLineScanner(content)

	header, err := parseHeader(s)
	if err != nil {
		return Header{}, nil, errors.Wrap(err, "iff: company header")
	}

	var rest []string
	for !s.atEnd() {
		line, _ := s.next()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rest = append(rest, line)
	}

	var rows []companyRow
	reader := bom.NewReader(strings.NewReader(strings.Join(rest, "\n")))
	if err := gocsv.UnmarshalWithoutHeaders(reader, &rows); err != nil {
		return Header{}, nil, errors.Wrap(err, "iff: parsing company rows")
	}

	companies := make([]Company, 0, len(rows))
	for _, row := range rows {
		id, err := parseLeadingUint(row.ID)
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "company row %q: id", row.ID)
		}

		minutes, err := parseHHMMMinutes(row.EndOfTimetable)
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "company row %q: end-of-timetable", row.ID)
		}

		companies = append(companies, Company{
			ID:             id,
			Code:           strings.TrimSpace(row.Code),
			Name:           strings.TrimSpace(row.Name),
			EndOfTimetable: minutes,
		})
	}

	return header, companies, nil
}

func parseHHMMMinutes(s string) (uint32, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != 4 {
		return 0, errors.Errorf("expected 4-digit HHMM, got %q", s)
	}
	hours, err := strconv.Atoi(trimmed[:2])
	if err != nil {
		return 0, errors.Wrap(err, "hours")
	}
	minutes, err := strconv.Atoi(trimmed[2:])
	if err != nil {
		return 0, errors.Wrap(err, "minutes")
	}
	if minutes >= 60 {
		return 0, errors.Errorf("minutes component %d out of range", minutes)
	}
	return uint32(hours*60 + minutes), nil
}
