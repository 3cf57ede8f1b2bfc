package iff

import (
	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/interner"
)

// IngestionError wraps a failure that aborts ingestion entirely:
// an unreadable archive, a missing member, or a header/grammar-level
// parse failure. It is always fatal to the caller.
type IngestionError struct {
	cause error
}

func newIngestionError(cause error) *IngestionError {
	return &IngestionError{cause: cause}
}

func (e *IngestionError) Error() string {
	return "iff ingestion failed: " + e.cause.Error()
}

func (e *IngestionError) Unwrap() error {
	return e.cause
}

// Archive is the parsed result of a whole timetable delivery: the
// shared header plus the contents of its four members. RecordWarnings
// holds per-record parse failures that were skipped rather than
// aborting the whole ingestion.
type Archive struct {
	Header         Header
	Records        []Record
	Footnotes      FootnoteMap
	Companies      []Company
	RecordWarnings []error
}

// ParseArchive reads and parses every member of the IFF archive at
// archivePath, producing a complete Archive. A malformed individual
// timetable record is recorded in RecordWarnings and skipped; any
// other failure (unreadable archive, missing member, malformed
// header, malformed footnote or company data) is fatal and returned
// as an *IngestionError.
func ParseArchive(archivePath string, in *interner.Interner) (Archive, error) {
	deliveryContent, err := readMember(archivePath, deliveryFileName)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}
	deliveryHeader, err := parseHeaderLine(firstLine(deliveryContent))
	if err != nil {
		return Archive{}, newIngestionError(errors.Wrap(err, "delivery header"))
	}

	timetableContent, err := readMember(archivePath, timetableFileName)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}
	_, records, warnings := ParseTimetable(timetableContent, in)
	if len(records) == 0 && len(warnings) > 0 {
		return Archive{}, newIngestionError(errors.Wrap(warnings[0], "timetable contained no usable records"))
	}

	footnoteContent, err := readMember(archivePath, footnoteFileName)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}
	_, footnotes, err := ParseFootnotes(footnoteContent)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}

	companyContent, err := readMember(archivePath, companyFileName)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}
	_, companies, err := ParseCompanies(companyContent)
	if err != nil {
		return Archive{}, newIngestionError(err)
	}

	return Archive{
		Header:         deliveryHeader,
		Records:        records,
		Footnotes:      footnotes,
		Companies:      companies,
		RecordWarnings: warnings,
	}, nil
}

func firstLine(content string) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' || content[i] == '\n' {
			return content[:i]
		}
	}
	return content
}
