package iff

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FootnoteMap holds every footnote's day bit-vector, keyed by
// footnote id. Bit 0 corresponds to the delivery's first_valid_date;
// the vector's length equals the inclusive day count of the validity
// window.
type FootnoteMap map[uint64][]bool

// ParseFootnotes parses the full contents of a decoded footnote.dat
// member.
func ParseFootnotes(content string) (Header, FootnoteMap, error) {
	s := newLineScanner(content)

	header, err := parseHeader(s)
	if err != nil {
		return Header{}, nil, errors.Wrap(err, "iff: footnote header")
	}

	validDays := int(header.LastValidDate.Sub(header.FirstValidDate)/(24*time.Hour)) + 1
	if validDays < 1 {
		return Header{}, nil, errors.Errorf("iff: footnote header validity window is empty or inverted (%d days)", validDays)
	}

	footnotes := FootnoteMap{}

	for !s.atEnd() {
		idLine, _ := s.next()
		if !strings.HasPrefix(idLine, "#") {
			return Header{}, nil, errors.Errorf("iff: line %d: expected footnote id '#...', got %q", s.lineNumber(), idLine)
		}
		id, err := parseLeadingUint(strings.TrimPrefix(idLine, "#"))
		if err != nil {
			return Header{}, nil, errors.Wrap(err, "footnote id")
		}

		bitsLine, ok := s.next()
		if !ok {
			return Header{}, nil, errors.Errorf("footnote %d: missing bit-vector line", id)
		}

		bits, err := parseBitVector(bitsLine)
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "footnote %d: bit-vector", id)
		}
		if len(bits) != validDays {
			return Header{}, nil, errors.Errorf("footnote %d: bit-vector length %d does not match validity window of %d days", id, len(bits), validDays)
		}

		footnotes[id] = bits
	}

	return header, footnotes, nil
}

func parseBitVector(line string) ([]bool, error) {
	bits := make([]bool, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return nil, errors.Errorf("bit-vector byte %d is %q, want '0' or '1'", i, string(line[i]))
		}
	}
	return bits, nil
}
