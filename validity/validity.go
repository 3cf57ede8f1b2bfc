// Package validity resolves footnote day-validity bit-vectors against
// calendar dates.
package validity

import (
	"time"

	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/iff"
)

// ErrOutOfRange is returned when a queried date falls outside the
// delivery's validity window. Callers at the query surface treat this
// (and ErrUnknownFootnote) as a plain "not valid" rather than an
// error — see Engine.IsValidOnDay.
var ErrOutOfRange = errors.New("validity: date outside delivery validity window")

// ErrUnknownFootnote is returned when the footnote id has no entry in
// the engine.
var ErrUnknownFootnote = errors.New("validity: unknown footnote id")

// Engine answers "is footnote F valid on date D" queries against a
// single delivery's validity window and footnote bit-vectors.
type Engine struct {
	firstValidDate time.Time
	lastValidDate  time.Time
	footnotes      iff.FootnoteMap
}

// NewEngine builds an Engine from a delivery header's validity window
// and the parsed footnote.dat contents.
func NewEngine(firstValidDate, lastValidDate time.Time, footnotes iff.FootnoteMap) *Engine {
	return &Engine{
		firstValidDate: firstValidDate,
		lastValidDate:  lastValidDate,
		footnotes:      footnotes,
	}
}

// civilDate strips date to a zone-free UTC midnight, so day-index
// arithmetic depends only on the calendar date (matching the original
// source's tz-free NaiveDate) and never on the zone the caller's
// time.Time happens to carry.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Check returns the bit-vector value for footnote id on date, or one
// of ErrOutOfRange / ErrUnknownFootnote.
func (e *Engine) Check(footnoteID uint64, date time.Time) (bool, error) {
	first := civilDate(e.firstValidDate)
	last := civilDate(e.lastValidDate)
	day := civilDate(date)

	if day.Before(first) || day.After(last) {
		return false, ErrOutOfRange
	}

	bits, ok := e.footnotes[footnoteID]
	if !ok {
		return false, ErrUnknownFootnote
	}

	idx := int(day.Sub(first) / (24 * time.Hour))
	if idx < 0 || idx >= len(bits) {
		return false, ErrOutOfRange
	}

	return bits[idx], nil
}

// IsValidOnDay is the query-surface form of Check: any error (out of
// range or unknown footnote) reads as simply "not valid today" rather
// than propagating to the HTTP layer.
func (e *Engine) IsValidOnDay(footnoteID uint64, date time.Time) bool {
	valid, err := e.Check(footnoteID, date)
	if err != nil {
		return false
	}
	return valid
}
