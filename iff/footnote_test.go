package iff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// footnoteValidityFixtureContent reproduces the worked "footnote
// validity" fixture: a 7-day window, footnote 5 valid on alternating
// days starting with day 0.
func footnoteValidityFixtureContent() string {
	return crlf(
		"@100,01012024,07012024,1,desc",
		"#00000005",
		"1010101",
	)
}

func TestParseFootnotesFixture(t *testing.T) {
	header, footnotes, err := ParseFootnotes(footnoteValidityFixtureContent())
	require.NoError(t, err)
	require.Equal(t, uint64(100), header.CompanyID)

	bits, ok := footnotes[5]
	require.True(t, ok)
	require.Equal(t, []bool{true, false, true, false, true, false, true}, bits)
}

func TestParseFootnotesRejectsBadBit(t *testing.T) {
	content := crlf(
		"@100,01012024,07012024,1,desc",
		"#00000005",
		"10x0101",
	)
	_, _, err := ParseFootnotes(content)
	require.Error(t, err)
}

func TestParseFootnotesRejectsLengthMismatch(t *testing.T) {
	content := crlf(
		"@100,01012024,07012024,1,desc",
		"#00000005",
		"101",
	)
	_, _, err := ParseFootnotes(content)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match validity window")
}
