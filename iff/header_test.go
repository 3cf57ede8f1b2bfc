package iff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderLine(t *testing.T) {
	h, err := parseHeaderLine("@00100,01012024,31122024,0007,NS jaardienst 2024")
	require.NoError(t, err)

	require.Equal(t, uint64(100), h.CompanyID)
	require.Equal(t, uint64(7), h.Version)
	require.Equal(t, "NS jaardienst 2024", h.Description)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), h.FirstValidDate)
	require.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), h.LastValidDate)
}

func TestParseHeaderLineRejectsMissingAt(t *testing.T) {
	_, err := parseHeaderLine("100,01012024,31122024,7,desc")
	require.Error(t, err)
}

func TestParseHeaderLineRejectsWrongFieldCount(t *testing.T) {
	_, err := parseHeaderLine("@100,01012024,31122024,7")
	require.Error(t, err)
}
