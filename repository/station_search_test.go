package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStationByCodeExactLookupIsCaseInsensitive(t *testing.T) {
	repo := buildTestRepository(t)

	station, ok := repo.StationByCode("RTD")
	require.True(t, ok)
	require.Equal(t, "rtd", station.Code)

	_, ok = repo.StationByCode("zzzzz")
	require.False(t, ok)
}

func TestSelectStationByNameExactMatch(t *testing.T) {
	repo := buildTestRepository(t)

	station, candidates, ok := repo.SelectStationByName("utlr")
	require.True(t, ok)
	require.Equal(t, "utlr", station.Code)
	require.Len(t, candidates, 1)
}

func TestSelectStationByNameUniqueSubstringMatch(t *testing.T) {
	repo := buildTestRepository(t)

	station, candidates, ok := repo.SelectStationByName("lr")
	require.True(t, ok)
	require.Equal(t, "utlr", station.Code)
	require.Len(t, candidates, 1)
}

func TestSelectStationByNameAmbiguousSubstringReturnsOneOfMany(t *testing.T) {
	repo := buildTestRepository(t)

	station, candidates, ok := repo.SelectStationByName("d")
	require.True(t, ok)
	require.GreaterOrEqual(t, len(candidates), 2)
	require.Contains(t, []string{"rtd", "gd", "gdg", "wd", "dld"}, station.Code)
}

func TestSelectStationByNameNoMatch(t *testing.T) {
	repo := buildTestRepository(t)

	_, candidates, ok := repo.SelectStationByName("zzzzz")
	require.False(t, ok)
	require.Nil(t, candidates)
}

func TestSelectStationByNameEmptyNeedle(t *testing.T) {
	repo := buildTestRepository(t)

	_, _, ok := repo.SelectStationByName("   ")
	require.False(t, ok)
}
