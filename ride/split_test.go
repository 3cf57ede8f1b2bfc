package ride

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
)

func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func recordSplitFixtureContent() string {
	return crlf(
		"@100,01012024,31122024,1,desc",
		"#00000001",
		"%100,02871,      ,001,004,",
		"%100,01771,      ,004,005,",
		"-000003,001,016",
		"&IC ,001,005",
		">rtd,1850",
		";rtn",
		".rta,1858",
		";cps",
		";nwk",
		"+gd,1908,1909",
		";gdg",
		";wd",
		";vtn",
		";utt",
		";utlr",
		"+ut,1928,1936",
		";uto",
		";bhv",
		";dld",
		"<amf,1950",
	)
}

func TestSplitRecordFixture(t *testing.T) {
	in := interner.New()
	_, records, warnings := iff.ParseTimetable(recordSplitFixtureContent(), in)
	require.Empty(t, warnings)
	require.Len(t, records, 1)

	rides, err := SplitRecord(records[0])
	require.NoError(t, err)
	require.Len(t, rides, 2)

	first, second := rides[0], rides[1]

	require.Equal(t, "2871", first.ID)
	require.Equal(t, "1771", second.ID)
	require.Equal(t, uint32(100), first.Operator)
	require.Equal(t, uint64(3), first.DayValidity)
	require.Equal(t, uint64(3), second.DayValidity)
	require.Equal(t, "IC", first.TransitMode)
	require.Equal(t, "IC", second.TransitMode)

	require.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	require.Equal(t, "1771", *first.Next)

	require.NotNil(t, second.Previous)
	require.Equal(t, "2871", *second.Previous)
	require.Nil(t, second.Next)

	require.Equal(t, "19:28", first.EndTime.TimetableString())
	require.Equal(t, "19:36", second.StartTime.TimetableString())
	require.Equal(t, "18:50", first.StartTime.TimetableString())
	require.Equal(t, "19:50", second.EndTime.TimetableString())

	lastLegFirst := first.Legs[len(first.Legs)-1]
	stationary, ok := lastLegFirst.(Stationary)
	require.True(t, ok)
	require.Equal(t, StopTypeArrival, stationary.StopType)
	require.Equal(t, "ut", in.Resolve(stationary.Station))

	firstLegSecond := second.Legs[0]
	stationary2, ok := firstLegSecond.(Stationary)
	require.True(t, ok)
	require.Equal(t, StopTypeDeparture, stationary2.StopType)
	require.Equal(t, "ut", in.Resolve(stationary2.Station))
}

func TestSplitRecordNoRideIDsYieldsNoRides(t *testing.T) {
	in := interner.New()
	content := crlf(
		"@100,01012024,31122024,1,desc",
		"#00000002",
		"-000003,001,002",
		"&IC ,001,002",
		">rtd,1850",
		"<amf,1950",
	)
	_, records, warnings := iff.ParseTimetable(content, in)
	require.Empty(t, warnings)

	rides, err := SplitRecord(records[0])
	require.NoError(t, err)
	require.Empty(t, rides)
}
