package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/treinplanner/iffserver/dayoffset"
	"github.com/treinplanner/iffserver/geo"
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
		"#00000002",
		"%200,00001,      ,001,002,",
		"-000004,001,002",
		"&SPR,001,002",
		">xx,0700",
		"<amf,0710",
	)
}

var knownStationCodes = []string{
	"rtd", "rtn", "rta", "cps", "nwk", "gd", "gdg", "wd", "vtn",
	"utt", "utlr", "ut", "uto", "bhv", "dld", "amf",
}

var knownLinkPairs = [][2]string{
	{"rtd", "rta"}, {"rta", "gd"}, {"gd", "ut"}, {"ut", "amf"},
}

func buildTestGeoIndex() *geo.Index {
	stations := make([]geo.Station, 0, len(knownStationCodes))
	for _, code := range knownStationCodes {
		stations = append(stations, geo.Station{Code: code, Name: strings.ToUpper(code), Rank: geo.RankMedium})
	}

	links := make([]geo.Link, 0, len(knownLinkPairs))
	for _, pair := range knownLinkPairs {
		links = append(links, geo.Link{From: pair[0], To: pair[1]})
	}

	return geo.NewIndex(stations, links)
}

func buildTestRepository(t *testing.T) *Repository {
	t.Helper()

	in := interner.New()
	header, records, warnings := iff.ParseTimetable(recordSplitFixtureContent(), in)
	require.Empty(t, warnings)
	require.Len(t, records, 2)

	footnotes := iff.FootnoteMap{
		3: mustBits("1111111"),
		4: mustBits("1111111"),
	}

	archive := iff.Archive{
		Header: iff.Header{
			CompanyID:      header.CompanyID,
			FirstValidDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			LastValidDate:  time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		},
		Records:   records,
		Footnotes: footnotes,
	}

	repo, err := New(archive, in, buildTestGeoIndex())
	require.NoError(t, err)
	return repo
}

func mustBits(s string) []bool {
	bits := make([]bool, len(s))
	for i, c := range s {
		bits[i] = c == '1'
	}
	return bits
}

func TestUnknownLegFilterDropsRecordReferencingUnknownStation(t *testing.T) {
	repo := buildTestRepository(t)

	for _, rd := range repo.Rides() {
		require.NotEqual(t, "1", rd.ID, "the ride from the xx-referencing record must have been dropped")
	}
	require.Len(t, repo.Rides(), 2)
}

func TestActiveRidesAtFixture(t *testing.T) {
	repo := buildTestRepository(t)
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	at1915, err := dayoffset.Parse("1915")
	require.NoError(t, err)

	active := repo.ActiveRidesAt(at1915, date)
	var ids []string
	for _, rd := range active {
		ids = append(ids, rd.ID)
	}
	require.Contains(t, ids, "2871")
	require.NotContains(t, ids, "1771")
}

func TestActiveRidesInTimespanFixture(t *testing.T) {
	repo := buildTestRepository(t)
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	start, err := dayoffset.Parse("1900")
	require.NoError(t, err)
	end, err := dayoffset.Parse("2100")
	require.NoError(t, err)

	active := repo.ActiveRidesInTimespan(start, end, date)
	var ids []string
	for _, rd := range active {
		ids = append(ids, rd.ID)
	}
	require.Contains(t, ids, "2871")
	require.Contains(t, ids, "1771")
}
