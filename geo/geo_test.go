package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStations(t *testing.T) {
	raw := []byte(`{"payload":[
		{"code":"UT","namen":{"lang":"Utrecht Centraal"},"lat":52.089,"lng":5.11,"stationType":"MEGA_STATION"},
		{"code":"amf","namen":{"lang":"Amersfoort Centraal"},"lat":52.154,"lng":5.37,"stationType":"MEDIUM_STATION"}
	]}`)

	stations, err := ParseStations(raw)
	require.NoError(t, err)
	require.Len(t, stations, 2)
	require.Equal(t, "ut", stations[0].Code)
	require.Equal(t, RankMega, stations[0].Rank)
	require.Equal(t, "amf", stations[1].Code)
	require.Equal(t, RankMedium, stations[1].Rank)
}

func TestParseStationsRejectsUnknownType(t *testing.T) {
	raw := []byte(`{"payload":[{"code":"ut","namen":{"lang":"x"},"lat":0,"lng":0,"stationType":"BOGUS"}]}`)
	_, err := ParseStations(raw)
	require.Error(t, err)
}

func TestParseLinksComputesCumulativeDistance(t *testing.T) {
	raw := []byte(`{"payload":{"features":[
		{"geometry":{"coordinates":[[5.11,52.089],[5.37,52.154]]},"properties":{"from":"UT","to":"amf"}}
	]}}`)

	links, err := ParseLinks(raw)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "ut", links[0].From)
	require.Equal(t, "amf", links[0].To)
	require.Len(t, links[0].Path, 2)
	require.Equal(t, float64(0), links[0].Path[0].CumulativeDistKM)
	require.Greater(t, links[0].Path[1].CumulativeDistKM, 0.0)
}

func TestLinkKeyIsUndirected(t *testing.T) {
	require.Equal(t, LinkKey("ut", "amf"), LinkKey("amf", "ut"))
}

func TestIndexHasLinkIsUndirected(t *testing.T) {
	links := []Link{{From: "ut", To: "amf"}}
	idx := NewIndex(nil, links)
	require.True(t, idx.HasLink("ut", "amf"))
	require.True(t, idx.HasLink("amf", "ut"))
	require.False(t, idx.HasLink("ut", "rtd"))
}
