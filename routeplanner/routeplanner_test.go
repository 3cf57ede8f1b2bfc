package routeplanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/treinplanner/iffserver/ride"
)

type fakeLookup struct {
	rides map[string]ride.Ride
	valid map[string]bool
}

func (f fakeLookup) RideByID(id string) (ride.Ride, bool) {
	rd, ok := f.rides[id]
	return rd, ok
}

func (f fakeLookup) IsRideValid(rd ride.Ride, date time.Time) bool {
	return f.valid[rd.ID]
}

func strPtr(s string) *string { return &s }

func TestMapDropsMixedTripAndKeepsPureTransitTrip(t *testing.T) {
	resp := UpstreamResponse{
		Trips: []UpstreamTrip{
			{
				Legs: []UpstreamLeg{
					{TravelType: TravelTypeWalk, Origin: Location{Type: LocationTypeAddress}, Destination: Location{Type: LocationTypeStation, StationCode: strPtr("asd")}, Product: Product{Type: ProductTypeWalk}},
					{TravelType: TravelTypePublicTransit, Origin: Location{Type: LocationTypeStation, StationCode: strPtr("asd")}, Destination: Location{Type: LocationTypeStation, StationCode: strPtr("ut")}, Product: Product{Type: ProductTypeTrain, Number: strPtr("2871")}},
				},
			},
			{
				Legs: []UpstreamLeg{
					{TravelType: TravelTypePublicTransit, Origin: Location{Type: LocationTypeStation, StationCode: strPtr("rtd")}, Destination: Location{Type: LocationTypeStation, StationCode: strPtr("ut")}, Product: Product{Type: ProductTypeTrain, Number: strPtr("2871")}},
				},
			},
		},
	}

	lookup := fakeLookup{
		rides: map[string]ride.Ride{"2871": {ID: "2871"}},
		valid: map[string]bool{"2871": true},
	}

	result := Map(resp, lookup, time.Now())
	require.Len(t, result.Trips, 1)
	require.Len(t, result.Rides, 1)
	require.Equal(t, "2871", result.Rides[0].ID)
}

func TestMapExcludesRidesNotValidToday(t *testing.T) {
	resp := UpstreamResponse{
		Trips: []UpstreamTrip{
			{
				Legs: []UpstreamLeg{
					{TravelType: TravelTypePublicTransit, Origin: Location{Type: LocationTypeStation, StationCode: strPtr("rtd")}, Destination: Location{Type: LocationTypeStation, StationCode: strPtr("ut")}, Product: Product{Type: ProductTypeTrain, Number: strPtr("2871")}},
				},
			},
		},
	}

	lookup := fakeLookup{
		rides: map[string]ride.Ride{"2871": {ID: "2871"}},
		valid: map[string]bool{"2871": false},
	}

	result := Map(resp, lookup, time.Now())
	require.Len(t, result.Trips, 1)
	require.Empty(t, result.Rides)
}
