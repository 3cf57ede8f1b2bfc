package httpapi

import (
	"errors"
	"time"

	"github.com/treinplanner/iffserver/interner"
	"github.com/treinplanner/iffserver/repository"
	"github.com/treinplanner/iffserver/ride"
	"github.com/treinplanner/iffserver/routeplanner"
)

var (
	errShortOrEmptyParam = errors.New("parameter must not be empty")
	errParamTooLong      = errors.New("parameter exceeds 50 characters")
	errUnknownStation    = errors.New("parameter is not a known station code")
)

// findRouteResponse is the wire shape of /api/find_route.
type findRouteResponse struct {
	Trips []routeplanner.UpstreamTrip `json:"trips"`
	Rides []RideJSON                  `json:"rides"`
}

func mapUpstream(resp routeplanner.UpstreamResponse, repo *repository.Repository, today time.Time) routeplanner.MappedResult {
	return routeplanner.Map(resp, repo, today)
}

func toRideJSONs(rides []ride.Ride, in *interner.Interner) []RideJSON {
	out := make([]RideJSON, 0, len(rides))
	for _, rd := range rides {
		out = append(out, toRideJSON(rd, in))
	}
	return out
}
