package httpapi

import (
	"context"

	"github.com/treinplanner/iffserver/routeplanner"
)

// UpstreamPlanner fetches a route-planner response for a from/to
// station pair. Its one implementation makes an HTTP call to the NS
// trip-advice API; tests supply a fake.
type UpstreamPlanner interface {
	PlanRoute(ctx context.Context, from, to string) (routeplanner.UpstreamResponse, error)

	// Enabled reports whether the planner is configured to serve
	// requests. /api/find_route is disabled with a 503 when false —
	// the NS trip-advice client reports false when no NS_API_KEY was
	// configured.
	Enabled() bool
}
