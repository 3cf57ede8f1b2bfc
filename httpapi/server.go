// Package httpapi wires the repository and upstream route planner to
// the documented HTTP surface: a chi router, single-origin CORS, and
// zerolog request logging.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/treinplanner/iffserver/repository"
)

// amsterdamLocation is the "local timetable timezone" every query
// endpoint operates in (§6), matching the original source's hardcoded
// chrono_tz::Europe::Amsterdam. Falls back to UTC if the zoneinfo
// database is unavailable, rather than panicking on a nil Location.
var amsterdamLocation = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		log.Warn().Err(err).Msg("httpapi: could not load Europe/Amsterdam zone, falling back to UTC")
		return time.UTC
	}
	return loc
}()

// Server holds everything a request handler needs: the immutable
// repository (whose stations are also find_route's allow-list), the
// upstream planner client, and the clock that time-dependent queries
// read.
type Server struct {
	repo     *repository.Repository
	upstream UpstreamPlanner
	clock    func() time.Time
}

// NewServer builds a Server. clock defaults to the current time in
// the Europe/Amsterdam zone if nil, so tests can inject a fixed time.
func NewServer(repo *repository.Repository, upstream UpstreamPlanner, clock func() time.Time) *Server {
	if clock == nil {
		clock = func() time.Time { return time.Now().In(amsterdamLocation) }
	}
	return &Server{repo: repo, upstream: upstream, clock: clock}
}

// Router builds the chi router serving every documented endpoint,
// behind a single-origin CORS policy and a recovery middleware that
// turns panics into 5xx responses per the error-handling design.
func (s *Server) Router(corsDomain string) http.Handler {
	r := chi.NewRouter()

	r.Use(zerologMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{corsDomain},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})
	r.Use(c.Handler)

	r.Get("/data/stations.json", s.handleStations)
	r.Get("/data/links.json", s.handleLinks)
	r.Get("/data/location_map.json", s.handleLocationMap)
	r.Get("/data/company_map.json", s.handleCompanyMap)
	r.Get("/api/activerides", s.handleActiveRides)
	r.Get("/api/activerides_timespan", s.handleActiveRidesTimespan)
	r.Get("/api/rides_all", s.handleRidesAll)
	r.Get("/api/find_route", s.handleFindRoute)

	return r
}

// zerologMiddleware logs one structured line per request, grounded in
// the teacher's use of chi's middleware.Logger but emitting through
// zerolog instead of the standard logger.
func zerologMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
