package httpapi

import (
	"net/http"
	"strings"

	"github.com/treinplanner/iffserver/dayoffset"
)

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stationListResponse(s.repo.Geo().Stations()))
}

func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, linkListResponse(s.repo.Geo().Links()))
}

func (s *Server) handleLocationMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.Interner().Codes())
}

func (s *Server) handleCompanyMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, companyListResponse(s.repo.Companies()))
}

func (s *Server) handleActiveRides(w http.ResponseWriter, r *http.Request) {
	now := s.clock()
	nowOffset := dayoffset.FromHourMinute(uint32(now.Hour()), uint32(now.Minute()))

	rides := s.repo.ActiveRidesAt(nowOffset, now)
	writeJSON(w, http.StatusOK, toRideJSONs(rides, s.repo.Interner()))
}

func (s *Server) handleActiveRidesTimespan(w http.ResponseWriter, r *http.Request) {
	now := s.clock()
	nowOffset := dayoffset.FromHourMinute(uint32(now.Hour()), uint32(now.Minute()))
	end := nowOffset.OffsetBy(2 * 60)

	rides := s.repo.ActiveRidesInTimespan(nowOffset, end, now)
	writeJSON(w, http.StatusOK, toRideJSONs(rides, s.repo.Interner()))
}

func (s *Server) handleRidesAll(w http.ResponseWriter, r *http.Request) {
	now := s.clock()
	rides := s.repo.RidesOnDate(now)
	writeJSON(w, http.StatusOK, toRideJSONs(rides, s.repo.Interner()))
}

func (s *Server) handleFindRoute(w http.ResponseWriter, r *http.Request) {
	if !s.upstream.Enabled() {
		disabledError(w, "find_route is disabled: no NS API key configured")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if err := validateStationParam(s, from); err != nil {
		validationError(w, "invalid 'from' parameter: "+err.Error())
		return
	}
	if err := validateStationParam(s, to); err != nil {
		validationError(w, "invalid 'to' parameter: "+err.Error())
		return
	}

	resp, err := s.upstream.PlanRoute(r.Context(), strings.ToLower(from), strings.ToLower(to))
	if err != nil {
		upstreamError(w, err)
		return
	}

	result := mapUpstream(resp, s.repo, s.clock())
	writeJSON(w, http.StatusOK, findRouteResponse{
		Trips: result.Trips,
		Rides: toRideJSONs(result.Rides, s.repo.Interner()),
	})
}

const maxStationParamLength = 50

func validateStationParam(s *Server, code string) error {
	if code == "" {
		return errShortOrEmptyParam
	}
	if len(code) > maxStationParamLength {
		return errParamTooLong
	}
	if _, ok := s.repo.StationByCode(strings.ToLower(code)); !ok {
		return errUnknownStation
	}
	return nil
}
