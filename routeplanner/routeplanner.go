// Package routeplanner filters an upstream trip-planner response down
// to its public-transit legs and cross-references the ride numbers it
// names against the local repository's rides valid today.
package routeplanner

import (
	"time"

	"github.com/treinplanner/iffserver/ride"
)

// TravelType is the upstream planner's leg-kind discriminator.
type TravelType string

const (
	TravelTypeWalk           TravelType = "WALK"
	TravelTypePublicTransit  TravelType = "PUBLIC_TRANSIT"
)

// LocationType discriminates an upstream leg endpoint.
type LocationType string

const (
	LocationTypeStation LocationType = "STATION"
	LocationTypeAddress LocationType = "ADDRESS"
)

// ProductType discriminates the upstream leg's product.
type ProductType string

const (
	ProductTypeWalk  ProductType = "WALK"
	ProductTypeTrain ProductType = "TRAIN"
)

// Location is an upstream leg endpoint.
type Location struct {
	Type        LocationType `json:"type"`
	StationCode *string      `json:"stationCode,omitempty"`
}

// Product describes the upstream leg's mode of travel.
type Product struct {
	Type         ProductType `json:"type"`
	Number       *string     `json:"number,omitempty"`
	CategoryCode *string     `json:"categoryCode,omitempty"`
}

// UpstreamLeg is one leg of an upstream trip.
type UpstreamLeg struct {
	TravelType  TravelType `json:"travelType"`
	Origin      Location   `json:"origin"`
	Destination Location   `json:"destination"`
	Product     Product    `json:"product"`
}

// UpstreamTrip is one candidate itinerary from the upstream planner.
type UpstreamTrip struct {
	Legs []UpstreamLeg `json:"legs"`
}

// UpstreamResponse is the upstream planner's raw response shape.
type UpstreamResponse struct {
	Trips []UpstreamTrip `json:"trips"`
}

// RideReference is one (from, to, ride_id) triple extracted from a
// surviving upstream trip.
type RideReference struct {
	From   string
	To     string
	RideID string
}

// MappedResult is the routeplanner's output: the filtered trips plus
// the local rides those trips referenced, restricted to rides valid
// "today".
type MappedResult struct {
	Trips []UpstreamTrip
	Rides []ride.Ride
}

// RideLookup resolves a ride id to a Ride and reports whether it's
// valid on the given date; repository.Repository satisfies this via
// RideByID + IsRideValid.
type RideLookup interface {
	RideByID(id string) (ride.Ride, bool)
	IsRideValid(rd ride.Ride, date time.Time) bool
}

// Map implements the §4.8 mapping: keep only trips whose every leg is
// PUBLIC_TRANSIT, collect (from, to, ride_id) triples from them, and
// resolve the distinct ride ids against lookup, keeping only those
// valid on today.
func Map(resp UpstreamResponse, lookup RideLookup, today time.Time) MappedResult {
	var survivingTrips []UpstreamTrip
	seen := map[string]bool{}
	var rideIDs []string

	for _, trip := range resp.Trips {
		if !allPublicTransit(trip) {
			continue
		}

		refs, ok := collectReferences(trip)
		if !ok {
			continue
		}

		survivingTrips = append(survivingTrips, trip)
		for _, ref := range refs {
			if !seen[ref.RideID] {
				seen[ref.RideID] = true
				rideIDs = append(rideIDs, ref.RideID)
			}
		}
	}

	var rides []ride.Ride
	for _, id := range rideIDs {
		rd, ok := lookup.RideByID(id)
		if !ok {
			continue
		}
		if lookup.IsRideValid(rd, today) {
			rides = append(rides, rd)
		}
	}

	return MappedResult{Trips: survivingTrips, Rides: rides}
}

func allPublicTransit(trip UpstreamTrip) bool {
	if len(trip.Legs) == 0 {
		return false
	}
	for _, leg := range trip.Legs {
		if leg.TravelType != TravelTypePublicTransit {
			return false
		}
	}
	return true
}

// collectReferences extracts (from, to, ride_id) triples for every
// leg of trip. A leg missing any of the three required fields drops
// the whole trip, per the "mixed trip is dropped" rule.
func collectReferences(trip UpstreamTrip) ([]RideReference, bool) {
	refs := make([]RideReference, 0, len(trip.Legs))
	for _, leg := range trip.Legs {
		if leg.Origin.StationCode == nil || leg.Destination.StationCode == nil || leg.Product.Number == nil {
			return nil, false
		}
		refs = append(refs, RideReference{
			From:   *leg.Origin.StationCode,
			To:     *leg.Destination.StationCode,
			RideID: *leg.Product.Number,
		})
	}
	return refs, true
}
