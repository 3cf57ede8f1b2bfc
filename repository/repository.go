// Package repository composes the parsed timetable, validity,
// geographic, and company data into a single immutable, read-shared
// data source for the HTTP API.
package repository

import (
	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/geo"
	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
	"github.com/treinplanner/iffserver/ride"
	"github.com/treinplanner/iffserver/validity"
)

// Repository is constructed once at startup, single-threaded, and
// treated as immutable shared state thereafter: no field is ever
// mutated post-construction, so no internal locking is required.
type Repository struct {
	interner  *interner.Interner
	header    iff.Header
	companies []iff.Company
	validity  *validity.Engine
	geo       *geo.Index
	rides     []ride.Ride
}

// New builds a Repository from a fully parsed IFF archive and a
// geographic index, applying the unknown-leg filter described in
// §4.7: a record is dropped entirely (and re-split rides are never
// materialized for it) if any of its derived rides reference a
// station or link absent from the geographic datasets.
func New(archive iff.Archive, in *interner.Interner, geoIdx *geo.Index) (*Repository, error) {
	var rides []ride.Ride

	for _, rec := range archive.Records {
		derived, err := ride.SplitRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "repository: splitting record %d", rec.ID)
		}

		if !allLegsKnown(derived, in, geoIdx) {
			continue
		}

		rides = append(rides, derived...)
	}

	engine := validity.NewEngine(archive.Header.FirstValidDate, archive.Header.LastValidDate, archive.Footnotes)

	return &Repository{
		interner:  in,
		header:    archive.Header,
		companies: archive.Companies,
		validity:  engine,
		geo:       geoIdx,
		rides:     rides,
	}, nil
}

func allLegsKnown(rides []ride.Ride, in *interner.Interner, geoIdx *geo.Index) bool {
	for _, r := range rides {
		for _, leg := range r.Legs {
			switch v := leg.(type) {
			case ride.Stationary:
				if !knownStation(in, geoIdx, v.Station) {
					return false
				}
			case ride.Moving:
				if !knownStation(in, geoIdx, v.From) || !knownStation(in, geoIdx, v.To) {
					return false
				}
				if !geoIdx.HasLink(in.Resolve(v.From), in.Resolve(v.To)) {
					return false
				}
				for _, wp := range v.Waypoints {
					if !knownStation(in, geoIdx, wp) {
						return false
					}
				}
			}
		}
	}
	return true
}

func knownStation(in *interner.Interner, geoIdx *geo.Index, handle interner.Handle) bool {
	_, ok := geoIdx.StationByCode(in.Resolve(handle))
	return ok
}

// Header returns the delivery metadata the repository was built from.
func (r *Repository) Header() iff.Header {
	return r.header
}

// Companies returns every operator parsed from company.dat.
func (r *Repository) Companies() []iff.Company {
	return r.companies
}

// Interner exposes the repository's location interner, so the
// location_map endpoint can serialize its code table.
func (r *Repository) Interner() *interner.Interner {
	return r.interner
}

// Geo exposes the repository's geographic index, so the stations and
// links endpoints can serialize it directly.
func (r *Repository) Geo() *geo.Index {
	return r.geo
}

// Rides returns every ride retained after the unknown-leg filter.
func (r *Repository) Rides() []ride.Ride {
	return r.rides
}
