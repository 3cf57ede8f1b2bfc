package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/treinplanner/iffserver/config"
	"github.com/treinplanner/iffserver/geo"
	"github.com/treinplanner/iffserver/iff"
	"github.com/treinplanner/iffserver/interner"
	"github.com/treinplanner/iffserver/repository"
)

const (
	archiveFileName  = "delivery.zip"
	stationsFileName = "stations.json"
	routesFileName   = "route.json"
)

// buildRepository ingests the cache directory's timetable archive and
// geographic datasets into a ready-to-serve Repository. Any failure
// here is an IngestionError and is fatal to the process.
func buildRepository(cfg config.Config) (*repository.Repository, error) {
	in := interner.New()

	archivePath := filepath.Join(cfg.CacheDir, archiveFileName)
	archive, err := iff.ParseArchive(archivePath, in)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: parsing timetable archive")
	}
	for _, w := range archive.RecordWarnings {
		log.Warn().Err(w).Msg("ingest: skipping malformed timetable record")
	}

	stationsRaw, err := os.ReadFile(filepath.Join(cfg.CacheDir, stationsFileName))
	if err != nil {
		return nil, errors.Wrap(err, "ingest: reading stations.json")
	}
	stations, err := geo.ParseStations(stationsRaw)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: parsing stations.json")
	}

	routesRaw, err := os.ReadFile(filepath.Join(cfg.CacheDir, routesFileName))
	if err != nil {
		return nil, errors.Wrap(err, "ingest: reading route.json")
	}
	links, err := geo.ParseLinks(routesRaw)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: parsing route.json")
	}

	geoIdx := geo.NewIndex(stations, links)

	repo, err := repository.New(archive, in, geoIdx)
	if err != nil {
		return nil, errors.Wrap(err, "ingest: building repository")
	}

	log.Info().
		Int("rides", len(repo.Rides())).
		Int("stations", len(stations)).
		Int("links", len(links)).
		Uint64("version", archive.Header.Version).
		Msg("ingest: repository built")

	return repo, nil
}
