package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/treinplanner/iffserver/config"
	"github.com/treinplanner/iffserver/httpapi"
	"github.com/treinplanner/iffserver/upstream"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "iffserver",
	Short:        "IFF timetable ingestion and query server",
	Long:         "Ingests a Dutch railway IFF timetable delivery and serves it over a read-only JSON API.",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "iffserver.toml", "path to the TOML configuration file")
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("iffserver exited with error")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}

	client := upstream.NewClient("https://gateway.apiportal.ns.nl/reisinformatie-api/api/v3", cfg.NSAPIKey)
	server := httpapi.NewServer(repo, client, nil)

	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: server.Router(cfg.CORSDomain),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("addr", cfg.BindAddr).Msg("iffserver listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info().Msg("shutdown signal received, draining in-flight requests")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
