package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dztransit/logistics-api/internal/config"
	"github.com/dztransit/logistics-api/internal/db"
	"github.com/dztransit/logistics-api/internal/logger"
	"github.com/dztransit/logistics-api/internal/repository"
	"github.com/dztransit/logistics-api/internal/service"
)

// Re-derives vehicle statuses against today's tour schedule. Meant to
// run from cron around midnight, when yesterday's tours stop counting.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	fleetService := service.NewFleetService(
		repository.NewVehicleRepository(database),
		repository.NewDriverRepository(database),
		repository.NewTourRepository(database),
		repository.NewShipmentRepository(database),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	updated, err := fleetService.RefreshVehicleStatuses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("vehicle status refresh failed")
	}
	log.Info().Int("updated", updated).Msg("vehicle statuses refreshed")
}
