package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/config"
	"github.com/dztransit/logistics-api/internal/db"
	"github.com/dztransit/logistics-api/internal/excel"
	httphandler "github.com/dztransit/logistics-api/internal/http"
	"github.com/dztransit/logistics-api/internal/http/middleware"
	"github.com/dztransit/logistics-api/internal/logger"
	"github.com/dztransit/logistics-api/internal/pdf"
	"github.com/dztransit/logistics-api/internal/repository"
	"github.com/dztransit/logistics-api/internal/service"
)

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

	userRepo := repository.NewUserRepository(database)
	clientRepo := repository.NewClientRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	rateRepo := repository.NewRateRepository(database)
	shipmentRepo := repository.NewShipmentRepository(database)
	tourRepo := repository.NewTourRepository(database)
	invoiceRepo := repository.NewInvoiceRepository(database)
	claimRepo := repository.NewClaimRepository(database)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, time.Duration(cfg.Auth.AccessTTLHours)*time.Hour)

	userService := service.NewUserService(userRepo, issuer, log)
	clientService := service.NewClientService(clientRepo)
	driverService := service.NewDriverService(driverRepo)
	fleetService := service.NewFleetService(vehicleRepo, driverRepo, tourRepo, shipmentRepo, log)
	rateService := service.NewRateService(rateRepo)
	shipmentService := service.NewShipmentService(shipmentRepo, rateRepo, clientRepo, pdfGenerator, excelGenerator, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, shipmentRepo, clientRepo, pdfGenerator, log)
	claimService := service.NewClaimService(claimRepo, shipmentRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		userService,
		clientService,
		driverService,
		fleetService,
		rateService,
		shipmentService,
		invoiceService,
		claimService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting logistics api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
