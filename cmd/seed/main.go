package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/config"
	"github.com/dztransit/logistics-api/internal/db"
	"github.com/dztransit/logistics-api/internal/excel"
	"github.com/dztransit/logistics-api/internal/logger"
	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/pdf"
	"github.com/dztransit/logistics-api/internal/repository"
	"github.com/dztransit/logistics-api/internal/service"
)

// Seeds a development database with a working data set: users for each
// role, a small fleet, the Algiers/Oran/Paris rate card and a handful
// of shipments. Skips everything if users already exist.
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

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, time.Duration(cfg.Auth.AccessTTLHours)*time.Hour)

	users := service.NewUserService(userRepo, issuer, log)
	clients := service.NewClientService(clientRepo)
	drivers := service.NewDriverService(driverRepo)
	fleet := service.NewFleetService(vehicleRepo, driverRepo, tourRepo, shipmentRepo, log)
	rates := service.NewRateService(rateRepo)
	shipments := service.NewShipmentService(shipmentRepo, rateRepo, clientRepo, pdfGenerator, excel.NewGenerator(), log)
	invoices := service.NewInvoiceService(invoiceRepo, shipmentRepo, clientRepo, pdfGenerator, log)
	claims := service.NewClaimService(claimRepo, shipmentRepo)

	ctx := context.Background()

	existing, err := users.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check existing users")
	}
	if len(existing) > 0 {
		log.Info().Int("users", len(existing)).Msg("database already seeded, nothing to do")
		return
	}

	seedUsers(ctx, log, users)
	seededClients := seedClients(ctx, log, clients)
	seededDrivers := seedDrivers(ctx, log, drivers)
	seededVehicles := seedVehicles(ctx, log, fleet)
	destinations, serviceTypes := seedRates(ctx, log, rates)
	seededShipments := seedShipments(ctx, log, shipments, seededClients, destinations, serviceTypes)
	seedTour(ctx, log, fleet, seededDrivers, seededVehicles, seededShipments)
	seedInvoice(ctx, log, invoices, seededClients, seededShipments)
	seedClaim(ctx, log, claims, seededShipments)

	log.Info().Msg("seed complete")
}

func seedUsers(ctx context.Context, log zerolog.Logger, users *service.UserService) {
	inputs := []service.CreateUserInput{
		{Username: "admin", Password: "admin123", Email: "admin@dztransit.dz", FirstName: "Salim", LastName: "Hadj", Role: model.RoleAdmin},
		{Username: "manager", Password: "manager123", Email: "manager@dztransit.dz", FirstName: "Lynda", LastName: "Cherif", Role: model.RoleManager},
		{Username: "agent", Password: "agent123", Email: "agent@dztransit.dz", FirstName: "Mehdi", LastName: "Bouzid", Role: model.RoleAgent},
		{Username: "driver", Password: "driver123", Email: "driver@dztransit.dz", FirstName: "Karim", LastName: "Benali", Role: model.RoleDriver},
	}
	for _, input := range inputs {
		if _, err := users.Create(ctx, input); err != nil {
			log.Fatal().Err(err).Str("username", input.Username).Msg("failed to seed user")
		}
	}
	log.Info().Int("count", len(inputs)).Msg("users seeded")
}

func seedClients(ctx context.Context, log zerolog.Logger, clients *service.ClientService) []model.Client {
	inputs := []service.ClientInput{
		{Name: "SARL Numidia Import", Address: "12 rue Didouche Mourad, Alger", ContactInfo: "contact@numidia-import.dz"},
		{Name: "EURL Atlas Distribution", Address: "Zone industrielle, Oran", ContactInfo: "+213 41 55 12 34"},
		{Name: "SPA Tell Export", Address: "Boulevard de l'ALN, Annaba", ContactInfo: "export@tell.dz"},
	}
	out := make([]model.Client, 0, len(inputs))
	for _, input := range inputs {
		client, err := clients.Create(ctx, input)
		if err != nil {
			log.Fatal().Err(err).Str("name", input.Name).Msg("failed to seed client")
		}
		out = append(out, *client)
	}
	log.Info().Int("count", len(out)).Msg("clients seeded")
	return out
}

func seedDrivers(ctx context.Context, log zerolog.Logger, drivers *service.DriverService) []model.Driver {
	inputs := []service.DriverInput{
		{Name: "Karim Benali", LicenseNumber: "16-2018-104532", Phone: "+213 550 10 20 30"},
		{Name: "Yacine Meziane", LicenseNumber: "31-2020-778201", Phone: "+213 661 44 55 66"},
	}
	out := make([]model.Driver, 0, len(inputs))
	for _, input := range inputs {
		driver, err := drivers.Create(ctx, input)
		if err != nil {
			log.Fatal().Err(err).Str("name", input.Name).Msg("failed to seed driver")
		}
		out = append(out, *driver)
	}
	log.Info().Int("count", len(out)).Msg("drivers seeded")
	return out
}

func seedVehicles(ctx context.Context, log zerolog.Logger, fleet *service.FleetService) []model.Vehicle {
	inputs := []service.CreateVehicleInput{
		{LicensePlate: "00216-116-16", VehicleType: "fourgon", Capacity: decimal.NewFromInt(1500)},
		{LicensePlate: "01437-219-31", VehicleType: "camion", Capacity: decimal.NewFromInt(12000)},
	}
	out := make([]model.Vehicle, 0, len(inputs))
	for _, input := range inputs {
		vehicle, err := fleet.CreateVehicle(ctx, input)
		if err != nil {
			log.Fatal().Err(err).Str("plate", input.LicensePlate).Msg("failed to seed vehicle")
		}
		out = append(out, *vehicle)
	}
	log.Info().Int("count", len(out)).Msg("vehicles seeded")
	return out
}

func seedRates(ctx context.Context, log zerolog.Logger, rates *service.RateService) ([]model.Destination, []model.ServiceType) {
	centre := "Centre"
	ouest := "Ouest"
	international := "International"

	destinationInputs := []struct {
		name string
		zone *string
	}{
		{"Alger", &centre},
		{"Oran", &ouest},
		{"Paris", &international},
	}
	destinations := make([]model.Destination, 0, len(destinationInputs))
	for _, input := range destinationInputs {
		destination, err := rates.CreateDestination(ctx, input.name, input.zone)
		if err != nil {
			log.Fatal().Err(err).Str("name", input.name).Msg("failed to seed destination")
		}
		destinations = append(destinations, *destination)
	}

	serviceTypes := make([]model.ServiceType, 0, 2)
	for _, name := range []string{"Standard", "Express"} {
		serviceType, err := rates.CreateServiceType(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("failed to seed service type")
		}
		serviceTypes = append(serviceTypes, *serviceType)
	}

	// One rule per (destination, service type) pair. Express costs more.
	for _, destination := range destinations {
		for i, serviceType := range serviceTypes {
			base := decimal.NewFromInt(500 + int64(i)*300)
			if _, err := rates.CreateRule(ctx, service.PricingRuleInput{
				DestinationID: destination.ID,
				ServiceTypeID: serviceType.ID,
				BaseTariff:    base,
				WeightRate:    decimal.NewFromInt(10 + int64(i)*5),
				VolumeRate:    decimal.NewFromInt(100 + int64(i)*50),
			}); err != nil {
				log.Fatal().Err(err).Str("destination", destination.Name).Msg("failed to seed pricing rule")
			}
		}
	}

	log.Info().Msg("rate card seeded")
	return destinations, serviceTypes
}

func seedShipments(
	ctx context.Context,
	log zerolog.Logger,
	shipments *service.ShipmentService,
	clients []model.Client,
	destinations []model.Destination,
	serviceTypes []model.ServiceType,
) []model.Shipment {
	inputs := []service.CreateShipmentInput{
		{
			ClientID:      clients[0].ID,
			DestinationID: destinations[0].ID,
			ServiceTypeID: serviceTypes[0].ID,
			Weight:        decimal.NewFromInt(20),
			Volume:        decimal.NewFromFloat(1.5),
			Description:   "pieces detachees automobiles",
		},
		{
			ClientID:      clients[1].ID,
			DestinationID: destinations[1].ID,
			ServiceTypeID: serviceTypes[1].ID,
			Weight:        decimal.NewFromInt(350),
			Volume:        decimal.NewFromInt(4),
			Description:   "electromenager",
		},
		{
			ClientID:                 clients[2].ID,
			DestinationID:            destinations[2].ID,
			ServiceTypeID:            serviceTypes[0].ID,
			Weight:                   decimal.NewFromInt(80),
			Volume:                   decimal.NewFromInt(2),
			Description:              "huile d'olive conditionnee",
			IsInternational:          true,
			RequiresCustomsClearance: true,
			CustomsValue:             decimal.NewFromInt(250000),
		},
	}
	out := make([]model.Shipment, 0, len(inputs))
	for _, input := range inputs {
		shipment, err := shipments.Create(ctx, input)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed shipment")
		}
		out = append(out, *shipment)
	}
	log.Info().Int("count", len(out)).Msg("shipments seeded")
	return out
}

func seedTour(
	ctx context.Context,
	log zerolog.Logger,
	fleet *service.FleetService,
	drivers []model.Driver,
	vehicles []model.Vehicle,
	shipments []model.Shipment,
) {
	if _, err := fleet.CreateTour(ctx, service.TourInput{
		DriverID:    drivers[0].ID,
		VehicleID:   vehicles[0].ID,
		Date:        time.Now().UTC(),
		ShipmentIDs: []uuid.UUID{shipments[0].ID, shipments[1].ID},
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed tour")
	}
	log.Info().Msg("tour seeded")
}

func seedInvoice(
	ctx context.Context,
	log zerolog.Logger,
	invoices *service.InvoiceService,
	clients []model.Client,
	shipments []model.Shipment,
) {
	invoice, err := invoices.Create(ctx, service.CreateInvoiceInput{
		ClientID:    clients[0].ID,
		ShipmentIDs: []uuid.UUID{shipments[0].ID},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed invoice")
	}
	log.Info().Str("invoice", invoice.ID.String()).Str("total_ttc", invoice.AmountTTC.String()).Msg("invoice seeded")
}

func seedClaim(ctx context.Context, log zerolog.Logger, claims *service.ClaimService, shipments []model.Shipment) {
	if _, err := claims.SubmitPublicClaim(ctx, service.PublicClaimInput{
		TrackingNumber: shipments[0].TrackingNumber,
		ClaimType:      model.ClaimLateDelivery,
		Description:    "Colis annonce pour lundi, toujours rien mercredi.",
		ContactEmail:   "r.bensaid@example.dz",
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed claim")
	}
	log.Info().Msg("claim seeded")
}
