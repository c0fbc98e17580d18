package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/pricing"
	"github.com/dztransit/logistics-api/internal/repository"
	"github.com/dztransit/logistics-api/internal/status"
)

type SlipGenerator interface {
	DeliverySlip(slip model.DeliverySlip) ([]byte, error)
}

type JournalGenerator interface {
	Journal(journal model.ShipmentJournal) ([]byte, error)
}

type ShipmentService struct {
	shipments repository.ShipmentRepository
	rates     repository.RateRepository
	clients   repository.ClientRepository
	slips     SlipGenerator
	journal   JournalGenerator
	log       zerolog.Logger
}

func NewShipmentService(
	shipments repository.ShipmentRepository,
	rates repository.RateRepository,
	clients repository.ClientRepository,
	slips SlipGenerator,
	journal JournalGenerator,
	log zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipments: shipments,
		rates:     rates,
		clients:   clients,
		slips:     slips,
		journal:   journal,
		log:       log,
	}
}

type CreateShipmentInput struct {
	ClientID                 uuid.UUID
	DestinationID            uuid.UUID
	ServiceTypeID            uuid.UUID
	Weight                   decimal.Decimal
	Volume                   decimal.Decimal
	Description              string
	IsInternational          bool
	RequiresCustomsClearance bool
	CustomsValue             decimal.Decimal
}

type UpdateShipmentInput struct {
	DestinationID            *uuid.UUID
	ServiceTypeID            *uuid.UUID
	Weight                   *decimal.Decimal
	Volume                   *decimal.Decimal
	Description              *string
	IsInternational          *bool
	RequiresCustomsClearance *bool
	CustomsValue             *decimal.Decimal
	Status                   *model.ShipmentStatus
}

func (s *ShipmentService) Create(ctx context.Context, input CreateShipmentInput) (*model.Shipment, error) {
	if err := validateShipmentAmounts(input.Weight, input.Volume, input.CustomsValue); err != nil {
		return nil, err
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, mapNotFound(err)
	}

	shipment := &model.Shipment{
		ClientID:                 input.ClientID,
		DestinationID:            input.DestinationID,
		ServiceTypeID:            input.ServiceTypeID,
		Weight:                   input.Weight,
		Volume:                   input.Volume,
		Description:              input.Description,
		IsInternational:          input.IsInternational,
		RequiresCustomsClearance: input.RequiresCustomsClearance,
		CustomsValue:             input.CustomsValue,
		Status:                   model.ShipmentPending,
	}

	cost, err := s.computeCost(ctx, shipment)
	if err != nil {
		return nil, err
	}
	shipment.CalculatedCost = decimal.NullDecimal{Decimal: cost, Valid: true}

	// The random suffix can collide with an existing shipment of the
	// same year; on a unique violation draw a new number instead of
	// bubbling the index error up as a 500.
	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		trackingNumber, err := generateTrackingNumber()
		if err != nil {
			return nil, err
		}
		shipment.TrackingNumber = trackingNumber

		err = s.shipments.Create(ctx, shipment)
		if err == nil {
			return s.shipments.GetByID(ctx, shipment.ID)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		s.log.Warn().
			Str("tracking_number", trackingNumber).
			Msg("tracking number collision, retrying")
	}
	return nil, fmt.Errorf("allocate tracking number: %d attempts exhausted", trackingNumberAttempts)
}

func (s *ShipmentService) Update(ctx context.Context, id uuid.UUID, input UpdateShipmentInput) (*model.Shipment, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	oldStatus := shipment.Status
	costAffected := false

	if input.DestinationID != nil && *input.DestinationID != shipment.DestinationID {
		shipment.DestinationID = *input.DestinationID
		costAffected = true
	}
	if input.ServiceTypeID != nil && *input.ServiceTypeID != shipment.ServiceTypeID {
		shipment.ServiceTypeID = *input.ServiceTypeID
		costAffected = true
	}
	if input.Weight != nil && !input.Weight.Equal(shipment.Weight) {
		shipment.Weight = *input.Weight
		costAffected = true
	}
	if input.Volume != nil && !input.Volume.Equal(shipment.Volume) {
		shipment.Volume = *input.Volume
		costAffected = true
	}
	if input.IsInternational != nil && *input.IsInternational != shipment.IsInternational {
		shipment.IsInternational = *input.IsInternational
		costAffected = true
	}
	if input.RequiresCustomsClearance != nil && *input.RequiresCustomsClearance != shipment.RequiresCustomsClearance {
		shipment.RequiresCustomsClearance = *input.RequiresCustomsClearance
		costAffected = true
	}
	if input.CustomsValue != nil && !input.CustomsValue.Equal(shipment.CustomsValue) {
		shipment.CustomsValue = *input.CustomsValue
		costAffected = true
	}
	if input.Description != nil {
		shipment.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown shipment status %q", ErrInvalidInput, *input.Status)
		}
		shipment.Status = *input.Status
	}

	if err := validateShipmentAmounts(shipment.Weight, shipment.Volume, shipment.CustomsValue); err != nil {
		return nil, err
	}

	if costAffected {
		cost, err := s.computeCost(ctx, shipment)
		if err != nil {
			return nil, err
		}
		shipment.CalculatedCost = decimal.NullDecimal{Decimal: cost, Valid: true}
	}

	if err := s.shipments.Update(ctx, shipment); err != nil {
		return nil, err
	}

	if status.ShouldRecordTransition(oldStatus, shipment.Status) {
		if err := s.shipments.AppendStatusHistory(ctx, shipment.ID, shipment.Status); err != nil {
			return nil, err
		}
	}

	return s.shipments.GetByID(ctx, shipment.ID)
}

// RecalculateCost recomputes the cached cost on explicit request. Here,
// unlike on the create path, a missing pricing rule is reported to the
// caller: they asked for a price on purpose.
func (s *ShipmentService) RecalculateCost(ctx context.Context, id uuid.UUID) (*model.Shipment, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	rule, err := s.rates.FindRule(ctx, shipment.DestinationID, shipment.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrNoRateCard
	}

	cost := pricing.ComputeShipmentCost(shipmentPricingInput(shipment), &pricing.RateCard{
		BaseTariff: rule.BaseTariff,
		WeightRate: rule.WeightRate,
		VolumeRate: rule.VolumeRate,
	})
	shipment.CalculatedCost = decimal.NullDecimal{Decimal: cost, Valid: true}

	if err := s.shipments.Update(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Get(ctx context.Context, id uuid.UUID) (*model.Shipment, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return shipment, nil
}

func (s *ShipmentService) List(ctx context.Context) ([]model.Shipment, error) {
	return s.shipments.List(ctx)
}

func (s *ShipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.shipments.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.shipments.Delete(ctx, id)
}

// Track serves the public tracking page: shipment status and history by
// tracking number, no authentication.
func (s *ShipmentService) Track(ctx context.Context, trackingNumber string) (*model.Shipment, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("%w: tracking number is required", ErrInvalidInput)
	}
	shipment, err := s.shipments.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return shipment, nil
}

type DeliverySlipResult struct {
	FileName string
	Content  []byte
}

func (s *ShipmentService) GenerateDeliverySlip(ctx context.Context, id uuid.UUID) (*DeliverySlipResult, error) {
	shipment, err := s.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	slip := model.DeliverySlip{Shipment: *shipment}
	if shipment.Client != nil {
		slip.Client = *shipment.Client
	}
	if shipment.Destination != nil {
		slip.Destination = *shipment.Destination
	}
	if shipment.ServiceType != nil {
		slip.ServiceType = *shipment.ServiceType
	}

	content, err := s.slips.DeliverySlip(slip)
	if err != nil {
		return nil, err
	}
	return &DeliverySlipResult{
		FileName: fmt.Sprintf("bon-livraison-%s.pdf", shipment.TrackingNumber),
		Content:  content,
	}, nil
}

type JournalExportResult struct {
	FileName string
	Content  []byte
}

func (s *ShipmentService) ExportJournal(ctx context.Context, periodStart, periodEnd time.Time) (*JournalExportResult, error) {
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	periodStart = dateOnly(periodStart)
	periodEnd = dateOnly(periodEnd)
	if periodStart.After(periodEnd) {
		return nil, fmt.Errorf("%w: period_start must be before or equal to period_end", ErrInvalidInput)
	}
	endExclusive := periodEnd.Add(24 * time.Hour)

	rows, err := s.shipments.Journal(ctx, periodStart, endExclusive)
	if err != nil {
		return nil, err
	}

	content, err := s.journal.Journal(model.ShipmentJournal{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Rows:        rows,
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("journal-expeditions-%s-%s.xlsx",
		periodStart.Format("20060102"), periodEnd.Format("20060102"))
	return &JournalExportResult{FileName: fileName, Content: content}, nil
}

// computeCost looks up the rate card and prices the shipment. A missing
// rule resolves to zero cost; the warning makes the degraded mode
// visible in logs without failing the write.
func (s *ShipmentService) computeCost(ctx context.Context, shipment *model.Shipment) (decimal.Decimal, error) {
	rule, err := s.rates.FindRule(ctx, shipment.DestinationID, shipment.ServiceTypeID)
	if err != nil {
		return decimal.Zero, err
	}

	var rate *pricing.RateCard
	if rule != nil {
		rate = &pricing.RateCard{
			BaseTariff: rule.BaseTariff,
			WeightRate: rule.WeightRate,
			VolumeRate: rule.VolumeRate,
		}
	} else {
		s.log.Warn().
			Str("tracking_number", shipment.TrackingNumber).
			Str("destination_id", shipment.DestinationID.String()).
			Str("service_type_id", shipment.ServiceTypeID.String()).
			Msg("no pricing rule for shipment, cost set to zero")
	}

	return pricing.ComputeShipmentCost(shipmentPricingInput(shipment), rate), nil
}

func shipmentPricingInput(shipment *model.Shipment) pricing.ShipmentInput {
	return pricing.ShipmentInput{
		Weight:                   shipment.Weight,
		Volume:                   shipment.Volume,
		IsInternational:          shipment.IsInternational,
		RequiresCustomsClearance: shipment.RequiresCustomsClearance,
		CustomsValue:             shipment.CustomsValue,
	}
}

func validateShipmentAmounts(weight, volume, customsValue decimal.Decimal) error {
	if !weight.IsPositive() {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if !volume.IsPositive() {
		return fmt.Errorf("%w: volume must be positive", ErrInvalidInput)
	}
	if customsValue.IsNegative() {
		return fmt.Errorf("%w: customs value cannot be negative", ErrInvalidInput)
	}
	return nil
}

const trackingNumberAttempts = 5

func generateTrackingNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate tracking number: %w", err)
	}
	return fmt.Sprintf("DZ%d%06d", time.Now().UTC().Year(), n.Int64()), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
