package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
)

// ClaimService handles incidents reported on shipments and customer
// claims, including anonymous claims from the public form.
type ClaimService struct {
	claims    repository.ClaimRepository
	shipments repository.ShipmentRepository
}

func NewClaimService(claims repository.ClaimRepository, shipments repository.ShipmentRepository) *ClaimService {
	return &ClaimService{claims: claims, shipments: shipments}
}

type IncidentInput struct {
	ShipmentID  uuid.UUID
	Description string
	Status      *model.IncidentStatus
}

func (s *ClaimService) CreateIncident(ctx context.Context, input IncidentInput) (*model.Incident, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("%w: incident description is required", ErrInvalidInput)
	}
	if _, err := s.shipments.GetByID(ctx, input.ShipmentID); err != nil {
		return nil, mapNotFound(err)
	}

	incident := &model.Incident{
		ShipmentID:  input.ShipmentID,
		Description: input.Description,
		Status:      model.IncidentOpen,
	}
	if err := s.claims.CreateIncident(ctx, incident); err != nil {
		return nil, err
	}
	return s.claims.GetIncident(ctx, incident.ID)
}

func (s *ClaimService) UpdateIncident(ctx context.Context, id uuid.UUID, input IncidentInput) (*model.Incident, error) {
	incident, err := s.claims.GetIncident(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if input.Description != "" {
		incident.Description = input.Description
	}
	if input.Status != nil {
		switch *input.Status {
		case model.IncidentOpen, model.IncidentResolved:
			incident.Status = *input.Status
		default:
			return nil, fmt.Errorf("%w: unknown incident status %q", ErrInvalidInput, *input.Status)
		}
	}
	incident.Shipment = nil
	if err := s.claims.UpdateIncident(ctx, incident); err != nil {
		return nil, err
	}
	return s.claims.GetIncident(ctx, incident.ID)
}

func (s *ClaimService) GetIncident(ctx context.Context, id uuid.UUID) (*model.Incident, error) {
	incident, err := s.claims.GetIncident(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return incident, nil
}

func (s *ClaimService) ListIncidents(ctx context.Context) ([]model.Incident, error) {
	return s.claims.ListIncidents(ctx)
}

func (s *ClaimService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	if _, err := s.claims.GetIncident(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.claims.DeleteIncident(ctx, id)
}

type ClaimInput struct {
	ClientID    *uuid.UUID
	ShipmentID  *uuid.UUID
	ClaimType   model.ClaimType
	Description string
}

func (s *ClaimService) CreateClaim(ctx context.Context, input ClaimInput) (*model.Claim, error) {
	if !input.ClaimType.Valid() {
		return nil, fmt.Errorf("%w: unknown claim type %q", ErrInvalidInput, input.ClaimType)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: claim description is required", ErrInvalidInput)
	}
	if input.ShipmentID != nil {
		if _, err := s.shipments.GetByID(ctx, *input.ShipmentID); err != nil {
			return nil, mapNotFound(err)
		}
	}

	claim := &model.Claim{
		ClientID:    input.ClientID,
		ShipmentID:  input.ShipmentID,
		ClaimType:   input.ClaimType,
		Description: input.Description,
		Status:      model.ClaimPending,
	}
	if err := s.claims.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}
	return s.claims.GetClaim(ctx, claim.ID)
}

type PublicClaimInput struct {
	TrackingNumber string
	ClaimType      model.ClaimType
	Description    string
	ContactEmail   string
}

// SubmitPublicClaim accepts a claim from the unauthenticated form. The
// tracking number is optional; when present and known, the claim is
// linked to the shipment and its client.
func (s *ClaimService) SubmitPublicClaim(ctx context.Context, input PublicClaimInput) (*model.Claim, error) {
	if !input.ClaimType.Valid() {
		return nil, fmt.Errorf("%w: unknown claim type %q", ErrInvalidInput, input.ClaimType)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: claim description is required", ErrInvalidInput)
	}
	if input.ContactEmail == "" {
		return nil, fmt.Errorf("%w: contact email is required", ErrInvalidInput)
	}

	claim := &model.Claim{
		ClaimType:    input.ClaimType,
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		Status:       model.ClaimPending,
	}

	if input.TrackingNumber != "" {
		shipment, err := s.shipments.GetByTrackingNumber(ctx, input.TrackingNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if shipment != nil {
			claim.ShipmentID = &shipment.ID
			claim.ClientID = &shipment.ClientID
		}
	}

	if err := s.claims.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}
	return s.claims.GetClaim(ctx, claim.ID)
}

func (s *ClaimService) UpdateClaimStatus(ctx context.Context, id uuid.UUID, newStatus model.ClaimStatus) (*model.Claim, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown claim status %q", ErrInvalidInput, newStatus)
	}
	claim, err := s.claims.GetClaim(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	claim.Status = newStatus
	claim.Client = nil
	claim.Shipment = nil
	if err := s.claims.UpdateClaim(ctx, claim); err != nil {
		return nil, err
	}
	return s.claims.GetClaim(ctx, claim.ID)
}

func (s *ClaimService) GetClaim(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	claim, err := s.claims.GetClaim(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return claim, nil
}

func (s *ClaimService) ListClaims(ctx context.Context) ([]model.Claim, error) {
	return s.claims.ListClaims(ctx)
}

func (s *ClaimService) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	if _, err := s.claims.GetClaim(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.claims.DeleteClaim(ctx, id)
}
