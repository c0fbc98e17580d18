package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
)

type ClaimRepository interface {
	CreateIncident(ctx context.Context, incident *model.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*model.Incident, error)
	ListIncidents(ctx context.Context) ([]model.Incident, error)
	UpdateIncident(ctx context.Context, incident *model.Incident) error
	DeleteIncident(ctx context.Context, id uuid.UUID) error

	CreateClaim(ctx context.Context, claim *model.Claim) error
	GetClaim(ctx context.Context, id uuid.UUID) (*model.Claim, error)
	ListClaims(ctx context.Context) ([]model.Claim, error)
	UpdateClaim(ctx context.Context, claim *model.Claim) error
	DeleteClaim(ctx context.Context, id uuid.UUID) error
}

type claimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) CreateIncident(ctx context.Context, incident *model.Incident) error {
	return r.db.WithContext(ctx).Omit("Shipment").Create(incident).Error
}

func (r *claimRepository) GetIncident(ctx context.Context, id uuid.UUID) (*model.Incident, error) {
	var incident model.Incident
	err := r.db.WithContext(ctx).
		Preload("Shipment").
		First(&incident, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

func (r *claimRepository) ListIncidents(ctx context.Context) ([]model.Incident, error) {
	var incidents []model.Incident
	err := r.db.WithContext(ctx).
		Preload("Shipment").
		Order("created_at DESC").
		Find(&incidents).Error
	return incidents, err
}

func (r *claimRepository) UpdateIncident(ctx context.Context, incident *model.Incident) error {
	return r.db.WithContext(ctx).Omit("Shipment").Save(incident).Error
}

func (r *claimRepository) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Incident{}, "id = ?", id).Error
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *model.Claim) error {
	return r.db.WithContext(ctx).Omit("Client", "Shipment").Create(claim).Error
}

func (r *claimRepository) GetClaim(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	var claim model.Claim
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Shipment").
		First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) ListClaims(ctx context.Context) ([]model.Claim, error) {
	var claims []model.Claim
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Shipment").
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *claimRepository) UpdateClaim(ctx context.Context, claim *model.Claim) error {
	return r.db.WithContext(ctx).Omit("Client", "Shipment").Save(claim).Error
}

func (r *claimRepository) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Claim{}, "id = ?", id).Error
}
