package repository

import (
	"context"
	"errors"

	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type endpointRepository struct {
	db *gorm.DB
}

func NewEndpointRepository(db *gorm.DB) endpoint.Repository {
	return &endpointRepository{db: db}
}

func (r *endpointRepository) GetBySlug(ctx context.Context, slug string) (*endpoint.EndpointDefinition, error) {
	var definition endpoint.EndpointDefinition
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDefinitionNotFound
		}
		return nil, err
	}
	return &definition, nil
}

func (r *endpointRepository) GetByID(ctx context.Context, id uuid.UUID) (*endpoint.EndpointDefinition, error) {
	var definition endpoint.EndpointDefinition
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDefinitionNotFound
		}
		return nil, err
	}
	return &definition, nil
}

func (r *endpointRepository) List(ctx context.Context) ([]endpoint.EndpointDefinition, error) {
	var definitions []endpoint.EndpointDefinition
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&definitions).Error; err != nil {
		return nil, err
	}
	return definitions, nil
}

func (r *endpointRepository) Create(ctx context.Context, definition *endpoint.EndpointDefinition) error {
	return r.db.WithContext(ctx).Create(definition).Error
}

func (r *endpointRepository) Update(ctx context.Context, definition *endpoint.EndpointDefinition) error {
	result := r.db.WithContext(ctx).Save(definition)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDefinitionNotFound
	}
	return nil
}

func (r *endpointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&endpoint.EndpointDefinition{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDefinitionNotFound
	}
	return nil
}
