package endpoint

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=../../../mocks --filename=endpoint_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*EndpointDefinition, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EndpointDefinition, error)
	List(ctx context.Context) ([]EndpointDefinition, error)
	Create(ctx context.Context, definition *EndpointDefinition) error
	Update(ctx context.Context, definition *EndpointDefinition) error
	Delete(ctx context.Context, id uuid.UUID) error
}
