package definition

import (
	"context"

	"github.com/OpenFunnel/ActionGate/pkg/cache"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=../../../mocks --filename=definition_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	FindBySlug(ctx context.Context, slug string) (*endpoint.EndpointDefinition, error)
	Invalidate(ctx context.Context, slug string)
}

type finder struct {
	repo   endpoint.Repository
	cache  *cache.Cache
	logger *logrus.Logger
}

func NewFinder(
	repository endpoint.Repository,
	c *cache.Cache,
	logger *logrus.Logger,
) Finder {
	return &finder{
		repo:   repository,
		cache:  c,
		logger: logger,
	}
}

// FindBySlug resolves a definition through the cache layers. Admin writes
// invalidate both layers, so a status toggle takes effect on the next
// request even within the cache TTL.
func (f *finder) FindBySlug(ctx context.Context, slug string) (*endpoint.EndpointDefinition, error) {
	if cached, err := f.cache.GetDefinition(ctx, slug); err == nil && cached != nil {
		return cached, nil
	}

	definition, err := f.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := f.cache.SaveDefinition(ctx, definition); err != nil {
		f.logger.WithError(err).WithField("slug", slug).Warn("failed to cache definition")
	}
	return definition, nil
}

func (f *finder) Invalidate(ctx context.Context, slug string) {
	if err := f.cache.DeleteDefinition(ctx, slug); err != nil {
		f.logger.WithError(err).WithField("slug", slug).Warn("failed to invalidate definition cache")
	}
}
