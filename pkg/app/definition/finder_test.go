package definition

import (
	"context"
	"testing"

	"github.com/OpenFunnel/ActionGate/mocks"
	"github.com/OpenFunnel/ActionGate/pkg/cache"
	"github.com/OpenFunnel/ActionGate/pkg/domain"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestCache() *cache.Cache {
	client, _ := redismock.NewClientMock()
	return cache.NewCacheWithClient(client)
}

func TestFindBySlug_CachesRepositoryHit(t *testing.T) {
	def := &endpoint.EndpointDefinition{Slug: "ping", Kind: endpoint.EndpointKind, Status: endpoint.StatusActive}
	repo := mocks.NewRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "ping").Return(def, nil).Once()

	f := NewFinder(repo, newTestCache(), logrus.New())

	got, err := f.FindBySlug(context.Background(), "ping")
	assert.NoError(t, err)
	assert.Equal(t, def, got)

	// second lookup is served from the memory layer
	got, err = f.FindBySlug(context.Background(), "ping")
	assert.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestFindBySlug_RepositoryMiss(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, domain.ErrDefinitionNotFound)

	f := NewFinder(repo, newTestCache(), logrus.New())

	got, err := f.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	assert.Nil(t, got)
}

func TestInvalidate_ForcesRepositoryReload(t *testing.T) {
	def := &endpoint.EndpointDefinition{Slug: "ping", Kind: endpoint.EndpointKind, Status: endpoint.StatusActive}
	repo := mocks.NewRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "ping").Return(def, nil).Twice()

	f := NewFinder(repo, newTestCache(), logrus.New())

	_, err := f.FindBySlug(context.Background(), "ping")
	assert.NoError(t, err)

	f.Invalidate(context.Background(), "ping")

	_, err = f.FindBySlug(context.Background(), "ping")
	assert.NoError(t, err)
}
