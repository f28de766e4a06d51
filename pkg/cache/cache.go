package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OpenFunnel/ActionGate/pkg/common"
	"github.com/OpenFunnel/ActionGate/pkg/domain/endpoint"
	"github.com/go-redis/redis/v8"
)

const (
	DefinitionKeyPattern = "definition:%s"

	DefinitionTTLName = "definition"
)

// Cache layers an in-process TTL map over redis. Definition reads hit the
// memory layer first; admin writes delete both layers so a toggled
// definition stops serving immediately.
type Cache struct {
	client      *redis.Client
	definitions *common.TTLMap
}

func NewCache(config common.CacheConfig) (*Cache, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}
	client := redis.NewClient(options)

	return NewCacheWithClient(client), nil
}

// NewCacheWithClient wires an existing redis client; tests inject a mock.
func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{
		client:      client,
		definitions: common.NewTTLMap(common.DefinitionCacheTTL),
	}
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

func (c *Cache) SaveDefinition(ctx context.Context, definition *endpoint.EndpointDefinition) error {
	key := fmt.Sprintf(DefinitionKeyPattern, definition.Slug)
	encoded, err := json.Marshal(definition)
	if err != nil {
		return err
	}

	c.definitions.Set(definition.Slug, definition)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Set(ctx, key, string(encoded), common.DefinitionCacheTTL).Err()
}

func (c *Cache) GetDefinition(ctx context.Context, slug string) (*endpoint.EndpointDefinition, error) {
	if cached, found := c.definitions.Get(slug); found {
		if definition, ok := cached.(*endpoint.EndpointDefinition); ok {
			return definition, nil
		}
	}

	key := fmt.Sprintf(DefinitionKeyPattern, slug)
	res, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	definition := new(endpoint.EndpointDefinition)
	if err := json.Unmarshal([]byte(res), definition); err != nil {
		return nil, err
	}
	c.definitions.Set(slug, definition)
	return definition, nil
}

func (c *Cache) DeleteDefinition(ctx context.Context, slug string) error {
	c.definitions.Delete(slug)
	key := fmt.Sprintf(DefinitionKeyPattern, slug)
	return c.client.Del(ctx, key).Err()
}
