// Package cache contains the Redis-backed customer snapshot cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"strconv"
	"time"

	"concourse/config"
	"concourse/internal/domain/entity"
	"concourse/internal/domain/lifecycle"
	"concourse/internal/domain/repository"
	"concourse/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// customerKeyspace prefixes every cache key so customer snapshots share a
// namespace distinct from anything else living in the same Redis.
const customerKeyspace = "Customer:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client used by the customer cache,
// wired into the fx lifecycle (ping on start, close on stop).
func NewRedisClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// customerCache implements repository.CustomerCacheRepository on Redis.
type customerCache struct {
	client     *redis.Client
	timeToLive time.Duration
	logger     *slog.Logger
}

// NewCustomerCache is the constructor for customerCache. The TTL comes from
// deployment config, not a constant.
func NewCustomerCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.CustomerCacheRepository {
	return &customerCache{
		client:     client,
		timeToLive: cfg.Cache.CustomerTTL,
		logger:     logger,
	}
}

// Save stores the customer snapshot under its namespaced key with the
// configured TTL. It reports whether Redis accepted the write.
func (c *customerCache) Save(ctx context.Context, customer *entity.Customer) (bool, error) {
	if customer == nil || customer.CustomerID == "" {
		return false, errors.New("customer with a customerId is required")
	}
	c.logger.Debug("Saving customer in cache", "customerID", customer.CustomerID)

	payload, err := marshalCustomer(customer)
	if err != nil {
		return false, err
	}

	if err := c.client.Set(ctx, customerKey(customer.CustomerID), payload, c.timeToLive).Err(); err != nil {
		return false, errors.Wrap(err, "failed to set customer cache entry")
	}

	return true, nil
}

// FindByID retrieves the cached snapshot, returning (nil, nil) on a miss.
func (c *customerCache) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	c.logger.Debug("Looking for customer in cache", "customerID", id)

	payload, err := c.client.Get(ctx, customerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get customer cache entry")
	}

	return unmarshalCustomer(payload)
}

func customerKey(id string) string {
	return customerKeyspace + id
}

func marshalCustomer(customer *entity.Customer) ([]byte, error) {
	payload, err := json.Marshal(customer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal customer")
	}

	return payload, nil
}

func unmarshalCustomer(payload []byte) (*entity.Customer, error) {
	var customer entity.Customer
	if err := json.Unmarshal(payload, &customer); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cached customer")
	}

	return &customer, nil
}
