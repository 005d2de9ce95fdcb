// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"concourse/internal/domain/entity"
)

// CustomerCacheRepository is the customer snapshot cache. Implementations
// expire entries on their own (bounded TTL); callers never see stale data
// older than that bound.
type CustomerCacheRepository interface {
	// Save stores the customer snapshot under its id. It reports whether the
	// entry was actually stored; callers treat a false or an error as a
	// best-effort miss, not a failure of the overall lookup.
	Save(ctx context.Context, customer *entity.Customer) (bool, error)

	// FindByID retrieves the cached snapshot for the given customer id.
	// A cache miss returns (nil, nil).
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
}
