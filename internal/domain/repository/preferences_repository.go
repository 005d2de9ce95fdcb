package repository

import (
	"context"

	"concourse/internal/domain/entity"
)

// CustomerPreferencesRepository stores seating profiles. Save always inserts;
// there is no upsert and no pre-existence check, new profiles append.
type CustomerPreferencesRepository interface {
	// Save persists a new preferences profile and returns the stored entity.
	Save(ctx context.Context, preferences *entity.CustomerPreferences) (*entity.CustomerPreferences, error)

	// FindByCustomerID retrieves every profile saved for the given customer,
	// oldest first. An unknown customer yields an empty slice, not an error.
	FindByCustomerID(ctx context.Context, customerID string) ([]*entity.CustomerPreferences, error)
}
