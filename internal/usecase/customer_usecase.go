// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"concourse/internal/domain/entity"
)

// CustomerUsecase defines the customer-facing business operations.
type CustomerUsecase interface {
	// GetCustomerInfo resolves the customer profile with cache-aside
	// semantics: cache first, one upstream fetch on miss, best-effort cache
	// write. Fails with a NotFoundError when the customer exists nowhere.
	GetCustomerInfo(ctx context.Context, customerID string) (*entity.Customer, error)

	// CreateCustomerPreferences stores a new seating profile with a fresh id.
	// Profiles always append; creating twice yields two entries.
	CreateCustomerPreferences(ctx context.Context, customerID string, input *CreateCustomerPreferencesInput) (*entity.CustomerPreferences, error)

	// CreateCustomerPreferencesUpstream forwards the profile creation to the
	// upstream customer web service instead of the local store.
	CreateCustomerPreferencesUpstream(ctx context.Context, customerID string, input *CreateCustomerPreferencesInput) (*entity.CustomerPreferences, error)

	// GetCustomerPreferences lists every profile stored for the customer.
	// Fails with a NotFoundError when there are none.
	GetCustomerPreferences(ctx context.Context, customerID string) ([]*entity.CustomerPreferences, error)
}

// --- Input DTOs ---

// CreateCustomerPreferencesInput defines the data required to save a new
// seating profile.
type CreateCustomerPreferencesInput struct {
	SeatPreference  entity.SeatPreference
	ClassPreference int
	ProfileName     string
	Language        string
}
