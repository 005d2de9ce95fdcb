// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"concourse/internal/domain/entity"
	domainerrors "concourse/internal/domain/errors"
	"concourse/internal/domain/repository"
	"concourse/internal/domain/service"
	"concourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	client    service.CustomerClient
	cache     repository.CustomerCacheRepository
	prefsRepo repository.CustomerPreferencesRepository
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	client service.CustomerClient,
	cache repository.CustomerCacheRepository,
	prefsRepo repository.CustomerPreferencesRepository,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		client:    client,
		cache:     cache,
		prefsRepo: prefsRepo,
		logger:    logger,
	}
}

// GetCustomerInfo resolves a customer with cache-aside semantics. The
// upstream call happens only on an actual cache miss, never alongside the
// cache lookup; concurrent misses for the same id may each call upstream and
// each write the cache, last write wins.
func (srv *customerService) GetCustomerInfo(ctx context.Context, customerID string) (*entity.Customer, error) {
	srv.logger.Debug("Getting customer", "customerID", customerID)

	cached, err := srv.cache.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read customer cache")
	}
	if cached != nil {
		return cached, nil
	}

	return srv.fetchAndCacheCustomer(ctx, customerID)
}

// fetchAndCacheCustomer performs the single upstream fetch of a cache miss,
// normalizes the payload and writes the snapshot back. The cache write is
// best effort: a refused or failed write is logged and the fresh customer is
// returned anyway.
func (srv *customerService) fetchAndCacheCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	response, err := srv.client.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch customer upstream")
	}
	if response == nil {
		return nil, errors.WithStack(domainerrors.NewNotFoundError(customerID, "customer"))
	}

	customer := toCustomer(response)

	saved, err := srv.cache.Save(ctx, customer)
	switch {
	case err != nil:
		srv.logger.Error("failed to save customer in cache", "customerID", customer.CustomerID, "error", err)
	case !saved:
		srv.logger.Error("could not save customer in cache", "customerID", customer.CustomerID)
	default:
		srv.logger.Debug("customer saved in cache", "customerID", customer.CustomerID)
	}

	return customer, nil
}

// CreateCustomerPreferences stores a new seating profile in the local store.
// Profiles are append-only: a fresh id is generated and the row is inserted
// unconditionally.
func (srv *customerService) CreateCustomerPreferences(ctx context.Context, customerID string, input *usecase.CreateCustomerPreferencesInput) (*entity.CustomerPreferences, error) {
	srv.logger.Debug("Creating customer preferences",
		"customerID", customerID,
		"seatPreference", input.SeatPreference,
		"classPreference", input.ClassPreference,
		"profileName", input.ProfileName,
		"language", input.Language,
	)

	preferences := &entity.CustomerPreferences{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		SeatPreference:  input.SeatPreference,
		ClassPreference: input.ClassPreference,
		ProfileName:     input.ProfileName,
		Language:        input.Language,
	}

	stored, err := srv.prefsRepo.Save(ctx, preferences)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save customer preferences")
	}

	return stored, nil
}

// CreateCustomerPreferencesUpstream forwards the profile creation to the
// upstream customer web service instead of the local store.
func (srv *customerService) CreateCustomerPreferencesUpstream(ctx context.Context, customerID string, input *usecase.CreateCustomerPreferencesInput) (*entity.CustomerPreferences, error) {
	srv.logger.Debug("Creating customer preferences upstream",
		"customerID", customerID,
		"profileName", input.ProfileName,
	)

	request := &service.CreateCustomerPreferencesRequest{
		SeatPreference:  input.SeatPreference.String(),
		ClassPreference: input.ClassPreference,
		ProfileName:     input.ProfileName,
	}

	response, err := srv.client.CreateCustomerPreferences(ctx, customerID, request, input.Language)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer preferences upstream")
	}

	seatPreference := entity.SeatPreference(response.SeatPreference)
	if !seatPreference.IsValid() {
		return nil, errors.Errorf("upstream returned unknown seat preference %q", response.SeatPreference)
	}

	return &entity.CustomerPreferences{
		ID:              response.ID,
		CustomerID:      customerID,
		SeatPreference:  seatPreference,
		ClassPreference: response.ClassPreference,
		ProfileName:     response.ProfileName,
		Language:        input.Language,
	}, nil
}

// GetCustomerPreferences lists every profile stored for the customer.
func (srv *customerService) GetCustomerPreferences(ctx context.Context, customerID string) ([]*entity.CustomerPreferences, error) {
	srv.logger.Debug("Getting customer preferences", "customerID", customerID)

	preferences, err := srv.prefsRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer preferences")
	}
	if len(preferences) == 0 {
		return nil, errors.WithStack(domainerrors.NewNotFoundError(customerID, "customer"))
	}

	return preferences, nil
}
