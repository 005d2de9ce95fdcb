package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"concourse/internal/domain/entity"
	domainerrors "concourse/internal/domain/errors"
	"concourse/internal/domain/service"
	mockRepo "concourse/internal/mocks/repository"
	mockService "concourse/internal/mocks/service"
	"concourse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service   usecase.CustomerUsecase
	client    *mockService.MockCustomerClient
	cache     *mockRepo.MockCustomerCacheRepository
	prefsRepo *mockRepo.MockCustomerPreferencesRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	client := mockService.NewMockCustomerClient(t)
	cache := mockRepo.NewMockCustomerCacheRepository(t)
	prefsRepo := mockRepo.NewMockCustomerPreferencesRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCustomerService(client, cache, prefsRepo, logger)

	return customerServiceFixtures{
		service:   svc,
		client:    client,
		cache:     cache,
		prefsRepo: prefsRepo,
	}
}

func TestCustomerService_GetCustomerInfo_CacheHitSkipsUpstream(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	cached := &entity.Customer{CustomerID: "cached-id", FirstName: "Darlene"}

	fx.cache.EXPECT().FindByID(ctx, "cached-id").Return(cached, nil)

	customer, err := fx.service.GetCustomerInfo(ctx, "cached-id")

	require.NoError(t, err)
	assert.Equal(t, cached, customer)
	fx.client.AssertNotCalled(t, "GetCustomer")
}

func TestCustomerService_GetCustomerInfo_CacheMissFetchesOnceAndSaves(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	response := &service.GetCustomerResponse{
		ID: "miss-id",
		PersonalInformation: &service.PersonalInformation{
			FirstName: "Angela",
			LastName:  "Moss",
		},
	}

	fx.cache.EXPECT().FindByID(ctx, "miss-id").Return(nil, nil)
	fx.client.EXPECT().GetCustomer(ctx, "miss-id").Return(response, nil).Once()
	fx.cache.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Customer")).Return(true, nil).Once()

	customer, err := fx.service.GetCustomerInfo(ctx, "miss-id")

	require.NoError(t, err)
	assert.Equal(t, "miss-id", customer.CustomerID)
	assert.Equal(t, "Angela", customer.FirstName)
}

func TestCustomerService_GetCustomerInfo_NotFoundAnywhere(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.cache.EXPECT().FindByID(ctx, "ghost").Return(nil, nil)
	fx.client.EXPECT().GetCustomer(ctx, "ghost").Return(nil, nil)

	customer, err := fx.service.GetCustomerInfo(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, customer)

	var notFound *domainerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No result for the given customer id=ghost", notFound.Error())
}

func TestCustomerService_GetCustomerInfo_CacheReadErrorPropagates(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.cache.EXPECT().FindByID(ctx, "id").Return(nil, errors.New("redis gone"))

	customer, err := fx.service.GetCustomerInfo(ctx, "id")

	require.Error(t, err)
	assert.Nil(t, customer)
	fx.client.AssertNotCalled(t, "GetCustomer")
}

func TestCustomerService_GetCustomerInfo_CacheSaveFailureIsSwallowed(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	response := &service.GetCustomerResponse{ID: "id"}

	fx.cache.EXPECT().FindByID(ctx, "id").Return(nil, nil)
	fx.client.EXPECT().GetCustomer(ctx, "id").Return(response, nil)
	fx.cache.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Customer")).Return(false, errors.New("write refused"))

	customer, err := fx.service.GetCustomerInfo(ctx, "id")

	require.NoError(t, err)
	assert.Equal(t, "id", customer.CustomerID)
}

func TestCustomerService_GetCustomerInfo_UpstreamErrorPropagates(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	wsErr := domainerrors.NewWebServiceError("CUSTOMER_WS_GET_CUSTOMER_ERROR", "CUSTOMER_WS", 503, "boom")

	fx.cache.EXPECT().FindByID(ctx, "id").Return(nil, nil)
	fx.client.EXPECT().GetCustomer(ctx, "id").Return(nil, wsErr)

	customer, err := fx.service.GetCustomerInfo(ctx, "id")

	require.Error(t, err)
	assert.Nil(t, customer)

	var target *domainerrors.WebServiceError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 503, target.HTTPCode())
}

func TestCustomerService_CreateCustomerPreferences_AppendsWithFreshID(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerPreferencesInput{
		SeatPreference:  entity.SeatPreferenceNearWindow,
		ClassPreference: 1,
		ProfileName:     "commute",
		Language:        "fr",
	}

	fx.prefsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CustomerPreferences")).
		RunAndReturn(func(_ context.Context, preferences *entity.CustomerPreferences) (*entity.CustomerPreferences, error) {
			assert.NotEmpty(t, preferences.ID)
			assert.Equal(t, "cust-1", preferences.CustomerID)
			assert.Equal(t, entity.SeatPreferenceNearWindow, preferences.SeatPreference)
			assert.Equal(t, 1, preferences.ClassPreference)
			assert.Equal(t, "commute", preferences.ProfileName)

			return preferences, nil
		})

	stored, err := fx.service.CreateCustomerPreferences(ctx, "cust-1", input)

	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
}

func TestCustomerService_CreateCustomerPreferences_TwiceYieldsDistinctIDs(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerPreferencesInput{
		SeatPreference:  entity.SeatPreferenceNone,
		ClassPreference: 2,
		ProfileName:     "weekend",
	}

	fx.prefsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CustomerPreferences")).
		RunAndReturn(func(_ context.Context, preferences *entity.CustomerPreferences) (*entity.CustomerPreferences, error) {
			return preferences, nil
		}).
		Times(2)

	first, err := fx.service.CreateCustomerPreferences(ctx, "cust-1", input)
	require.NoError(t, err)
	second, err := fx.service.CreateCustomerPreferences(ctx, "cust-1", input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCustomerService_CreateCustomerPreferencesUpstream(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerPreferencesInput{
		SeatPreference:  entity.SeatPreferenceNearCorridor,
		ClassPreference: 2,
		ProfileName:     "work",
		Language:        "de",
	}

	fx.client.EXPECT().
		CreateCustomerPreferences(ctx, "cust-1", &service.CreateCustomerPreferencesRequest{
			SeatPreference:  "NEAR_CORRIDOR",
			ClassPreference: 2,
			ProfileName:     "work",
		}, "de").
		Return(&service.CreateCustomerPreferencesResponse{
			ID:              "upstream-id",
			SeatPreference:  "NEAR_CORRIDOR",
			ClassPreference: 2,
			ProfileName:     "work",
		}, nil)

	stored, err := fx.service.CreateCustomerPreferencesUpstream(ctx, "cust-1", input)

	require.NoError(t, err)
	assert.Equal(t, "upstream-id", stored.ID)
	assert.Equal(t, entity.SeatPreferenceNearCorridor, stored.SeatPreference)
	assert.Equal(t, "de", stored.Language)
}

func TestCustomerService_CreateCustomerPreferencesUpstream_RejectsUnknownSeat(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerPreferencesInput{
		SeatPreference:  entity.SeatPreferenceNone,
		ClassPreference: 1,
		ProfileName:     "odd",
	}

	fx.client.EXPECT().
		CreateCustomerPreferences(ctx, "cust-1", mock.AnythingOfType("*service.CreateCustomerPreferencesRequest"), "").
		Return(&service.CreateCustomerPreferencesResponse{ID: "x", SeatPreference: "ON_THE_ROOF"}, nil)

	stored, err := fx.service.CreateCustomerPreferencesUpstream(ctx, "cust-1", input)

	require.Error(t, err)
	assert.Nil(t, stored)
}

func TestCustomerService_GetCustomerPreferences(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	profiles := []*entity.CustomerPreferences{
		{ID: "a", CustomerID: "cust-1", SeatPreference: entity.SeatPreferenceNearWindow, ClassPreference: 1, ProfileName: "one"},
		{ID: "b", CustomerID: "cust-1", SeatPreference: entity.SeatPreferenceNone, ClassPreference: 2, ProfileName: "two"},
	}

	fx.prefsRepo.EXPECT().FindByCustomerID(ctx, "cust-1").Return(profiles, nil)

	found, err := fx.service.GetCustomerPreferences(ctx, "cust-1")

	require.NoError(t, err)
	assert.Equal(t, profiles, found)
}

func TestCustomerService_GetCustomerPreferences_EmptyIsNotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.prefsRepo.EXPECT().FindByCustomerID(ctx, "cust-1").Return(nil, nil)

	found, err := fx.service.GetCustomerPreferences(ctx, "cust-1")

	require.Error(t, err)
	assert.Nil(t, found)

	var notFound *domainerrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
