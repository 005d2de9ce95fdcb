package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"concourse/config"
	"concourse/internal/delivery/http/middleware"
	"concourse/internal/delivery/http/validator"
	"concourse/internal/domain/entity"
	domainerrors "concourse/internal/domain/errors"
	mockUsecase "concourse/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerHandlerFixtures holds all test dependencies for customer handler tests.
type customerHandlerFixtures struct {
	handler    *CustomerHandler
	customerUC *mockUsecase.MockCustomerUsecase
	echo       *echo.Echo
	cfg        *config.Config
}

func createTestCustomerHandler(t *testing.T) customerHandlerFixtures {
	customerUC := mockUsecase.NewMockCustomerUsecase(t)
	cfg := &config.Config{}
	cfg.Preferences.Source = config.PreferencesSourceLocal
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewCustomerHandler(CustomerHandlerParams{
		CustomerUC: customerUC,
		Config:     cfg,
		Logger:     logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return customerHandlerFixtures{
		handler:    h,
		customerUC: customerUC,
		echo:       e,
		cfg:        cfg,
	}
}

func newAuthenticatedContext(fx customerHandlerFixtures, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set(middleware.CustomerIDKey, "cust-1")

	return c, rec
}

func TestCustomerHandler_GetCustomer_OK(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		GetCustomerInfo(mock.Anything, "cust-1").
		Return(&entity.Customer{CustomerID: "cust-1", FirstName: "Elliot"}, nil)

	c, rec := newAuthenticatedContext(fx, http.MethodGet, "/customers", "")

	require.NoError(t, fx.handler.GetCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool             `json:"success"`
		Data    CustomerResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "cust-1", body.Data.CustomerID)
	assert.Equal(t, "Elliot", body.Data.FirstName)
}

func TestCustomerHandler_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		GetCustomerInfo(mock.Anything, "cust-1").
		Return(nil, domainerrors.NewNotFoundError("cust-1", "customer"))

	c, rec := newAuthenticatedContext(fx, http.MethodGet, "/customers", "")

	require.NoError(t, fx.handler.GetCustomer(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No result for the given customer id=cust-1")
}

func TestCustomerHandler_GetCustomer_MirrorsUpstreamStatus(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		GetCustomerInfo(mock.Anything, "cust-1").
		Return(nil, domainerrors.NewWebServiceError("CUSTOMER_WS_GET_CUSTOMER_ERROR", "CUSTOMER_WS",
			http.StatusServiceUnavailable, "upstream down"))

	c, rec := newAuthenticatedContext(fx, http.MethodGet, "/customers", "")

	require.NoError(t, fx.handler.GetCustomer(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "CUSTOMER_WS_GET_CUSTOMER_ERROR")
}

func TestCustomerHandler_CreateCustomerPreferences_Created(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		CreateCustomerPreferences(mock.Anything, "cust-1", mock.AnythingOfType("*usecase.CreateCustomerPreferencesInput")).
		Return(&entity.CustomerPreferences{
			ID:              "pref-1",
			CustomerID:      "cust-1",
			SeatPreference:  entity.SeatPreferenceNearWindow,
			ClassPreference: 1,
			ProfileName:     "commute",
		}, nil)

	c, rec := newAuthenticatedContext(fx, http.MethodPost, "/customers/preferences",
		`{"seatPreference":"NEAR_WINDOW","classPreference":1,"profileName":"commute"}`)

	require.NoError(t, fx.handler.CreateCustomerPreferences(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/customers/preferences/pref-1", rec.Header().Get(echo.HeaderLocation))
}

func TestCustomerHandler_CreateCustomerPreferences_UpstreamSource(t *testing.T) {
	fx := createTestCustomerHandler(t)
	fx.cfg.Preferences.Source = config.PreferencesSourceUpstream

	fx.customerUC.EXPECT().
		CreateCustomerPreferencesUpstream(mock.Anything, "cust-1", mock.AnythingOfType("*usecase.CreateCustomerPreferencesInput")).
		Return(&entity.CustomerPreferences{ID: "pref-1", CustomerID: "cust-1", SeatPreference: entity.SeatPreferenceNone, ClassPreference: 2, ProfileName: "p"}, nil)

	c, rec := newAuthenticatedContext(fx, http.MethodPost, "/customers/preferences",
		`{"seatPreference":"NO_PREFERENCE","classPreference":2,"profileName":"p"}`)

	require.NoError(t, fx.handler.CreateCustomerPreferences(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerHandler_CreateCustomerPreferences_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown seat preference", body: `{"seatPreference":"ON_THE_ROOF","classPreference":1,"profileName":"p"}`},
		{name: "class out of range", body: `{"seatPreference":"NEAR_WINDOW","classPreference":3,"profileName":"p"}`},
		{name: "missing profile name", body: `{"seatPreference":"NEAR_WINDOW","classPreference":1}`},
		{name: "profile name with digits", body: `{"seatPreference":"NEAR_WINDOW","classPreference":1,"profileName":"profile 66"}`},
		{name: "unknown language", body: `{"seatPreference":"NEAR_WINDOW","classPreference":1,"profileName":"p","language":"klingon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerHandler(t)
			c, rec := newAuthenticatedContext(fx, http.MethodPost, "/customers/preferences", tt.body)

			require.NoError(t, fx.handler.CreateCustomerPreferences(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			fx.customerUC.AssertNotCalled(t, "CreateCustomerPreferences")
		})
	}
}

func TestCustomerHandler_GetCustomerPreferences_OK(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		GetCustomerPreferences(mock.Anything, "cust-1").
		Return([]*entity.CustomerPreferences{
			{ID: "a", CustomerID: "cust-1", SeatPreference: entity.SeatPreferenceNearWindow, ClassPreference: 1, ProfileName: "one"},
			{ID: "b", CustomerID: "cust-1", SeatPreference: entity.SeatPreferenceNone, ClassPreference: 2, ProfileName: "two"},
		}, nil)

	c, rec := newAuthenticatedContext(fx, http.MethodGet, "/customers/preferences", "")

	require.NoError(t, fx.handler.GetCustomerPreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data CustomerPreferencesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Profiles, 2)
	assert.Equal(t, "a", body.Data.Profiles[0].ID)
	assert.Equal(t, "b", body.Data.Profiles[1].ID)
}

func TestCustomerHandler_GetCustomerPreferences_NoneIsNotFound(t *testing.T) {
	fx := createTestCustomerHandler(t)

	fx.customerUC.EXPECT().
		GetCustomerPreferences(mock.Anything, "cust-1").
		Return(nil, domainerrors.NewNotFoundError("cust-1", "customer"))

	c, rec := newAuthenticatedContext(fx, http.MethodGet, "/customers/preferences", "")

	require.NoError(t, fx.handler.GetCustomerPreferences(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
