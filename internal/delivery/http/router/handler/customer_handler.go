// Package handler contains the Echo handlers of the customer API.
package handler

import (
	"log/slog"
	"net/http"

	"concourse/config"
	"concourse/internal/delivery/http/middleware"
	"concourse/internal/delivery/http/response"
	"concourse/internal/domain/entity"
	"concourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// GetCustomer returns the authenticated customer's normalized record.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := h.getCustomerID(c)
	if err != nil {
		return err
	}
	h.logger.Info("Getting customer", "customerID", customerID)

	customer, err := h.customerUC.GetCustomerInfo(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(customer), "Customer retrieved successfully")
}

// CreateCustomerPreferences stores a new seating profile for the
// authenticated customer. Depending on deployment config the profile lands
// in the local store or is proxied to the upstream customer service.
func (h *CustomerHandler) CreateCustomerPreferences(c echo.Context) error {
	customerID, err := h.getCustomerID(c)
	if err != nil {
		return err
	}

	var req CreateCustomerPreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	h.logger.Info("Creating customer preferences", "customerID", customerID, "profileName", req.ProfileName)

	input := &usecase.CreateCustomerPreferencesInput{
		SeatPreference:  entity.SeatPreference(req.SeatPreference),
		ClassPreference: req.ClassPreference,
		ProfileName:     req.ProfileName,
		Language:        req.Language,
	}

	var preferences *entity.CustomerPreferences
	if h.cfg.Preferences.Source == config.PreferencesSourceUpstream {
		preferences, err = h.customerUC.CreateCustomerPreferencesUpstream(c.Request().Context(), customerID, input)
	} else {
		preferences, err = h.customerUC.CreateCustomerPreferences(c.Request().Context(), customerID, input)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/customers/preferences/"+preferences.ID)

	return response.Success(c, http.StatusCreated, toPreferencesProfileResponse(preferences), "Preferences profile created successfully")
}

// GetCustomerPreferences lists every profile saved for the authenticated
// customer. A customer without any profile is a 404, not an empty list.
func (h *CustomerHandler) GetCustomerPreferences(c echo.Context) error {
	customerID, err := h.getCustomerID(c)
	if err != nil {
		return err
	}
	h.logger.Info("Getting customer preferences", "customerID", customerID)

	preferences, err := h.customerUC.GetCustomerPreferences(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profiles := make([]CustomerPreferencesProfileResponse, 0, len(preferences))
	for _, profile := range preferences {
		profiles = append(profiles, toPreferencesProfileResponse(profile))
	}

	return response.Success(c, http.StatusOK, CustomerPreferencesResponse{Profiles: profiles},
		"Customer preferences retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func (h *CustomerHandler) getCustomerID(c echo.Context) (string, error) {
	customerID, ok := c.Get(middleware.CustomerIDKey).(string)
	if !ok || customerID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid customer ID in token")
	}

	return customerID, nil
}
