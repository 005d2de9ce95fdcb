// Package ws contains the HTTP client of the upstream customer web service.
package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"concourse/config"
	"concourse/internal/domain/errors"
	"concourse/internal/domain/service"
)

const (
	webServiceName = "CUSTOMER_WS"

	getCustomerErrorName       = "CUSTOMER_WS_GET_CUSTOMER_ERROR"
	createPreferencesErrorName = "CUSTOMER_WS_CREATE_CUSTOMER_PREFERENCES_ERROR"
	createPreferencesWSName    = "POST CustomerWS"

	defaultLanguage = "fr"
)

// customerWSClient implements service.CustomerClient over plain HTTP.
type customerWSClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCustomerWSClient is the constructor for customerWSClient. Redirects are
// not followed: a 3xx answer from the upstream is a contract violation and
// surfaces as a web service error carrying that status.
func NewCustomerWSClient(cfg *config.Config, logger *slog.Logger) service.CustomerClient {
	wsCfg := cfg.CustomerWS

	return &customerWSClient{
		baseURL: strings.TrimRight(wsCfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: wsCfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: wsCfg.ConnectTimeout,
				}).DialContext,
			},
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

// GetCustomer fetches the raw customer payload. An upstream 404 means the
// customer does not exist and returns (nil, nil); every other non-200
// answer, including redirects, is a WebServiceError mirroring the status.
func (c *customerWSClient) GetCustomer(ctx context.Context, customerID string) (*service.GetCustomerResponse, error) {
	url := c.baseURL + "/" + customerID
	c.logger.Debug("Calling webservice", "method", http.MethodGet, "url", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.getCustomerTransportError(err, customerID)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Error("CustomerWS getCustomer failed", "customerID", customerID, "error", err)

		return nil, c.getCustomerTransportError(err, customerID)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		c.logger.Error("CustomerWS getCustomer failed", "customerID", customerID, "error", err)

		return nil, c.getCustomerTransportError(err, customerID)
	}

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, nil
	case response.StatusCode != http.StatusOK:
		c.logger.Error("CustomerWS getCustomer failed",
			"customerID", customerID, "status", response.StatusCode)

		return nil, errors.NewWebServiceError(getCustomerErrorName, webServiceName, response.StatusCode,
			"Unexpected response from the server while retrieving customer for customerId="+customerID+
				", response="+string(body))
	}

	var payload service.GetCustomerResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("CustomerWS getCustomer failed", "customerID", customerID, "error", err)

		return nil, c.getCustomerTransportError(err, customerID)
	}
	c.logger.Debug("GET CustomerWS retrieved customer", "customerID", payload.ID)

	return &payload, nil
}

// CreateCustomerPreferences proxies a preferences creation upstream. The
// caller's language rides the Accept-Language header, defaulting to French.
func (c *customerWSClient) CreateCustomerPreferences(ctx context.Context, customerID string, request *service.CreateCustomerPreferencesRequest, language string) (*service.CreateCustomerPreferencesResponse, error) {
	url := c.baseURL + "/" + customerID + "/preferences"
	c.logger.Debug("Calling webservice", "method", http.MethodPost, "url", url)

	if language == "" {
		language = defaultLanguage
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, c.createPreferencesTransportError(err, customerID)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, c.createPreferencesTransportError(err, customerID)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("Accept-Language", language)

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		c.logger.Error("CustomerWS createCustomerPreferences failed", "customerID", customerID, "error", err)

		return nil, c.createPreferencesTransportError(err, customerID)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		c.logger.Error("CustomerWS createCustomerPreferences failed", "customerID", customerID, "error", err)

		return nil, c.createPreferencesTransportError(err, customerID)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("CustomerWS createCustomerPreferences failed",
			"customerID", customerID, "status", response.StatusCode)

		return nil, errors.NewWebServiceError(createPreferencesErrorName, createPreferencesWSName, response.StatusCode,
			"Unable to create customer for customerId="+customerID+" "+string(body))
	}

	var payload service.CreateCustomerPreferencesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("CustomerWS createCustomerPreferences failed", "customerID", customerID, "error", err)

		return nil, c.createPreferencesTransportError(err, customerID)
	}
	c.logger.Debug("POST CustomerWS created preferences", "customerID", customerID, "preferencesID", payload.ID)

	return &payload, nil
}

func (c *customerWSClient) getCustomerTransportError(err error, customerID string) error {
	return errors.NewWebServiceError(getCustomerErrorName, webServiceName, http.StatusInternalServerError,
		"Unexpected error : "+err.Error()+" for customerId="+customerID)
}

func (c *customerWSClient) createPreferencesTransportError(err error, customerID string) error {
	return errors.NewWebServiceError(createPreferencesErrorName, createPreferencesWSName, http.StatusInternalServerError,
		"Unexpected error : "+err.Error()+" for customerId="+customerID)
}
