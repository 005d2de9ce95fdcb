// Package service defines the interfaces of the external collaborators the
// core depends on, together with the value types they exchange.
package service

import "context"

// CustomerClient is the upstream customer web service. GetCustomer
// distinguishes "the customer does not exist" (nil response, nil error) from
// "the call failed" (a WebServiceError); callers rely on that distinction.
type CustomerClient interface {
	// GetCustomer fetches the raw customer payload by id. A domain-level
	// not-found returns (nil, nil); any other failure returns an error.
	GetCustomer(ctx context.Context, customerID string) (*GetCustomerResponse, error)

	// CreateCustomerPreferences proxies a preferences creation to the
	// upstream service. language is an ISO 639-1 code sent as
	// Accept-Language; empty means the service default.
	CreateCustomerPreferences(ctx context.Context, customerID string, request *CreateCustomerPreferencesRequest, language string) (*CreateCustomerPreferencesResponse, error)
}

// GetCustomerResponse is the raw upstream customer payload. Every section
// besides the id is optional and the misc part is a loosely typed attribute
// bag; the parser owns turning this into a domain Customer.
type GetCustomerResponse struct {
	ID                  string               `json:"id"`
	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty"`
	PersonalDetails     *PersonalDetails     `json:"personalDetails,omitempty"`
	Misc                []Misc               `json:"misc,omitempty"`
}

// PersonalInformation carries the identity section of the payload.
type PersonalInformation struct {
	Civility  *NestedValue `json:"civility,omitempty"`
	FirstName string       `json:"firstName,omitempty"`
	LastName  string       `json:"lastName,omitempty"`
	Birthdate string       `json:"birthdate,omitempty"`
	Alive     *bool        `json:"alive,omitempty"`
}

// PersonalDetails carries the contact section of the payload.
type PersonalDetails struct {
	Email *EmailDetail `json:"email,omitempty"`
	Cell  *CellDetail  `json:"cell,omitempty"`
}

// EmailDetail is the email sub-object of personalDetails.
type EmailDetail struct {
	Address   string       `json:"address,omitempty"`
	Default   bool         `json:"default,omitempty"`
	Confirmed *NestedValue `json:"confirmed,omitempty"`
}

// CellDetail is the cell phone sub-object of personalDetails.
type CellDetail struct {
	Number string `json:"number,omitempty"`
}

// Misc is one group of candidate records tagged with a type marker
// ("LOYALTY", "PASS", ...).
type Misc struct {
	Type    *NestedValue `json:"type,omitempty"`
	Count   int          `json:"count"`
	HasMore bool         `json:"hasMore,omitempty"`
	Records []MiscRecord `json:"records,omitempty"`
}

// MiscRecord is one flat key/value attribute bag representing a candidate
// loyalty program or rail pass.
type MiscRecord struct {
	OtherID string       `json:"otherId,omitempty"`
	Type    *NestedValue `json:"type,omitempty"`
	Fields  []KeyValue   `json:"fields,omitempty"`
}

// KeyValue is one entry of a misc record's attribute bag.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NestedValue is the upstream's wrapper around plain string tags.
type NestedValue struct {
	Value string `json:"value"`
}

// FieldMap folds the record's key/value list into a lookup map, dropping
// entries with a blank key or value. Later duplicates of a key win, matching
// upstream behavior. Build it once per record and read fields off the map.
func (r MiscRecord) FieldMap() map[string]string {
	fields := make(map[string]string, len(r.Fields))
	for _, kv := range r.Fields {
		if kv.Key == "" || kv.Value == "" {
			continue
		}
		fields[kv.Key] = kv.Value
	}

	return fields
}

// TypeValue returns the record group tag, or "" when absent.
func (m Misc) TypeValue() string {
	if m.Type == nil {
		return ""
	}

	return m.Type.Value
}

// TypeValue returns the record tag, or "" when absent.
func (r MiscRecord) TypeValue() string {
	if r.Type == nil {
		return ""
	}

	return r.Type.Value
}

// CreateCustomerPreferencesRequest is the outbound payload for the upstream
// preferences creation endpoint.
type CreateCustomerPreferencesRequest struct {
	SeatPreference  string `json:"seatPreference"`
	ClassPreference int    `json:"classPreference"`
	ProfileName     string `json:"profileName"`
}

// CreateCustomerPreferencesResponse is the upstream's echo of a created
// preferences profile.
type CreateCustomerPreferencesResponse struct {
	ID              string `json:"id"`
	SeatPreference  string `json:"seatPreference"`
	ClassPreference int    `json:"classPreference"`
	ProfileName     string `json:"profileName"`
}
