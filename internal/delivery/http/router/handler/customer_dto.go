package handler

import (
	"time"

	"concourse/internal/domain/entity"
)

const responseDateLayout = "2006-01-02"

// CreateCustomerPreferencesRequest represents the request body for creating a preferences profile
type CreateCustomerPreferencesRequest struct {
	SeatPreference  string `json:"seatPreference" validate:"required,oneof=NEAR_WINDOW NEAR_CORRIDOR NO_PREFERENCE"`
	ClassPreference int    `json:"classPreference" validate:"required,min=1,max=2"`
	ProfileName     string `json:"profileName" validate:"required,max=50,profilename"`
	Language        string `json:"language" validate:"omitempty,oneof=fr de es en it pt"`
}

// CustomerResponse is the API view of a customer. BirthDate is surfaced as a
// computed age, never as the raw date.
type CustomerResponse struct {
	CustomerID     string                  `json:"customerId"`
	FirstName      string                  `json:"firstName,omitempty"`
	LastName       string                  `json:"lastName,omitempty"`
	Age            *int                    `json:"age,omitempty"`
	PhoneNumber    string                  `json:"phoneNumber,omitempty"`
	Email          string                  `json:"email,omitempty"`
	LoyaltyProgram *LoyaltyProgramResponse `json:"loyaltyProgram,omitempty"`
	RailPasses     []RailPassResponse      `json:"railPasses,omitempty"`
}

// LoyaltyProgramResponse is the API view of an active loyalty program.
type LoyaltyProgramResponse struct {
	Number            string `json:"number"`
	Label             string `json:"label"`
	ValidityStartDate string `json:"validityStartDate,omitempty"`
	ValidityEndDate   string `json:"validityEndDate,omitempty"`
}

// RailPassResponse is the API view of an active rail pass.
type RailPassResponse struct {
	Number            string `json:"number"`
	Label             string `json:"label"`
	ValidityStartDate string `json:"validityStartDate,omitempty"`
	ValidityEndDate   string `json:"validityEndDate,omitempty"`
}

// CustomerPreferencesResponse lists every saved profile of a customer.
type CustomerPreferencesResponse struct {
	Profiles []CustomerPreferencesProfileResponse `json:"profiles"`
}

// CustomerPreferencesProfileResponse is the API view of one saved profile.
type CustomerPreferencesProfileResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	SeatPreference  string `json:"seatPreference"`
	ClassPreference int    `json:"classPreference"`
	ProfileName     string `json:"profileName"`
	Language        string `json:"language,omitempty"`
}

// toCustomerResponse maps a domain customer to its API view.
func toCustomerResponse(customer *entity.Customer) CustomerResponse {
	response := CustomerResponse{
		CustomerID:  customer.CustomerID,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Age:         ageFromBirthDate(customer.BirthDate, time.Now()),
		PhoneNumber: customer.PhoneNumber,
		Email:       customer.Email,
	}

	if program := customer.LoyaltyProgram; program != nil {
		response.LoyaltyProgram = &LoyaltyProgramResponse{
			Number:            program.Number,
			Label:             program.Label(),
			ValidityStartDate: formatDate(program.ValidityStartDate),
			ValidityEndDate:   formatDate(program.ValidityEndDate),
		}
	}

	for _, pass := range customer.RailPasses {
		response.RailPasses = append(response.RailPasses, RailPassResponse{
			Number:            pass.Number,
			Label:             pass.Label(),
			ValidityStartDate: formatDate(pass.ValidityStartDate),
			ValidityEndDate:   formatDate(pass.ValidityEndDate),
		})
	}

	return response
}

// toPreferencesProfileResponse maps one stored profile to its API view.
func toPreferencesProfileResponse(preferences *entity.CustomerPreferences) CustomerPreferencesProfileResponse {
	return CustomerPreferencesProfileResponse{
		ID:              preferences.ID,
		CustomerID:      preferences.CustomerID,
		SeatPreference:  preferences.SeatPreference.String(),
		ClassPreference: preferences.ClassPreference,
		ProfileName:     preferences.ProfileName,
		Language:        preferences.Language,
	}
}

// ageFromBirthDate computes full years between the birth date and now.
func ageFromBirthDate(birthDate *time.Time, now time.Time) *int {
	if birthDate == nil {
		return nil
	}

	age := now.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}

	return &age
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return date.Format(responseDateLayout)
}
