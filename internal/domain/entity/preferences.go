package entity

// CustomerPreferences is one saved seating profile. A customer accumulates
// profiles over time; nothing ever overwrites an earlier one.
type CustomerPreferences struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	SeatPreference  SeatPreference `json:"seatPreference"`
	ClassPreference int            `json:"classPreference"`
	ProfileName     string         `json:"profileName"`
	Language        string         `json:"language,omitempty"`
}

// SeatPreference is the closed set of seat placement choices.
type SeatPreference string

const (
	// SeatPreferenceNearWindow asks for a window seat.
	SeatPreferenceNearWindow SeatPreference = "NEAR_WINDOW"
	// SeatPreferenceNearCorridor asks for an aisle seat.
	SeatPreferenceNearCorridor SeatPreference = "NEAR_CORRIDOR"
	// SeatPreferenceNone declines to choose.
	SeatPreferenceNone SeatPreference = "NO_PREFERENCE"
)

// String returns the string representation of the SeatPreference.
func (s SeatPreference) String() string {
	return string(s)
}

// IsValid checks if the SeatPreference is a valid value.
func (s SeatPreference) IsValid() bool {
	switch s {
	case SeatPreferenceNearWindow, SeatPreferenceNearCorridor, SeatPreferenceNone:
		return true
	default:
		return false
	}
}
