// Package entity contains the core business objects of the project.
package entity

import "time"

// Customer is the normalized view of an upstream customer record. Every
// field beyond CustomerID is optional; the upstream payload is sparse and
// missing sections simply leave their zero value.
type Customer struct {
	CustomerID     string          `json:"customerId"`
	FirstName      string          `json:"firstName,omitempty"`
	LastName       string          `json:"lastName,omitempty"`
	PhoneNumber    string          `json:"phoneNumber,omitempty"`
	Email          string          `json:"email,omitempty"`
	BirthDate      *time.Time      `json:"birthDate,omitempty"`
	LoyaltyProgram *LoyaltyProgram `json:"loyaltyProgram,omitempty"`
	RailPasses     []RailPass      `json:"railPasses,omitempty"`
}

// LoyaltyProgram is an active loyalty membership. A customer holds at most
// one.
type LoyaltyProgram struct {
	Number            string        `json:"number"`
	Status            LoyaltyStatus `json:"status"`
	StatusRefLabel    string        `json:"statusRefLabel,omitempty"`
	ValidityStartDate *time.Time    `json:"validityStartDate,omitempty"`
	ValidityEndDate   *time.Time    `json:"validityEndDate,omitempty"`
}

// Label returns the human-readable status label, falling back to the raw
// status code when upstream supplied none.
func (p *LoyaltyProgram) Label() string {
	if p.StatusRefLabel != "" {
		return p.StatusRefLabel
	}

	return p.Status.String()
}

// RailPass is an active travel pass. Customers may hold any number of them.
type RailPass struct {
	Number            string     `json:"number"`
	Type              PassType   `json:"type"`
	TypeRefLabel      string     `json:"typeRefLabel,omitempty"`
	ValidityStartDate *time.Time `json:"validityStartDate,omitempty"`
	ValidityEndDate   *time.Time `json:"validityEndDate,omitempty"`
}

// Label returns the human-readable pass label, falling back to the raw
// product code when upstream supplied none.
func (p *RailPass) Label() string {
	if p.TypeRefLabel != "" {
		return p.TypeRefLabel
	}

	return p.Type.String()
}

// LoyaltyStatus is the closed set of loyalty tier codes the upstream system
// emits. Anything else disqualifies the record.
type LoyaltyStatus string

const (
	// LoyaltyStatusCD7F32 is the bronze tier.
	LoyaltyStatusCD7F32 LoyaltyStatus = "CD7F32"
	// LoyaltyStatusE0E0E0 is the silver tier.
	LoyaltyStatusE0E0E0 LoyaltyStatus = "E0E0E0"
	// LoyaltyStatusFFD700 is the gold tier.
	LoyaltyStatusFFD700 LoyaltyStatus = "FFD700"
	// LoyaltyStatusB0B0B0 is the platinum tier.
	LoyaltyStatusB0B0B0 LoyaltyStatus = "B0B0B0"
	// LoyaltyStatus019875 is the emerald tier.
	LoyaltyStatus019875 LoyaltyStatus = "_019875"
	// LoyaltyStatusDBD4E0B38BB3 is the amethyst tier.
	LoyaltyStatusDBD4E0B38BB3 LoyaltyStatus = "DBD4E0_B38BB3"
)

// String returns the string representation of the LoyaltyStatus.
func (s LoyaltyStatus) String() string {
	return string(s)
}

// IsValid checks if the LoyaltyStatus is a valid value.
func (s LoyaltyStatus) IsValid() bool {
	switch s {
	case LoyaltyStatusCD7F32, LoyaltyStatusE0E0E0, LoyaltyStatusFFD700,
		LoyaltyStatusB0B0B0, LoyaltyStatus019875, LoyaltyStatusDBD4E0B38BB3:
		return true
	default:
		return false
	}
}

// PassType is the closed set of rail pass product codes.
type PassType string

const (
	// PassTypeYouth is the youth discount pass.
	PassTypeYouth PassType = "YOUTH"
	// PassTypeFamily is the family pass.
	PassTypeFamily PassType = "FAMILY"
	// PassTypeSenior is the senior pass.
	PassTypeSenior PassType = "SENIOR"
	// PassTypeProSecond is the professional second class pass.
	PassTypeProSecond PassType = "PRO_SECOND"
	// PassTypeProFirst is the professional first class pass.
	PassTypeProFirst PassType = "PRO_FIRST"
	// PassTypeFromOuterSpace is the interplanetary pass.
	PassTypeFromOuterSpace PassType = "FROM_OUTER_SPACE"
)

// String returns the string representation of the PassType.
func (t PassType) String() string {
	return string(t)
}

// IsValid checks if the PassType is a valid value.
func (t PassType) IsValid() bool {
	switch t {
	case PassTypeYouth, PassTypeFamily, PassTypeSenior,
		PassTypeProSecond, PassTypeProFirst, PassTypeFromOuterSpace:
		return true
	default:
		return false
	}
}
