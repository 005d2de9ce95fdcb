package impl

import (
	"time"

	"concourse/internal/domain/entity"
	"concourse/internal/domain/service"
)

// Field markers of the upstream misc attribute bags. The upstream data is
// semi-structured and frequently inconsistent, so records missing any
// required field, carrying an unknown code, or not flagged active are
// silently dropped rather than reported.
const (
	loyaltyProgramType        = "LOYALTY"
	loyaltyNumberField        = "loyalty_number"
	loyaltyStatusField        = "loyalty_status"
	loyaltyLabelField         = "loyalty_status_label"
	loyaltyValidityStartField = "validity_start"
	loyaltyValidityEndField   = "validity_end"
	loyaltyDisableStatusField = "disable_status"

	railPassType           = "PASS"
	passNumberField        = "pass_number"
	passProductCodeField   = "new_product_code"
	passProductLabelField  = "pass_label"
	passValidityStartField = "pass_validity_start"
	passValidityEndField   = "pass_validity_end"
	passActiveStatusField  = "pass_is_active"

	activeFieldValue = "000"

	wsDateLayout = "2006-01-02"
)

// toCustomer normalizes one raw upstream payload into a domain Customer.
// It never fails: every optional section degrades to its zero value.
func toCustomer(response *service.GetCustomerResponse) *entity.Customer {
	customer := &entity.Customer{
		CustomerID: response.ID,
	}

	if info := response.PersonalInformation; info != nil {
		customer.FirstName = info.FirstName
		customer.LastName = info.LastName
		customer.BirthDate = parseDateOrNil(info.Birthdate)
	}

	if details := response.PersonalDetails; details != nil {
		if details.Email != nil {
			customer.Email = details.Email.Address
		}
		if details.Cell != nil {
			customer.PhoneNumber = details.Cell.Number
		}
	}

	customer.LoyaltyProgram = firstLoyaltyProgram(response.Misc)
	customer.RailPasses = collectRailPasses(response.Misc)

	return customer
}

// firstLoyaltyProgram scans the misc groups tagged as loyalty and returns
// the first record passing the active gate, in encounter order. Customers
// hold at most one loyalty program; when upstream reports several valid
// ones, the first wins.
func firstLoyaltyProgram(groups []service.Misc) *entity.LoyaltyProgram {
	for _, group := range groups {
		if group.TypeValue() != loyaltyProgramType || group.Count <= 0 {
			continue
		}
		for _, record := range group.Records {
			if record.TypeValue() != loyaltyProgramType {
				continue
			}
			fields := record.FieldMap()
			if !isActiveLoyaltyProgram(fields) {
				continue
			}

			return &entity.LoyaltyProgram{
				Number:            fields[loyaltyNumberField],
				Status:            entity.LoyaltyStatus(fields[loyaltyStatusField]),
				StatusRefLabel:    fields[loyaltyLabelField],
				ValidityStartDate: parseDateOrNil(fields[loyaltyValidityStartField]),
				ValidityEndDate:   parseDateOrNil(fields[loyaltyValidityEndField]),
			}
		}
	}

	return nil
}

// collectRailPasses keeps every pass record passing the active gate,
// preserving encounter order.
func collectRailPasses(groups []service.Misc) []entity.RailPass {
	var passes []entity.RailPass
	for _, group := range groups {
		if group.TypeValue() != railPassType || group.Count <= 0 {
			continue
		}
		for _, record := range group.Records {
			if record.TypeValue() != railPassType {
				continue
			}
			fields := record.FieldMap()
			if !isActiveRailPass(fields) {
				continue
			}

			passes = append(passes, entity.RailPass{
				Number:            fields[passNumberField],
				Type:              entity.PassType(fields[passProductCodeField]),
				TypeRefLabel:      fields[passProductLabelField],
				ValidityStartDate: parseDateOrNil(fields[passValidityStartField]),
				ValidityEndDate:   parseDateOrNil(fields[passValidityEndField]),
			})
		}
	}

	return passes
}

// isActiveLoyaltyProgram checks that the record carries at least the program
// number, a recognized status code, and the active sentinel. Anything less
// means the record is not a usable loyalty program.
func isActiveLoyaltyProgram(fields map[string]string) bool {
	return fields[loyaltyNumberField] != "" &&
		fields[loyaltyDisableStatusField] == activeFieldValue &&
		entity.LoyaltyStatus(fields[loyaltyStatusField]).IsValid()
}

// isActiveRailPass applies the same gate to pass records.
func isActiveRailPass(fields map[string]string) bool {
	return fields[passNumberField] != "" &&
		fields[passActiveStatusField] == activeFieldValue &&
		entity.PassType(fields[passProductCodeField]).IsValid()
}

// parseDateOrNil parses an ISO date, returning nil on absence or garbage.
// Bad dates never disqualify the surrounding record.
func parseDateOrNil(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(wsDateLayout, value)
	if err != nil {
		return nil
	}

	return &parsed
}
