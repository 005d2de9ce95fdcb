package impl

import (
	"testing"
	"time"

	"concourse/internal/domain/entity"
	"concourse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loyaltyFields(overrides map[string]string) []service.KeyValue {
	fields := map[string]string{
		"loyalty_number":       "150",
		"loyalty_status":       "DBD4E0_B38BB3",
		"loyalty_status_label": "Amethyst",
		"validity_start":       "2019-11-10",
		"validity_end":         "2020-11-10",
		"disable_status":       "000",
	}
	for key, value := range overrides {
		fields[key] = value
	}

	kvs := make([]service.KeyValue, 0, len(fields))
	for key, value := range fields {
		kvs = append(kvs, service.KeyValue{Key: key, Value: value})
	}

	return kvs
}

func passFields(overrides map[string]string) []service.KeyValue {
	fields := map[string]string{
		"pass_number":         "PASS-42",
		"new_product_code":    "FAMILY",
		"pass_label":          "Family Pass",
		"pass_validity_start": "2019-11-10",
		"pass_validity_end":   "2021-11-10",
		"pass_is_active":      "000",
	}
	for key, value := range overrides {
		fields[key] = value
	}

	kvs := make([]service.KeyValue, 0, len(fields))
	for key, value := range fields {
		kvs = append(kvs, service.KeyValue{Key: key, Value: value})
	}

	return kvs
}

func miscGroup(groupType string, records ...service.MiscRecord) service.Misc {
	return service.Misc{
		Type:    &service.NestedValue{Value: groupType},
		Count:   len(records),
		Records: records,
	}
}

func loyaltyRecord(overrides map[string]string) service.MiscRecord {
	return service.MiscRecord{
		Type:   &service.NestedValue{Value: "LOYALTY"},
		Fields: loyaltyFields(overrides),
	}
}

func passRecord(overrides map[string]string) service.MiscRecord {
	return service.MiscRecord{
		Type:   &service.NestedValue{Value: "PASS"},
		Fields: passFields(overrides),
	}
}

func TestToCustomer_FullPayload(t *testing.T) {
	alive := true
	response := &service.GetCustomerResponse{
		ID: "72f028e2-fbb8-48b3-b943-bf4daad961ed",
		PersonalInformation: &service.PersonalInformation{
			Civility:  &service.NestedValue{Value: "M"},
			FirstName: "Elliot",
			LastName:  "Alderson",
			Birthdate: "1986-09-17",
			Alive:     &alive,
		},
		PersonalDetails: &service.PersonalDetails{
			Email: &service.EmailDetail{Address: "elliot@protonmail.com", Default: true},
			Cell:  &service.CellDetail{Number: "0612345678"},
		},
		Misc: []service.Misc{
			miscGroup("LOYALTY", loyaltyRecord(nil)),
			miscGroup("PASS", passRecord(nil)),
		},
	}

	customer := toCustomer(response)

	assert.Equal(t, "72f028e2-fbb8-48b3-b943-bf4daad961ed", customer.CustomerID)
	assert.Equal(t, "Elliot", customer.FirstName)
	assert.Equal(t, "Alderson", customer.LastName)
	assert.Equal(t, "elliot@protonmail.com", customer.Email)
	assert.Equal(t, "0612345678", customer.PhoneNumber)
	require.NotNil(t, customer.BirthDate)
	assert.Equal(t, time.Date(1986, 9, 17, 0, 0, 0, 0, time.UTC), *customer.BirthDate)

	require.NotNil(t, customer.LoyaltyProgram)
	assert.Equal(t, "150", customer.LoyaltyProgram.Number)
	assert.Equal(t, entity.LoyaltyStatusDBD4E0B38BB3, customer.LoyaltyProgram.Status)
	assert.Equal(t, "Amethyst", customer.LoyaltyProgram.StatusRefLabel)
	require.NotNil(t, customer.LoyaltyProgram.ValidityStartDate)
	assert.Equal(t, time.Date(2019, 11, 10, 0, 0, 0, 0, time.UTC), *customer.LoyaltyProgram.ValidityStartDate)

	require.Len(t, customer.RailPasses, 1)
	assert.Equal(t, "PASS-42", customer.RailPasses[0].Number)
	assert.Equal(t, entity.PassTypeFamily, customer.RailPasses[0].Type)
	assert.Equal(t, "Family Pass", customer.RailPasses[0].TypeRefLabel)
}

func TestToCustomer_MinimalPayload(t *testing.T) {
	customer := toCustomer(&service.GetCustomerResponse{ID: "bare-id"})

	assert.Equal(t, "bare-id", customer.CustomerID)
	assert.Empty(t, customer.FirstName)
	assert.Empty(t, customer.LastName)
	assert.Empty(t, customer.Email)
	assert.Empty(t, customer.PhoneNumber)
	assert.Nil(t, customer.BirthDate)
	assert.Nil(t, customer.LoyaltyProgram)
	assert.Empty(t, customer.RailPasses)
}

func TestToCustomer_GarbageBirthdateIsIgnored(t *testing.T) {
	customer := toCustomer(&service.GetCustomerResponse{
		ID: "id",
		PersonalInformation: &service.PersonalInformation{
			FirstName: "Ada",
			Birthdate: "Mouhahaha >:)",
		},
	})

	assert.Equal(t, "Ada", customer.FirstName)
	assert.Nil(t, customer.BirthDate)
}

func TestFirstLoyaltyProgram_ActiveGate(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{name: "disable status not active", overrides: map[string]string{"disable_status": "001"}},
		{name: "missing loyalty number", overrides: map[string]string{"loyalty_number": ""}},
		{name: "unrecognized status", overrides: map[string]string{"loyalty_status": "NOT_A_STATUS"}},
		{name: "missing status", overrides: map[string]string{"loyalty_status": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := []service.Misc{miscGroup("LOYALTY", loyaltyRecord(tt.overrides))}

			assert.Nil(t, firstLoyaltyProgram(groups))
		})
	}
}

func TestFirstLoyaltyProgram_GarbageDatesDoNotDisqualify(t *testing.T) {
	groups := []service.Misc{miscGroup("LOYALTY", loyaltyRecord(map[string]string{
		"validity_start": "Mouhahaha >:)",
		"validity_end":   "",
	}))}

	program := firstLoyaltyProgram(groups)

	require.NotNil(t, program)
	assert.Equal(t, "150", program.Number)
	assert.Nil(t, program.ValidityStartDate)
	assert.Nil(t, program.ValidityEndDate)
}

func TestFirstLoyaltyProgram_FirstValidRecordWins(t *testing.T) {
	groups := []service.Misc{
		miscGroup("LOYALTY",
			loyaltyRecord(map[string]string{"disable_status": "001"}),
			loyaltyRecord(map[string]string{"loyalty_number": "FIRST", "loyalty_status": "FFD700"}),
			loyaltyRecord(map[string]string{"loyalty_number": "SECOND"}),
		),
		miscGroup("LOYALTY",
			loyaltyRecord(map[string]string{"loyalty_number": "THIRD"}),
		),
	}

	program := firstLoyaltyProgram(groups)

	require.NotNil(t, program)
	assert.Equal(t, "FIRST", program.Number)
	assert.Equal(t, entity.LoyaltyStatusFFD700, program.Status)
}

func TestFirstLoyaltyProgram_GroupFiltering(t *testing.T) {
	t.Run("wrong group type marker", func(t *testing.T) {
		groups := []service.Misc{miscGroup("PASS", loyaltyRecord(nil))}

		assert.Nil(t, firstLoyaltyProgram(groups))
	})

	t.Run("zero count group", func(t *testing.T) {
		group := miscGroup("LOYALTY", loyaltyRecord(nil))
		group.Count = 0

		assert.Nil(t, firstLoyaltyProgram([]service.Misc{group}))
	})

	t.Run("record type mismatch inside matching group", func(t *testing.T) {
		record := loyaltyRecord(nil)
		record.Type = &service.NestedValue{Value: "PASS"}
		group := miscGroup("LOYALTY", record)

		assert.Nil(t, firstLoyaltyProgram([]service.Misc{group}))
	})
}

func TestCollectRailPasses_KeepsAllActiveInOrder(t *testing.T) {
	groups := []service.Misc{
		miscGroup("PASS",
			passRecord(map[string]string{"pass_number": "ONE", "new_product_code": "YOUTH"}),
			passRecord(map[string]string{"pass_number": "SKIPPED", "pass_is_active": "666"}),
			passRecord(map[string]string{"pass_number": "TWO", "new_product_code": "FROM_OUTER_SPACE"}),
		),
		miscGroup("PASS",
			passRecord(map[string]string{"pass_number": "THREE", "new_product_code": "SENIOR"}),
		),
	}

	passes := collectRailPasses(groups)

	require.Len(t, passes, 3)
	assert.Equal(t, "ONE", passes[0].Number)
	assert.Equal(t, entity.PassTypeYouth, passes[0].Type)
	assert.Equal(t, "TWO", passes[1].Number)
	assert.Equal(t, entity.PassTypeFromOuterSpace, passes[1].Type)
	assert.Equal(t, "THREE", passes[2].Number)
}

func TestCollectRailPasses_GroupFiltering(t *testing.T) {
	t.Run("wrong group type marker", func(t *testing.T) {
		groups := []service.Misc{miscGroup("LOYALTY", passRecord(nil))}

		assert.Empty(t, collectRailPasses(groups))
	})

	t.Run("zero count group", func(t *testing.T) {
		group := miscGroup("PASS", passRecord(nil))
		group.Count = 0

		assert.Empty(t, collectRailPasses([]service.Misc{group}))
	})

	t.Run("record type mismatch inside matching group", func(t *testing.T) {
		record := passRecord(nil)
		record.Type = &service.NestedValue{Value: "LOYALTY"}
		group := miscGroup("PASS", record)

		assert.Empty(t, collectRailPasses([]service.Misc{group}))
	})
}

func TestCollectRailPasses_UnknownProductCodeDisqualifies(t *testing.T) {
	groups := []service.Misc{miscGroup("PASS", passRecord(map[string]string{"new_product_code": "JETPACK"}))}

	assert.Empty(t, collectRailPasses(groups))
}

func TestFieldMap_DuplicateKeysLastWins(t *testing.T) {
	record := service.MiscRecord{Fields: []service.KeyValue{
		{Key: "loyalty_number", Value: "OLD"},
		{Key: "loyalty_number", Value: "NEW"},
		{Key: "", Value: "dropped"},
		{Key: "blank_value", Value: ""},
	}}

	fields := record.FieldMap()

	assert.Equal(t, "NEW", fields["loyalty_number"])
	assert.NotContains(t, fields, "")
	assert.NotContains(t, fields, "blank_value")
}

func TestParseDateOrNil(t *testing.T) {
	assert.Nil(t, parseDateOrNil(""))
	assert.Nil(t, parseDateOrNil("17/09/1986"))

	parsed := parseDateOrNil("1986-09-17")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(1986, 9, 17, 0, 0, 0, 0, time.UTC), *parsed)
}
