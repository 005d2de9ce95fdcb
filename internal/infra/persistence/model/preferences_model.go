// Package model holds the GORM-specific structs of the persistence layer.
package model

import "time"

// CustomerPreferencesModel is the GORM-specific struct for the
// 'customer_preferences' table. Rows are append-only: profiles are never
// updated or deleted through this service.
type CustomerPreferencesModel struct {
	ID              string `gorm:"type:uuid;primary_key"`
	CustomerID      string `gorm:"type:varchar(64);not null;index"`
	SeatPreference  string `gorm:"type:varchar(32);not null"`
	ClassPreference int    `gorm:"not null"`
	ProfileName     string `gorm:"type:varchar(50);not null"`
	Language        string `gorm:"type:varchar(5)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerPreferencesModel) TableName() string {
	return "customer_preferences"
}
