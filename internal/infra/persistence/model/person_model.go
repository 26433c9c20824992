// Package model holds the GORM persistence structs used by the GORM Gen tool.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// PersonModel mirrors the 'people' table.
// PrimaryAddressID references addresses.id and is NULL while the person has no addresses.
type PersonModel struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	Name             string         `gorm:"type:varchar(255);not null"`
	BirthDate        datatypes.Date `gorm:"not null"`
	PrimaryAddressID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}
