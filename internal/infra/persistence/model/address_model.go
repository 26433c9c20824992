package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PersonID   int64  `gorm:"not null;index:idx_addresses_on_person"`
	Street     string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(9);not null"`
	Number     int    `gorm:"not null"`
	City       string `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
