// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a postal address owned by exactly one Person.
type Address struct {
	ID         int64     // Store-assigned identifier, zero until the address is first persisted.
	PersonID   int64     // The person that owns this address.
	Street     string    // Street name (logradouro).
	PostalCode string    // Postal code in the NNNNN-NNN format.
	Number     int       // House number, always positive.
	City       string    // City name.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// Equal reports whether a and other denote the same stored address.
// Two addresses are equal when they are the same value or when both carry the
// same non-zero ID. An address that was never persisted is only equal to itself.
func (a *Address) Equal(other *Address) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}

	return a.ID != 0 && a.ID == other.ID
}

// CopyFieldsFrom overwrites every attribute of a except its identity and owner.
func (a *Address) CopyFieldsFrom(src *Address) {
	a.Street = src.Street
	a.PostalCode = src.PostalCode
	a.Number = src.Number
	a.City = src.City
}
