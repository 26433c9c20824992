// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrPersonNotFound is returned when no person exists for an ID.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the interface for person-related database operations.
type PersonRepository interface {
	// FindAll retrieves every person with its addresses and primary address resolved.
	FindAll(ctx context.Context) ([]*entity.Person, error)

	// FindByID retrieves a person with its addresses in insertion order.
	// PrimaryAddress points into the returned Addresses slice.
	// Returns ErrPersonNotFound if the person does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// Create persists a new person and assigns the generated ID back onto it.
	// Addresses are not persisted by this call.
	Create(ctx context.Context, person *entity.Person) error

	// Update persists name, birth date and the primary address reference.
	Update(ctx context.Context, person *entity.Person) error

	// Delete removes a person together with all of its addresses.
	// Returns ErrPersonNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether a person with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
