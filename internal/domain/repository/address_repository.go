package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrAddressNotFound is returned when no address exists for an ID.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// FindByID retrieves an address by its ID regardless of owner.
	// Returns ErrAddressNotFound if the address does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindByPerson retrieves the addresses of a person in insertion order.
	FindByPerson(ctx context.Context, personID int64) ([]*entity.Address, error)

	// Create persists a new address and assigns the generated ID back onto it.
	Create(ctx context.Context, address *entity.Address) error

	// Update overwrites every column of an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	// Returns ErrAddressNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// ExistsByID reports whether an address with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
