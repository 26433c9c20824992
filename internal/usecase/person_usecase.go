package usecase

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
)

// CreatePersonInput represents the input for creating a person.
// A new person never starts with addresses.
type CreatePersonInput struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// UpdatePersonInput carries the fields an update may overwrite.
// Addresses and the primary address are never touched by an update.
type UpdatePersonInput struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// AddressInput represents the descriptive fields of an address.
// The identifier is always assigned by the store.
type AddressInput struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	Number     int    `json:"number"`
	City       string `json:"city"`
}

// PersonUsecase manages people and their addresses while keeping the
// primary-address invariant of every person intact.
type PersonUsecase interface {
	// Person management
	ListPeople(ctx context.Context) ([]*entity.Person, error)
	CreatePerson(ctx context.Context, input *CreatePersonInput) (*entity.Person, error)
	UpdatePerson(ctx context.Context, personID int64, input *UpdatePersonInput) (*entity.Person, error)
	DeletePerson(ctx context.Context, personID int64) error
	GetPerson(ctx context.Context, personID int64) (*entity.Person, error)

	// Address management
	ListAddresses(ctx context.Context, personID int64) ([]*entity.Address, error)
	AddAddress(ctx context.Context, personID int64, input *AddressInput) (*entity.Address, error)
	RemoveAddress(ctx context.Context, personID, addressID int64) error
	SetPrimaryAddress(ctx context.Context, personID, addressID int64) (*entity.Address, error)
	UpdateAddress(ctx context.Context, personID, addressID int64, input *AddressInput) (*entity.Address, error)
	GetAddress(ctx context.Context, personID, addressID int64) (*entity.Address, error)
}
