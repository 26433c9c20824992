package handler

import (
	"time"

	"addressbook/internal/domain/entity"
)

// birthDateLayout is the wire format of birth dates.
const birthDateLayout = time.DateOnly

// PersonRequest represents the request body for creating or updating a person.
// Identifiers and addresses in the body are ignored.
type PersonRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// AddressRequest represents the request body for adding or updating an address.
type AddressRequest struct {
	Street     string `json:"street" validate:"required,notblank,max=255"`
	PostalCode string `json:"postal_code" validate:"required,postalcode"`
	Number     int    `json:"number" validate:"required,gt=0,lte=2147483647"` // addresses.number is INTEGER
	City       string `json:"city" validate:"required,notblank,max=255"`
}

// PersonResponse is the JSON shape of a person.
type PersonResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	BirthDate      string            `json:"birth_date"`
	Addresses      []AddressResponse `json:"addresses"`
	PrimaryAddress *AddressResponse  `json:"primary_address"`
}

// AddressResponse is the JSON shape of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	Number     int    `json:"number"`
	City       string `json:"city"`
}

func newPersonResponse(person *entity.Person) PersonResponse {
	resp := PersonResponse{
		ID:        person.ID,
		Name:      person.Name,
		BirthDate: person.BirthDate.Format(birthDateLayout),
		Addresses: newAddressResponses(person.Addresses),
	}

	if person.PrimaryAddress != nil {
		primary := newAddressResponse(person.PrimaryAddress)
		resp.PrimaryAddress = &primary
	}

	return resp
}

func newPersonResponses(people []*entity.Person) []PersonResponse {
	resp := make([]PersonResponse, 0, len(people))
	for _, person := range people {
		resp = append(resp, newPersonResponse(person))
	}

	return resp
}

func newAddressResponse(address *entity.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		PostalCode: address.PostalCode,
		Number:     address.Number,
		City:       address.City,
	}
}

func newAddressResponses(addresses []*entity.Address) []AddressResponse {
	resp := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		resp = append(resp, newAddressResponse(address))
	}

	return resp
}
