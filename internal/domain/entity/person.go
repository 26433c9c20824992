package entity

import (
	"fmt"
	"slices"
	"time"
)

// Person owns an ordered collection of addresses, one of which is primary.
//
// PrimaryAddress is nil if and only if Addresses is empty; otherwise it points
// at an element of Addresses. AddAddress and RemoveAddress keep that true.
type Person struct {
	ID             int64      // Store-assigned identifier, zero until first persisted.
	Name           string     // Full name.
	BirthDate      time.Time  // Date of birth, time of day is ignored.
	Addresses      []*Address // Owned addresses in insertion order.
	PrimaryAddress *Address   // The designated address, nil when Addresses is empty.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Equal reports whether p and other denote the same stored person, using the
// same identity rule as Address.Equal.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}

	return p.ID != 0 && p.ID == other.ID
}

// HasAddress reports whether address is a member of the person's collection.
func (p *Person) HasAddress(address *Address) bool {
	return slices.ContainsFunc(p.Addresses, address.Equal)
}

// FindAddress returns the first owned address carrying id.
func (p *Person) FindAddress(id int64) (*Address, bool) {
	for _, address := range p.Addresses {
		if address.ID == id {
			return address, true
		}
	}

	return nil, false
}

// AddAddress appends address to the collection. It returns true when the
// address became primary because the person had none before.
func (p *Person) AddAddress(address *Address) bool {
	if p.HasAddress(address) {
		return false
	}

	address.PersonID = p.ID
	p.Addresses = append(p.Addresses, address)

	if p.PrimaryAddress == nil {
		p.PrimaryAddress = address
		return true
	}

	return false
}

// RemoveAddress drops address from the collection and re-elects the primary.
//
// A primary equal to the removed address is cleared first. Afterwards, if any
// address remains, the first remaining one becomes primary even when the removed
// address was not the primary.
func (p *Person) RemoveAddress(address *Address) {
	if p.PrimaryAddress != nil && p.PrimaryAddress.Equal(address) {
		p.PrimaryAddress = nil
	}

	p.Addresses = slices.DeleteFunc(p.Addresses, address.Equal)

	if len(p.Addresses) > 0 {
		p.PrimaryAddress = p.Addresses[0]
	}
}

// SetPrimaryAddress designates the owned address carrying id as primary.
func (p *Person) SetPrimaryAddress(id int64) (*Address, bool) {
	address, ok := p.FindAddress(id)
	if !ok {
		return nil, false
	}

	p.PrimaryAddress = address

	return address, true
}

// AddressesView returns a copy of the collection so callers cannot reorder or
// grow the person's own slice.
func (p *Person) AddressesView() []*Address {
	return slices.Clone(p.Addresses)
}

// CheckPrimaryInvariant returns an error describing how the primary-address
// invariant is broken, or nil when it holds.
func (p *Person) CheckPrimaryInvariant() error {
	switch {
	case len(p.Addresses) == 0 && p.PrimaryAddress != nil:
		return fmt.Errorf("person %d has primary address %d but no addresses", p.ID, p.PrimaryAddress.ID)
	case len(p.Addresses) > 0 && p.PrimaryAddress == nil:
		return fmt.Errorf("person %d has %d addresses but no primary address", p.ID, len(p.Addresses))
	case p.PrimaryAddress != nil && !p.HasAddress(p.PrimaryAddress):
		return fmt.Errorf("person %d primary address %d is not one of its addresses", p.ID, p.PrimaryAddress.ID)
	}

	return nil
}
