package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Equal(t *testing.T) {
	unsaved := &Address{Street: "Rua A"}
	otherUnsaved := &Address{Street: "Rua A"}

	tests := []struct {
		name  string
		a     *Address
		b     *Address
		equal bool
	}{
		{name: "same ID", a: &Address{ID: 1, Street: "Rua A"}, b: &Address{ID: 1, Street: "Rua B"}, equal: true},
		{name: "different ID", a: &Address{ID: 1}, b: &Address{ID: 2}, equal: false},
		{name: "unsaved equals itself", a: unsaved, b: unsaved, equal: true},
		{name: "unsaved values with equal fields", a: unsaved, b: otherUnsaved, equal: false},
		{name: "unsaved vs saved", a: unsaved, b: &Address{ID: 1}, equal: false},
		{name: "nil vs saved", a: nil, b: &Address{ID: 1}, equal: false},
		{name: "both nil", a: nil, b: nil, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestAddress_CopyFieldsFrom(t *testing.T) {
	dst := &Address{ID: 7, PersonID: 3, Street: "Rua A", PostalCode: "11111-111", Number: 1, City: "Cidade A"}
	src := &Address{ID: 99, PersonID: 42, Street: "Rua B", PostalCode: "22222-222", Number: 2, City: "Cidade B"}

	dst.CopyFieldsFrom(src)

	assert.Equal(t, int64(7), dst.ID)
	assert.Equal(t, int64(3), dst.PersonID)
	assert.Equal(t, "Rua B", dst.Street)
	assert.Equal(t, "22222-222", dst.PostalCode)
	assert.Equal(t, 2, dst.Number)
	assert.Equal(t, "Cidade B", dst.City)
}
