package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPerson(addresses ...*Address) *Person {
	p := &Person{ID: 1, Name: "Fulano"}
	for _, a := range addresses {
		p.AddAddress(a)
	}

	return p
}

func TestPerson_AddAddress_FirstBecomesPrimary(t *testing.T) {
	p := newTestPerson()
	a := &Address{ID: 10}

	became := p.AddAddress(a)

	assert.True(t, became)
	assert.Same(t, a, p.PrimaryAddress)
	assert.Equal(t, int64(1), a.PersonID)
	require.NoError(t, p.CheckPrimaryInvariant())
}

func TestPerson_AddAddress_SecondKeepsPrimary(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	p := newTestPerson(a)

	became := p.AddAddress(b)

	assert.False(t, became)
	assert.Same(t, a, p.PrimaryAddress)
	assert.Equal(t, []*Address{a, b}, p.Addresses)
	require.NoError(t, p.CheckPrimaryInvariant())
}

func TestPerson_AddAddress_IgnoresDuplicate(t *testing.T) {
	a := &Address{ID: 10}
	p := newTestPerson(a)

	assert.False(t, p.AddAddress(&Address{ID: 10}))
	assert.Len(t, p.Addresses, 1)
}

func TestPerson_RemoveAddress_PromotesRemaining(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	p := newTestPerson(a, b)

	p.RemoveAddress(a)

	assert.Same(t, b, p.PrimaryAddress)
	assert.Equal(t, []*Address{b}, p.Addresses)
	require.NoError(t, p.CheckPrimaryInvariant())
}

func TestPerson_RemoveAddress_LastLeavesNoPrimary(t *testing.T) {
	a := &Address{ID: 10}
	p := newTestPerson(a)

	p.RemoveAddress(a)

	assert.Nil(t, p.PrimaryAddress)
	assert.Empty(t, p.Addresses)
	require.NoError(t, p.CheckPrimaryInvariant())
}

func TestPerson_RemoveAddress_NonPrimaryResetsToFirst(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	c := &Address{ID: 12}
	p := newTestPerson(a, b, c)
	_, ok := p.SetPrimaryAddress(c.ID)
	require.True(t, ok)

	p.RemoveAddress(b)

	assert.Same(t, a, p.PrimaryAddress, "removing any address re-elects the first remaining one")
	assert.Equal(t, []*Address{a, c}, p.Addresses)
	require.NoError(t, p.CheckPrimaryInvariant())
}

func TestPerson_RemoveAddress_MatchesByIdentity(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	p := newTestPerson(a, b)

	p.RemoveAddress(&Address{ID: 10, Street: "stale copy"})

	assert.Equal(t, []*Address{b}, p.Addresses)
	assert.Same(t, b, p.PrimaryAddress)
}

func TestPerson_RemoveAddress_WithoutPrimary(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	p := &Person{ID: 1, Addresses: []*Address{a, b}}

	p.RemoveAddress(b)

	assert.Same(t, a, p.PrimaryAddress)
}

func TestPerson_SetPrimaryAddress(t *testing.T) {
	a := &Address{ID: 10}
	b := &Address{ID: 11}
	p := newTestPerson(a, b)

	got, ok := p.SetPrimaryAddress(11)
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Same(t, b, p.PrimaryAddress)

	got, ok = p.SetPrimaryAddress(99)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Same(t, b, p.PrimaryAddress)
}

func TestPerson_AddressesView_IsACopy(t *testing.T) {
	a := &Address{ID: 10}
	p := newTestPerson(a)

	view := p.AddressesView()
	view[0] = &Address{ID: 99}
	_ = append(view, &Address{ID: 100})

	assert.Equal(t, []*Address{a}, p.Addresses)
}

func TestPerson_Equal(t *testing.T) {
	assert.True(t, (&Person{ID: 1, Name: "A"}).Equal(&Person{ID: 1, Name: "B"}))
	assert.False(t, (&Person{ID: 1}).Equal(&Person{ID: 2}))
	assert.False(t, (&Person{}).Equal(&Person{}))
	unsaved := &Person{}
	assert.True(t, unsaved.Equal(unsaved))
}

func TestPerson_CheckPrimaryInvariant(t *testing.T) {
	a := &Address{ID: 10}

	assert.Error(t, (&Person{PrimaryAddress: a}).CheckPrimaryInvariant())
	assert.Error(t, (&Person{Addresses: []*Address{a}}).CheckPrimaryInvariant())
	assert.Error(t, (&Person{Addresses: []*Address{a}, PrimaryAddress: &Address{ID: 11}}).CheckPrimaryInvariant())
	assert.NoError(t, (&Person{}).CheckPrimaryInvariant())
	assert.NoError(t, (&Person{Addresses: []*Address{a}, PrimaryAddress: a}).CheckPrimaryInvariant())
}
