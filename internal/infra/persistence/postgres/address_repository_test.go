package postgres

import (
	"context"
	"testing"

	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_CreateAndFindByID(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	person := createPersonWithAddresses(t, db, 0)

	address := dbtest.NewAddress()
	address.PersonID = person.ID
	require.NoError(t, NewAddressRepository(db).Create(ctx, address))
	assert.NotZero(t, address.ID)

	found, err := NewAddressRepository(db).FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, found.PersonID)
	assert.Equal(t, address.Street, found.Street)
	assert.Equal(t, address.PostalCode, found.PostalCode)
	assert.Equal(t, address.Number, found.Number)
	assert.Equal(t, address.City, found.City)
	assert.True(t, address.Equal(found))
}

func TestAddressRepository_FindByID_NotFound(t *testing.T) {
	db := dbtest.Open(t)

	_, err := NewAddressRepository(db).FindByID(context.Background(), 7)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}

func TestAddressRepository_FindByPerson_OnlyOwnAddresses(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	owner := createPersonWithAddresses(t, db, 3)
	createPersonWithAddresses(t, db, 2)

	addresses, err := NewAddressRepository(db).FindByPerson(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 3)
	for i, address := range addresses {
		assert.Equal(t, owner.ID, address.PersonID)
		assert.Equal(t, owner.Addresses[i].ID, address.ID)
	}
}

func TestAddressRepository_Update(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	person := createPersonWithAddresses(t, db, 1)
	repo := NewAddressRepository(db)

	address := person.Addresses[0]
	address.Street = "Rua Nova"
	address.PostalCode = "12345-678"
	address.Number = 42
	address.City = "Campinas"
	require.NoError(t, repo.Update(ctx, address))

	found, err := repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rua Nova", found.Street)
	assert.Equal(t, "12345-678", found.PostalCode)
	assert.Equal(t, 42, found.Number)
	assert.Equal(t, "Campinas", found.City)
	assert.Equal(t, person.ID, found.PersonID)
}

func TestAddressRepository_Update_NotFound(t *testing.T) {
	db := dbtest.Open(t)

	address := dbtest.NewAddress()
	address.ID = 31

	err := NewAddressRepository(db).Update(context.Background(), address)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}

func TestAddressRepository_Delete(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	person := createPersonWithAddresses(t, db, 2)
	repo := NewAddressRepository(db)

	require.NoError(t, repo.Delete(ctx, person.Addresses[0].ID))

	exists, err := repo.ExistsByID(ctx, person.Addresses[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByID(ctx, person.Addresses[1].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Delete(ctx, person.Addresses[0].ID)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
}
