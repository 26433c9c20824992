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

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	person := dbtest.NewPerson()

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.PersonRepo().Create(ctx, person)
	})
	require.NoError(t, err)

	exists, err := NewPersonRepository(db).ExistsByID(ctx, person.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	person := dbtest.NewPerson()
	errBoom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.PersonRepo().Create(ctx, person); err != nil {
			return err
		}

		address := dbtest.NewAddress()
		person.AddAddress(address)
		if err := f.AddressRepo().Create(ctx, address); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	people, err := NewPersonRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.PersonRepo().Create(ctx, dbtest.NewPerson()); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	people, err := NewPersonRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)
}
