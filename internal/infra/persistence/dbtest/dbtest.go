// Package dbtest opens throwaway in-memory databases and builds fake address book data for tests.
package dbtest

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/infra/persistence/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Faker is shared by every fixture builder in this package.
var Faker = gofakeit.New(rand.Uint64())

// Open returns a migrated in-memory SQLite database private to t.
//
// The pool is capped at one connection because every new connection to
// ":memory:" would see an empty database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.PersonModel{}, &model.AddressModel{}))

	return db
}

// NewPerson builds an unsaved person without addresses.
func NewPerson() *entity.Person {
	birth := Faker.DateRange(
		time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	return &entity.Person{
		Name:      Faker.Name(),
		BirthDate: time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// NewAddress builds an unsaved address with a well-formed postal code.
func NewAddress() *entity.Address {
	return &entity.Address{
		Street:     Faker.Street(),
		PostalCode: PostalCode(),
		Number:     Faker.Number(1, 9999),
		City:       Faker.City(),
	}
}

// PostalCode returns a random code in the NNNNN-NNN form.
func PostalCode() string {
	return fmt.Sprintf("%05d-%03d", Faker.Number(0, 99999), Faker.Number(0, 999))
}
