package postgres

import (
	"testing"

	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		foreignKey bool
		notNull    bool
		check      bool
		outOfRange bool
	}{
		{
			name:       "gorm foreign key sentinel",
			err:        errors.Wrap(gorm.ErrForeignKeyViolated, "insert"),
			foreignKey: true,
		},
		{
			name:       "postgres foreign key message",
			err:        errors.New(`ERROR: insert or update on table "addresses" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "postgres not null message",
			err:     errors.New(`ERROR: null value in column "street" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name:  "gorm check sentinel",
			err:   gorm.ErrCheckConstraintViolated,
			check: true,
		},
		{
			name:  "postgres check message",
			err:   errors.New(`ERROR: new row for relation "addresses" violates check constraint "chk_addresses_number" (SQLSTATE 23514)`),
			check: true,
		},
		{
			name:       "postgres integer out of range",
			err:        errors.New(`ERROR: value "3000000000" is out of range for type integer (SQLSTATE 22003)`),
			outOfRange: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection reset by peer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.outOfRange, isNumericOutOfRange(tt.err))
		})
	}
}
