package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, ConstraintName: "idx_test"}, "insert failed")
	}

	assert.True(t, isUniqueConstraintViolation(wrap("23505")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap("23503")))

	assert.True(t, isForeignKeyConstraintViolation(wrap("23503")))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isNotNullConstraintViolation(wrap("23502")))
	assert.False(t, isNotNullConstraintViolation(errors.New("required field missing")))

	assert.True(t, isCheckConstraintViolation(wrap("23514")))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.Equal(t, "idx_test", constraintName(wrap("23505")))
	assert.Empty(t, constraintName(errors.New("plain")))
}
