package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"foodordering/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, pgerr.IsUniqueViolation(unique))
	assert.True(t, pgerr.IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, pgerr.IsUniqueViolation(nil))
}
