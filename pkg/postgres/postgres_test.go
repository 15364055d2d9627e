package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	other := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert request: %w", unique)))
	assert.False(t, IsUniqueViolation(other))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
