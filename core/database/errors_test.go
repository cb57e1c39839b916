package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pq error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolationOn(t *testing.T) {
	pairErr := &pq.Error{Code: "23505", Constraint: "swap_requests_pending_pair_unique"}
	referenceErr := &pq.Error{Code: "23505", Constraint: "swap_requests_reference_key"}

	assert.True(t, IsUniqueViolationOn(pairErr, "swap_requests_pending_pair_unique"))
	// A collision on a different unique index on the same table must not
	// masquerade as the domain conflict.
	assert.False(t, IsUniqueViolationOn(referenceErr, "swap_requests_pending_pair_unique"))
	assert.False(t, IsUniqueViolationOn(&pq.Error{Code: "23503", Constraint: "swap_requests_pending_pair_unique"}, "swap_requests_pending_pair_unique"))
	assert.False(t, IsUniqueViolationOn(errors.New("plain"), "swap_requests_pending_pair_unique"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(sql.ErrNoRows))
	assert.True(t, IsNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.False(t, IsNotFound(errors.New("boom")))
}
