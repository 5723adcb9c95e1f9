package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify("find menu", mongo.ErrNoDocuments), ErrNotFound)

	err := classify("insert menu", fmt.Errorf("wrapped: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "failed to insert menu")

	err = classify("insert users", mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = classify("find staff", errors.New("boom"))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.EqualError(t, err, "failed to find staff: boom")

	assert.ErrorIs(t, classify("count orders", mongo.ErrClientDisconnected), ErrStoreUnavailable)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "not_found", outcome(ErrNotFound))
	assert.Equal(t, "unavailable", outcome(fmt.Errorf("x: %w", ErrStoreUnavailable)))
	assert.Equal(t, "duplicate", outcome(fmt.Errorf("x: %w", ErrDuplicateKey)))
	assert.Equal(t, "error", outcome(errors.New("boom")))
}
