package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned when the store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// classify maps driver errors onto the repository sentinels, keeping the
// driver error in the chain.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("failed to %s: %w: %w", op, ErrDuplicateKey, err)
	case unavailable(err):
		return fmt.Errorf("failed to %s: %w: %w", op, ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

func unavailable(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "unavailable"
	case errors.Is(err, ErrDuplicateKey):
		return "duplicate"
	default:
		return "error"
	}
}
