// Package runid provides context utilities for tracking orchestration runs
package runid

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey int

const (
	// Key is the context key for run IDs
	Key contextKey = iota
)

// New generates a new unique run ID
func New() string {
	return uuid.New().String()
}

// WithRunID adds a run ID to the context
func WithRunID(parent context.Context, runID string) context.Context {
	return context.WithValue(parent, Key, runID)
}

// FromContext extracts the run ID from the context
func FromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(Key).(string); ok {
		return runID
	}
	return ""
}
