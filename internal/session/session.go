// Package session threads the request-scoped database handle through the
// context so repositories run on the connection acquired for that request.
package session

import (
	"context"

	"gorm.io/gorm"
)

type contextKey struct{}

// NewContext returns a context carrying the request-scoped *gorm.DB.
func NewContext(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, contextKey{}, db)
}

// FromContext extracts the request-scoped *gorm.DB, if one was attached.
func FromContext(ctx context.Context) (*gorm.DB, bool) {
	db, ok := ctx.Value(contextKey{}).(*gorm.DB)
	return db, ok
}
