package service

import (
	"context"

	"gorm.io/gorm"
)

// runTx executes fn inside a database transaction. With a nil db (unit tests
// against in-memory repositories) fn runs directly with a nil tx; the
// repository fakes ignore it.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
