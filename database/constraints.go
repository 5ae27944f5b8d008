package database

import (
	"gorm.io/gorm"
)

// EnsureConstraints installs the raw-SQL indexes AutoMigrate does not cover.
// The unique index on the payment session id is what makes webhook redelivery
// a no-op instead of a duplicate order row.
func EnsureConstraints(db *gorm.DB) error {
	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_stripe_session_id ON orders (stripe_session_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_restaurant_created ON orders (restaurant_id, created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
