package services

import (
	"context"
	"time"

	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
	"gorm.io/gorm"
)

// OrderLookup polls the datastore for the order row matching a payment
// session id. The row is written by the webhook asynchronously relative to
// the browser redirect, so the confirmation page may land before it exists;
// the bounded geometric backoff bridges that gap.
type OrderLookup struct {
	DB          *gorm.DB
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func NewOrderLookup(db *gorm.DB) *OrderLookup {
	return &OrderLookup{
		DB:          db,
		MaxAttempts: 10,
		BaseDelay:   300 * time.Millisecond,
		Multiplier:  1.5,
	}
}

// LookupResult is the poller outcome. When the row never shows up the code is
// a fabricated placeholder so the confirmation page always has something to
// display; the real code still reaches the customer by email.
type LookupResult struct {
	Found     bool   `json:"found"`
	OrderCode string `json:"order_code"`
	Attempts  int    `json:"attempts"`
}

// WaitForOrder queries up to MaxAttempts times, sleeping BaseDelay times
// Multiplier^k between attempts. "Not found" and query errors are both
// treated as "not yet available".
func (ol *OrderLookup) WaitForOrder(ctx context.Context, sessionID string) LookupResult {
	delay := ol.BaseDelay

	for attempt := 1; attempt <= ol.MaxAttempts; attempt++ {
		var order models.Order
		err := ol.DB.WithContext(ctx).
			Where("stripe_session_id = ?", sessionID).
			First(&order).Error
		if err == nil {
			return LookupResult{Found: true, OrderCode: order.OrderCode, Attempts: attempt}
		}

		if attempt == ol.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			utils.InfoLogger.Printf("Order lookup canceled for session %s after %d attempts", sessionID, attempt)
			return LookupResult{Found: false, OrderCode: GenerateOrderCode(), Attempts: attempt}
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * ol.Multiplier)
	}

	utils.InfoLogger.Printf("Order lookup exhausted for session %s, serving placeholder code", sessionID)
	return LookupResult{Found: false, OrderCode: GenerateOrderCode(), Attempts: ol.MaxAttempts}
}
