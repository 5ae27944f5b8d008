package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/saveursmaghreb/storefront/models"
	"gorm.io/gorm"
)

// OrderService persists paid orders on behalf of the payment webhook.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// GenerateOrderCode returns the short human-readable code given to the
// customer and the operator, distinct from the payment session id.
func GenerateOrderCode() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

// BuildOrderItems rebuilds cart lines from the session's Stripe line items,
// skipping the synthetic delivery-fee line. Product metadata written at
// session creation carries the item id, category and selected choices.
func BuildOrderItems(lineItems []StripeLineItem) []models.CartLine {
	items := make([]models.CartLine, 0, len(lineItems))
	for _, li := range lineItems {
		product := li.Price.Product
		if product.Name == "" || product.Name == DeliveryFeeLineName {
			continue
		}

		line := models.CartLine{
			ID:       product.Metadata["itemId"],
			Name:     product.Name,
			Price:    float64(li.Price.UnitAmount) / 100,
			Quantity: int(li.Quantity),
			Category: product.Metadata["category"],
		}
		if line.Quantity == 0 {
			line.Quantity = 1
		}
		if raw, ok := product.Metadata["choices"]; ok && raw != "" {
			var choices []models.SelectedChoice
			if err := json.Unmarshal([]byte(raw), &choices); err == nil && len(choices) > 0 {
				line.Options = &models.LineOptions{SelectedChoices: choices}
			}
		}
		items = append(items, line)
	}
	return items
}

// RecordPaidOrder inserts the order row exactly once per payment session.
// A duplicate session id means the webhook event was redelivered; that is
// reported as created=false with no error so the caller can acknowledge
// without acting again.
func (s *OrderService) RecordPaidOrder(order *models.Order) (bool, error) {
	var existing models.Order
	err := s.db.Where("stripe_session_id = ?", order.StripeSessionID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := s.db.Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent delivery of the same event.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FindBySessionID looks an order up by its payment session id.
func (s *OrderService) FindBySessionID(sessionID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where("stripe_session_id = ?", sessionID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
