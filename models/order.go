package models

import (
	"encoding/json"
	"time"
)

const (
	PaymentStatusPaid = "paid"
)

// Order is the persisted record of a paid checkout session, written exactly
// once by the payment webhook. Items is a JSON snapshot of the cart lines as
// rebuilt from the payment record.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RestaurantID    string    `gorm:"type:varchar(64);not null;index" json:"restaurant_id"`
	OrderCode       string    `gorm:"type:varchar(8);not null" json:"order_code"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   string    `gorm:"type:varchar(32);not null" json:"customer_phone"`
	DeliveryAddress string    `gorm:"type:varchar(255)" json:"delivery_address"`
	DeliveryCity    string    `gorm:"type:varchar(128)" json:"delivery_city"`
	DeliveryZipCode string    `gorm:"type:varchar(16)" json:"delivery_zip_code"`
	OrderType       string    `gorm:"type:varchar(16);not null" json:"order_type"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	Items           string    `gorm:"type:text;not null" json:"-"`
	Subtotal        float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	TotalAmount     float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentStatus   string    `gorm:"type:varchar(20);not null;default:'paid'" json:"payment_status"`
	StripeSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"stripe_session_id"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// SetItems stores the line-item snapshot.
func (o *Order) SetItems(items []CartLine) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = string(data)
	return nil
}

// LineItems decodes the stored line-item snapshot.
func (o *Order) LineItems() ([]CartLine, error) {
	var items []CartLine
	if o.Items == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CheckoutPayload is the wire entity sent to the payment-session creator:
// the cart, the validated delivery info and the derived amounts.
type CheckoutPayload struct {
	CartItems    []CartLine   `json:"cartItems"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
	Subtotal     float64      `json:"subtotal"`
	DeliveryFee  float64      `json:"deliveryFee"`
	Total        float64      `json:"total"`
	RestaurantID string       `json:"restaurantId"`
}
