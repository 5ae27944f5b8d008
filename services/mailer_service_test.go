package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"

	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
)

func mailTestOrder() (*models.Order, []models.CartLine) {
	items := []models.CartLine{
		{
			ID:       "glace-2-boules-chocolat-vanille",
			Name:     "Glace 2 Boules (Vanille, Chocolat)",
			Price:    6.90,
			Quantity: 2,
			Category: "Desserts",
			Options: &models.LineOptions{SelectedChoices: []models.SelectedChoice{
				{ID: "vanille", Name: "Vanille"},
				{ID: "chocolat", Name: "Chocolat"},
			}},
		},
		{ID: "frites", Name: "Frites Traditionnelles", Price: 5.90, Quantity: 1, Category: "Accompagnements"},
	}

	order := &models.Order{
		RestaurantID:    models.RestaurantID,
		OrderCode:       "4321",
		CustomerName:    "Karim Benali",
		CustomerEmail:   "karim@example.com",
		CustomerPhone:   "0612345678",
		DeliveryAddress: "12 Rue Stanislas",
		DeliveryCity:    "Nancy",
		DeliveryZipCode: "54000",
		OrderType:       models.OrderTypeDelivery,
		Instructions:    "Sonner deux fois",
		Subtotal:        19.70,
		DeliveryFee:     2.50,
		TotalAmount:     22.20,
		PaymentStatus:   models.PaymentStatusPaid,
		StripeSessionID: "cs_test_abc",
	}
	return order, items
}

func TestRenderOperatorEmail(t *testing.T) {
	utils.InitLogger()
	order, items := mailTestOrder()

	subject, body, err := RenderOperatorEmail(order, items)
	assert.NoError(t, err)
	assert.Contains(t, subject, "#4321")
	assert.Contains(t, subject, "Karim Benali")

	assert.Contains(t, body, "4321")
	assert.Contains(t, body, "Karim Benali")
	assert.Contains(t, body, "12 Rue Stanislas")
	assert.Contains(t, body, "Glace 2 Boules")
	assert.Contains(t, body, "Vanille, Chocolat")
	assert.Contains(t, body, "22,20€")
	assert.Contains(t, body, "Frais de livraison")
	assert.Contains(t, body, "Sonner deux fois")
}

func TestRenderCustomerEmail(t *testing.T) {
	utils.InitLogger()
	order, items := mailTestOrder()

	subject, body, err := RenderCustomerEmail(order, items)
	assert.NoError(t, err)
	assert.Contains(t, subject, "#4321")
	assert.Contains(t, subject, models.RestaurantName)

	assert.Contains(t, body, "4321")
	assert.Contains(t, body, "19,70€")
	assert.Contains(t, body, "22,20€")
	assert.Contains(t, body, models.RestaurantName)
}

func TestRenderTakeawayEmailOmitsAddress(t *testing.T) {
	utils.InitLogger()
	order, items := mailTestOrder()
	order.OrderType = models.OrderTypeTakeaway
	order.DeliveryAddress = ""
	order.DeliveryFee = 0
	order.TotalAmount = order.Subtotal

	_, body, err := RenderCustomerEmail(order, items)
	assert.NoError(t, err)
	assert.NotContains(t, body, "12 Rue Stanislas")
	assert.Contains(t, body, models.RestaurantAddress)
}

func TestSendOrderEmails(t *testing.T) {
	utils.InitLogger()
	order, items := mailTestOrder()

	var sent []*gomail.Message
	ms := &MailerService{
		config: &MailerConfig{
			From:          "\"Saveurs du Maghreb\" <orders@example.com>",
			OperatorEmail: "restaurant@example.com",
		},
		send: func(msg *gomail.Message) error {
			sent = append(sent, msg)
			return nil
		},
	}

	err := ms.SendOrderEmails(order, items)
	assert.NoError(t, err)
	assert.Len(t, sent, 2)
	assert.Equal(t, []string{"restaurant@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"karim@example.com"}, sent[1].GetHeader("To"))
}

func TestSendOrderEmailsContinuesAfterFailure(t *testing.T) {
	utils.InitLogger()
	order, items := mailTestOrder()

	calls := 0
	ms := &MailerService{
		config: &MailerConfig{
			From:          "orders@example.com",
			OperatorEmail: "restaurant@example.com",
		},
		send: func(msg *gomail.Message) error {
			calls++
			if calls == 1 {
				return assert.AnError
			}
			return nil
		},
	}

	err := ms.SendOrderEmails(order, items)
	assert.Error(t, err)
	// The customer confirmation still went out.
	assert.Equal(t, 2, calls)
}
