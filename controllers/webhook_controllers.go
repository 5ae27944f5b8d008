package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saveursmaghreb/storefront/livefeed"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/services"
	"github.com/saveursmaghreb/storefront/utils"
)

// OrderMailer sends the confirmation emails for a freshly recorded order.
type OrderMailer interface {
	SendOrderEmails(order *models.Order, items []models.CartLine) error
}

// WebhookController turns verified checkout.session.completed events into
// order rows and confirmation emails. Everything else Stripe sends is
// acknowledged and ignored.
type WebhookController struct {
	Stripe *services.StripeService
	Orders *services.OrderService
	Mailer OrderMailer
}

func NewWebhookController(stripe *services.StripeService, orders *services.OrderService, mailer OrderMailer) *WebhookController {
	return &WebhookController{Stripe: stripe, Orders: orders, Mailer: mailer}
}

// HandleStripeWebhook processes a Stripe webhook delivery. Signature failures
// are rejected with 400; a line-item fetch failure returns 500 so Stripe
// redelivers; everything past persistence degrades to logging so a paid
// customer always gets an acknowledgment.
func (wc *WebhookController) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorLogger.Printf("Error reading webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	if err := wc.Stripe.VerifySignature(payload, c.GetHeader("Stripe-Signature")); err != nil {
		utils.ErrorLogger.Printf("Webhook signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	event, err := wc.Stripe.ParseEvent(payload)
	if err != nil {
		utils.ErrorLogger.Printf("Error parsing webhook event: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	session, err := wc.Stripe.ParseCheckoutSession(event)
	if err != nil {
		utils.ErrorLogger.Printf("Error parsing checkout session: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	// Tenant filter: one webhook endpoint can receive events for sessions
	// created by other storefronts sharing the Stripe account.
	if session.Metadata["restaurantId"] != wc.Stripe.RestaurantID() {
		utils.InfoLogger.Printf("Ignoring session %s for restaurant %q", session.ID, session.Metadata["restaurantId"])
		c.JSON(http.StatusOK, gin.H{"received": true, "ignored": true})
		return
	}

	lineItems, err := wc.Stripe.ListLineItems(session.ID)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching line items for session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch line items"})
		return
	}

	items := services.BuildOrderItems(lineItems)
	order := wc.buildOrder(session, items)

	created, err := wc.Orders.RecordPaidOrder(order)
	if err != nil {
		// The customer has paid; log and carry on with the notifications
		// rather than asking Stripe to redeliver.
		utils.ErrorLogger.Printf("Error saving order for session %s: %v", session.ID, err)
	}
	if !created && err == nil {
		utils.InfoLogger.Printf("Duplicate webhook for session %s, order already recorded", session.ID)
		c.JSON(http.StatusOK, gin.H{"received": true, "duplicate": true})
		return
	}

	if wc.Mailer != nil {
		if err := wc.Mailer.SendOrderEmails(order, items); err != nil {
			utils.ErrorLogger.Printf("Error sending order emails for order %s: %v", order.OrderCode, err)
		}
	}

	if created {
		livefeed.BroadcastOrderPaid(*order)
	}

	utils.InfoLogger.Printf("Order %s recorded for session %s", order.OrderCode, session.ID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (wc *WebhookController) buildOrder(session *services.CheckoutSession, items []models.CartLine) *models.Order {
	meta := session.Metadata

	email := meta["customerEmail"]
	if email == "" {
		email = session.CustomerEmail
	}

	order := &models.Order{
		RestaurantID:    meta["restaurantId"],
		OrderCode:       services.GenerateOrderCode(),
		CustomerName:    meta["customerName"],
		CustomerEmail:   email,
		CustomerPhone:   meta["customerPhone"],
		DeliveryAddress: meta["deliveryAddress"],
		DeliveryCity:    meta["deliveryCity"],
		DeliveryZipCode: meta["deliveryZipCode"],
		OrderType:       meta["orderType"],
		Instructions:    meta["instructions"],
		Subtotal:        parseAmount(meta["subtotal"]),
		DeliveryFee:     parseAmount(meta["deliveryFee"]),
		TotalAmount:     parseAmount(meta["totalAmount"]),
		PaymentStatus:   models.PaymentStatusPaid,
		StripeSessionID: session.ID,
	}

	if err := order.SetItems(items); err != nil {
		utils.ErrorLogger.Printf("Error encoding order items for session %s: %v", session.ID, err)
		order.Items = "[]"
	}

	return order
}

func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return amount
}
