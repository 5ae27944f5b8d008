package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/services"
	"github.com/saveursmaghreb/storefront/utils"
)

// CheckoutController hands the order off to the hosted payment page. The
// cart is never cleared here: a failed handoff leaves the session exactly as
// it was so the customer can resubmit.
type CheckoutController struct {
	Stripe *services.StripeService
	Carts  *CartController
}

func NewCheckoutController(stripe *services.StripeService, carts *CartController) *CheckoutController {
	return &CheckoutController{Stripe: stripe, Carts: carts}
}

// CreateCheckoutSession implements the payment-session-creation contract:
// the full order payload in, `{url}` or `{error}` out. No response envelope —
// this shape is what the storefront client consumes.
func (cf *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var payload models.CheckoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(payload.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}
	if payload.RestaurantID == "" {
		payload.RestaurantID = models.RestaurantID
	}

	session, err := cf.Stripe.CreateCheckoutSession(payload)
	if err != nil {
		utils.ErrorLogger.Printf("Stripe error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if session.URL == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no payment URL returned"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}

// Checkout validates the submitted delivery info against the session cart,
// derives the amounts and calls the payment-session creator. Validation
// failures come back as a per-field error map.
func (cf *CheckoutController) Checkout(c *gin.Context) {
	var info models.DeliveryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if info.OrderType != models.OrderTypeDelivery && info.OrderType != models.OrderTypeTakeaway {
		utils.RespondError(c, http.StatusBadRequest, errors.New("orderType must be delivery or takeaway"))
		return
	}

	if fieldErrors := info.Validate(); len(fieldErrors) > 0 {
		utils.RespondJSON(c, http.StatusBadRequest, "Validation failed", gin.H{"errors": fieldErrors})
		return
	}
	info.ApplyTakeawayDefaults()

	cart := cf.Carts.Session(c)

	cf.Carts.mu.RLock()
	lines := cart.Lines()
	subtotal := cart.Subtotal()
	cf.Carts.mu.RUnlock()

	if len(lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	deliveryFee := 0.0
	if info.OrderType == models.OrderTypeDelivery {
		deliveryFee = models.DeliveryFee
	}

	payload := models.CheckoutPayload{
		CartItems:    lines,
		DeliveryInfo: info,
		Subtotal:     subtotal,
		DeliveryFee:  deliveryFee,
		Total:        subtotal + deliveryFee,
		RestaurantID: cf.Stripe.RestaurantID(),
	}

	session, err := cf.Stripe.CreateCheckoutSession(payload)
	if err != nil {
		utils.ErrorLogger.Printf("Stripe error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}
