package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/services"
	"github.com/saveursmaghreb/storefront/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
	// RestaurantID scopes the back-office reads to the tenant the payment
	// webhook writes under.
	RestaurantID string
	Lookup       *services.OrderLookup
}

func NewOrderController(db *gorm.DB, restaurantID string) *OrderController {
	return &OrderController{
		DB:           db,
		RestaurantID: restaurantID,
		Lookup:       services.NewOrderLookup(db),
	}
}

// LookupOrder resolves a payment session id to its order code for the
// post-payment confirmation page. The handler blocks while the poller waits
// for the webhook to land; an absent or unknown session still answers 200
// with found=false so the page can render a fallback.
func (oc *OrderController) LookupOrder(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondJSON(c, http.StatusOK, "Order lookup", services.LookupResult{
			Found:     false,
			OrderCode: services.GenerateOrderCode(),
		})
		return
	}

	result := oc.Lookup.WaitForOrder(c.Request.Context(), sessionID)
	utils.RespondJSON(c, http.StatusOK, "Order lookup", result)
}

// GetAllOrders lists this restaurant's orders, newest first. Back-office only.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	err := oc.DB.
		Where("restaurant_id = ?", oc.RestaurantID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID returns one order with its line items decoded.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("order_id"), oc.RestaurantID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items, err := order.LineItems()
	if err != nil {
		utils.ErrorLogger.Printf("Error decoding items for order %d: %v", order.ID, err)
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order": order,
		"items": items,
	})
}
