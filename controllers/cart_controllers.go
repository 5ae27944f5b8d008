package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
)

const cartCookieName = "cart_session"

// CartController keeps one in-memory cart per storefront session, keyed by a
// uuid cookie. Carts are deliberately ephemeral: a restart empties them, the
// paid order is the only durable record.
type CartController struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartController() *CartController {
	return &CartController{
		carts: make(map[string]*models.Cart),
	}
}

// Session returns the cart for the request's session cookie, creating both
// when missing.
func (cc *CartController) Session(c *gin.Context) *models.Cart {
	sessionID, err := c.Cookie(cartCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(cartCookieName, sessionID, 86400, "/", "", false, true)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cart, ok := cc.carts[sessionID]
	if !ok {
		cart = &models.Cart{}
		cc.carts[sessionID] = cart
	}
	return cart
}

func cartSummary(cart *models.Cart, cartOpen bool) gin.H {
	return gin.H{
		"items":     cart.Lines(),
		"itemCount": cart.ItemCount(),
		"subtotal":  cart.Subtotal(),
		"cartOpen":  cartOpen,
	}
}

// GetCart returns the session cart with its derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.Session(c)

	cc.mu.RLock()
	defer cc.mu.RUnlock()
	utils.RespondJSON(c, http.StatusOK, "Cart", cartSummary(cart, false))
}

// AddItem adds a catalog item to the cart. Composed items must come with a
// complete choice selection; the submitted ids are replayed through the
// selector so the quota rules apply server-side too.
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		ItemID            string   `json:"item_id" binding:"required"`
		SelectedChoiceIDs []string `json:"selected_choice_ids"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := models.FindMenuItem(body.ItemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	unitPrice := item.Price
	var choices []models.SelectedChoice

	if item.IsComposed() {
		selector := models.NewChoiceSelector(item)
		for _, id := range body.SelectedChoiceIDs {
			selector.Toggle(id)
		}

		price, selected, err := selector.Commit()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		unitPrice = price
		choices = selected
	} else if len(body.SelectedChoiceIDs) > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("item %s does not take choices", item.ID))
		return
	}

	cart := cc.Session(c)

	cc.mu.Lock()
	line := cart.Add(item, unitPrice, choices)
	cc.mu.Unlock()

	cc.mu.RLock()
	defer cc.mu.RUnlock()
	utils.RespondJSON(c, http.StatusCreated, "Item added", gin.H{
		"line": line,
		"cart": cartSummary(cart, true),
	})
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	type reqBody struct {
		Quantity int `json:"quantity"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := cc.Session(c)

	cc.mu.Lock()
	cart.UpdateQuantity(c.Param("item_id"), body.Quantity)
	cc.mu.Unlock()

	cc.mu.RLock()
	defer cc.mu.RUnlock()
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cartSummary(cart, false))
}

// RemoveItem deletes a line by identity.
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart := cc.Session(c)

	cc.mu.Lock()
	cart.Remove(c.Param("item_id"))
	cc.mu.Unlock()

	cc.mu.RLock()
	defer cc.mu.RUnlock()
	utils.RespondJSON(c, http.StatusOK, "Item removed", cartSummary(cart, false))
}
