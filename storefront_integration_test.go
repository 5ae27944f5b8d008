package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/router"
	"github.com/saveursmaghreb/storefront/services"
	"github.com/saveursmaghreb/storefront/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

type stubMailer struct {
	sent []*models.Order
}

func (m *stubMailer) SendOrderEmails(order *models.Order, items []models.CartLine) error {
	m.sent = append(m.sent, order)
	return nil
}

func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:storefront_e2e?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// fakeStripe serves the two Stripe endpoints the storefront calls: session
// creation (returning a fixed session) and the line-item listing for that
// session, echoing back what the checkout submitted.
func fakeStripe(t *testing.T) *httptest.Server {
	var lastForm map[string][]string

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == "POST" && r.URL.Path == "/v1/checkout/sessions" {
			assert.NoError(t, r.ParseForm())
			lastForm = r.PostForm
			fmt.Fprint(w, `{"id":"cs_int_test","url":"https://checkout.stripe.com/c/pay/cs_int_test"}`)
			return
		}

		if strings.HasSuffix(r.URL.Path, "/line_items") {
			items := []map[string]interface{}{}
			for i := 0; ; i++ {
				prefix := fmt.Sprintf("line_items[%d]", i)
				names, ok := lastForm[prefix+"[price_data][product_data][name]"]
				if !ok {
					break
				}
				amount := lastForm[prefix+"[price_data][unit_amount]"][0]
				qty := "1"
				if q, ok := lastForm[prefix+"[quantity]"]; ok {
					qty = q[0]
				}
				metadata := map[string]string{}
				if v, ok := lastForm[prefix+"[price_data][product_data][metadata][itemId]"]; ok {
					metadata["itemId"] = v[0]
				}
				if v, ok := lastForm[prefix+"[price_data][product_data][metadata][category]"]; ok {
					metadata["category"] = v[0]
				}
				if v, ok := lastForm[prefix+"[price_data][product_data][metadata][choices]"]; ok {
					metadata["choices"] = v[0]
				}
				items = append(items, map[string]interface{}{
					"quantity": json.Number(qty),
					"price": map[string]interface{}{
						"unit_amount": json.Number(amount),
						"product": map[string]interface{}{
							"name":     names[0],
							"metadata": metadata,
						},
					},
				})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"data": items})
			return
		}

		http.NotFound(w, r)
	}))
}

// TestStorefrontEndToEnd walks the whole flow: browse the menu, build a cart,
// hand off to the payment page, receive the webhook, poll the order code, then
// read the order back through the staff endpoints.
func TestStorefrontEndToEnd(t *testing.T) {
	stripeAPI := fakeStripe(t)
	defer stripeAPI.Close()

	stripe := services.NewStripeService(&services.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: "whsec_integration",
		RestaurantID:  models.RestaurantID,
		SuccessURL:    "https://example.test/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "https://example.test/?canceled=true",
		APIBaseURL:    stripeAPI.URL,
	})

	db := setupIntegrationDB()
	mailer := &stubMailer{}
	r := router.SetupRouterWith(db, stripe, mailer)

	// 1. Browse the catalog.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/menus?category=Desserts", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 2. Build the cart: a composed dessert plus a side.
	cookies := addToCart(t, r, nil, map[string]interface{}{
		"item_id":             "glace-2-boules",
		"selected_choice_ids": []string{"vanille", "chocolat"},
	})
	cookies = addToCart(t, r, cookies, map[string]interface{}{
		"item_id": "frites",
	})

	// 3. Checkout hands back the hosted payment URL.
	body, _ := json.Marshal(map[string]interface{}{
		"name":      "Karim Benali",
		"phone":     "06 12 34 56 78",
		"email":     "karim@example.com",
		"address":   "12 Rue Stanislas",
		"city":      "Nancy",
		"zipCode":   "54000",
		"orderType": "delivery",
	})
	req, _ = http.NewRequest("POST", "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var checkoutResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkoutResp))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_int_test", checkoutResp["url"])

	// 4. Stripe delivers the completion webhook.
	payload, _ := json.Marshal(map[string]interface{}{
		"id":   "evt_int_1",
		"type": "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             "cs_int_test",
				"customer_email": "karim@example.com",
				"metadata": map[string]string{
					"restaurantId":    models.RestaurantID,
					"customerName":    "Karim Benali",
					"customerPhone":   "06 12 34 56 78",
					"customerEmail":   "karim@example.com",
					"deliveryAddress": "12 Rue Stanislas",
					"deliveryCity":    "Nancy",
					"deliveryZipCode": "54000",
					"orderType":       "delivery",
					"subtotal":        "12.80",
					"deliveryFee":     "2.50",
					"totalAmount":     "15.30",
				},
			},
		},
	})

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte("whsec_integration"))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	signature := fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))

	req, _ = http.NewRequest("POST", "/stripe/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signature)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, mailer.sent, 1)

	var order models.Order
	assert.NoError(t, db.Where("stripe_session_id = ?", "cs_int_test").First(&order).Error)
	assert.InDelta(t, 15.30, order.TotalAmount, 0.001)

	items, err := order.LineItems()
	assert.NoError(t, err)
	assert.Len(t, items, 2, "delivery fee line must be filtered out of the items")

	// 5. The confirmation page resolves the order code.
	req, _ = http.NewRequest("GET", "/order-number?session_id=cs_int_test", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var lookupResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lookupResp))
	lookupData := lookupResp["data"].(map[string]interface{})
	assert.Equal(t, true, lookupData["found"])
	assert.Equal(t, order.OrderCode, lookupData["order_code"])

	// 6. Staff reads the order back.
	registerBody, _ := json.Marshal(map[string]interface{}{
		"name":     "Staff Nancy",
		"email":    "staff@saveurs-maghreb.fr",
		"password": "motdepasse123",
	})
	req, _ = http.NewRequest("POST", "/register", bytes.NewBuffer(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	loginBody, _ := json.Marshal(map[string]interface{}{
		"email":    "staff@saveurs-maghreb.fr",
		"password": "motdepasse123",
	})
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(loginBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	token := loginResp["data"].(map[string]interface{})["token"].(string)

	req, _ = http.NewRequest("GET", "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var ordersResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ordersResp))
	assert.Len(t, ordersResp["data"].([]interface{}), 1)
}

func addToCart(t *testing.T, r *gin.Engine, cookies []*http.Cookie, payload map[string]interface{}) []*http.Cookie {
	data, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/cart/items", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	if got := w.Result().Cookies(); len(got) > 0 {
		return got
	}
	return cookies
}
