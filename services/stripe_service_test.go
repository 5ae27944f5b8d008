package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saveursmaghreb/storefront/models"
)

func testStripeService(apiBaseURL string) *StripeService {
	return NewStripeService(&StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: "whsec_test_secret",
		RestaurantID:  models.RestaurantID,
		SuccessURL:    "https://example.test/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "https://example.test/?canceled=true",
		APIBaseURL:    apiBaseURL,
	})
}

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature(t *testing.T) {
	ss := testStripeService("")
	payload := []byte(`{"type":"checkout.session.completed"}`)
	now := time.Now()

	header := signPayload("whsec_test_secret", now.Unix(), payload)
	assert.NoError(t, ss.verifySignatureAt(payload, header, now))

	// Wrong secret
	bad := signPayload("whsec_other", now.Unix(), payload)
	assert.Error(t, ss.verifySignatureAt(payload, bad, now))

	// Tampered payload
	assert.Error(t, ss.verifySignatureAt([]byte(`{"type":"evil"}`), header, now))

	// Stale timestamp
	old := signPayload("whsec_test_secret", now.Add(-10*time.Minute).Unix(), payload)
	assert.Error(t, ss.verifySignatureAt(payload, old, now))

	// Missing or malformed header
	assert.Error(t, ss.verifySignatureAt(payload, "", now))
	assert.Error(t, ss.verifySignatureAt(payload, "v1=deadbeef", now))
}

func TestCreateCheckoutSession(t *testing.T) {
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_abc","url":"https://checkout.stripe.com/c/pay/cs_test_abc"}`)
	}))
	defer server.Close()

	ss := testStripeService(server.URL)

	payload := models.CheckoutPayload{
		CartItems: []models.CartLine{
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
		},
		DeliveryInfo: models.DeliveryInfo{
			Name:      "Karim Benali",
			Email:     "karim@example.com",
			Phone:     "0612345678",
			Address:   "12 Rue Stanislas",
			City:      "Nancy",
			ZipCode:   "54000",
			OrderType: models.OrderTypeDelivery,
		},
		Subtotal:     19.70,
		DeliveryFee:  2.50,
		Total:        22.20,
		RestaurantID: models.RestaurantID,
	}

	session, err := ss.CreateCheckoutSession(payload)
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_abc", session.URL)

	assert.Equal(t, "payment", form["mode"][0])
	assert.Equal(t, "karim@example.com", form["customer_email"][0])

	// Cart lines become ad-hoc price_data with product metadata.
	assert.Equal(t, "Glace 2 Boules (Vanille, Chocolat)", form["line_items[0][price_data][product_data][name]"][0])
	assert.Equal(t, "glace-2-boules-chocolat-vanille", form["line_items[0][price_data][product_data][metadata][itemId]"][0])
	assert.Equal(t, "690", form["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "2", form["line_items[0][quantity]"][0])
	assert.Contains(t, form["line_items[0][price_data][product_data][metadata][choices]"][0], "vanille")

	// The delivery fee rides along as its own synthetic line.
	assert.Equal(t, DeliveryFeeLineName, form["line_items[2][price_data][product_data][name]"][0])
	assert.Equal(t, "250", form["line_items[2][price_data][unit_amount]"][0])

	// Order details travel in the session metadata.
	assert.Equal(t, models.RestaurantID, form["metadata[restaurantId]"][0])
	assert.Equal(t, "Karim Benali", form["metadata[customerName]"][0])
	assert.Equal(t, "delivery", form["metadata[orderType]"][0])
	assert.Equal(t, "19.70", form["metadata[subtotal]"][0])
	assert.Equal(t, "2.50", form["metadata[deliveryFee]"][0])
	assert.Equal(t, "22.20", form["metadata[totalAmount]"][0])
}

func TestCreateCheckoutSessionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"invalid request"}}`)
	}))
	defer server.Close()

	ss := testStripeService(server.URL)
	_, err := ss.CreateCheckoutSession(models.CheckoutPayload{})
	assert.Error(t, err)
}

func TestListLineItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_abc/line_items", r.URL.Path)
		assert.Equal(t, "data.price.product", r.URL.Query().Get("expand[]"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"quantity":2,"price":{"unit_amount":690,"product":{"name":"Glace 2 Boules (Vanille, Chocolat)","metadata":{"itemId":"glace-2-boules-chocolat-vanille","category":"Desserts","choices":"[{\"id\":\"vanille\",\"name\":\"Vanille\"},{\"id\":\"chocolat\",\"name\":\"Chocolat\"}]"}}}},
			{"quantity":1,"price":{"unit_amount":250,"product":{"name":"Frais de livraison","metadata":{}}}}
		]}`)
	}))
	defer server.Close()

	ss := testStripeService(server.URL)
	items, err := ss.ListLineItems("cs_test_abc")
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	lines := BuildOrderItems(items)
	assert.Len(t, lines, 1, "delivery fee line must be filtered out")
	assert.Equal(t, "glace-2-boules-chocolat-vanille", lines[0].ID)
	assert.InDelta(t, 6.90, lines[0].Price, 0.001)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.NotNil(t, lines[0].Options)
	assert.Len(t, lines[0].Options.SelectedChoices, 2)
}

func TestParseEventAndSession(t *testing.T) {
	ss := testStripeService("")

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_test_abc","metadata":{"restaurantId":"saveurs-maghreb"},"customer_email":"karim@example.com"}}}`)

	event, err := ss.ParseEvent(payload)
	assert.NoError(t, err)
	assert.Equal(t, "checkout.session.completed", event.Type)

	session, err := ss.ParseCheckoutSession(event)
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "saveurs-maghreb", session.Metadata["restaurantId"])
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(690), toCents(6.90))
	assert.Equal(t, int64(250), toCents(2.50))
	assert.Equal(t, int64(2790), toCents(27.90))
}
