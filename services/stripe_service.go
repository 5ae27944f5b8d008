package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/saveursmaghreb/storefront/models"
)

// DeliveryFeeLineName is the synthetic Checkout line added for delivery
// orders; the webhook filters it out when rebuilding the cart.
const DeliveryFeeLineName = "Frais de livraison"

// signatureTolerance bounds how old a webhook timestamp may be.
const signatureTolerance = 5 * time.Minute

// StripeConfig holds Stripe configuration.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	RestaurantID  string
	SuccessURL    string
	CancelURL     string
	// APIBaseURL overrides the Stripe API endpoint; empty means production.
	APIBaseURL string
}

// StripeService talks to the Stripe Checkout API and verifies webhook
// signatures.
type StripeService struct {
	config     *StripeConfig
	httpClient *http.Client
}

var (
	stripeService *StripeService
	stripeOnce    sync.Once
)

// GetStripeService returns the singleton instance configured from the
// environment.
func GetStripeService() *StripeService {
	stripeOnce.Do(func() {
		cfg := &StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			RestaurantID:  os.Getenv("RESTAURANT_ID"),
			SuccessURL:    os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:     os.Getenv("CHECKOUT_CANCEL_URL"),
		}

		if cfg.RestaurantID == "" {
			cfg.RestaurantID = models.RestaurantID
		}
		if cfg.SuccessURL == "" {
			cfg.SuccessURL = "https://saveurs-maghreb.netlify.app/success?session_id={CHECKOUT_SESSION_ID}"
		}
		if cfg.CancelURL == "" {
			cfg.CancelURL = "https://saveurs-maghreb.netlify.app/?canceled=true"
		}

		stripeService = NewStripeService(cfg)
	})
	return stripeService
}

// NewStripeService builds a service from an explicit config; tests point
// APIBaseURL at a local mock.
func NewStripeService(cfg *StripeConfig) *StripeService {
	return &StripeService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig checks that the credentials needed at runtime are present.
func (ss *StripeService) ValidateConfig() error {
	if ss.config.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}
	if ss.config.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is not set")
	}
	if ss.config.RestaurantID == "" {
		return fmt.Errorf("RESTAURANT_ID is not set")
	}
	return nil
}

func (ss *StripeService) RestaurantID() string {
	return ss.config.RestaurantID
}

func (ss *StripeService) getBaseURL() string {
	if ss.config.APIBaseURL != "" {
		return ss.config.APIBaseURL
	}
	return "https://api.stripe.com"
}

// CheckoutSession is the subset of the Stripe session object the storefront
// reads back.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	CustomerEmail string            `json:"customer_email"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// StripeEvent is a webhook event envelope.
type StripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// StripeLineItem is one line of a Checkout session with its product expanded.
type StripeLineItem struct {
	Quantity int64 `json:"quantity"`
	Price    struct {
		UnitAmount int64 `json:"unit_amount"`
		Product    struct {
			Name     string            `json:"name"`
			Metadata map[string]string `json:"metadata"`
		} `json:"product"`
	} `json:"price"`
}

// CreateCheckoutSession creates a hosted Checkout session for the order
// payload. Cart lines become ad-hoc price_data line items; the delivery fee
// rides along as its own line, and the order details travel in the session
// metadata so the webhook can persist them without another datastore.
func (ss *StripeService) CreateCheckoutSession(payload models.CheckoutPayload) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", ss.config.SuccessURL)
	form.Set("cancel_url", ss.config.CancelURL)
	form.Set("customer_email", payload.DeliveryInfo.Email)

	idx := 0
	for _, item := range payload.CartItems {
		prefix := fmt.Sprintf("line_items[%d]", idx)
		form.Set(prefix+"[price_data][currency]", "eur")
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][product_data][metadata][itemId]", item.ID)
		form.Set(prefix+"[price_data][product_data][metadata][category]", item.Category)
		if item.Options != nil && len(item.Options.SelectedChoices) > 0 {
			names := make([]string, len(item.Options.SelectedChoices))
			for i, ch := range item.Options.SelectedChoices {
				names[i] = ch.Name
			}
			form.Set(prefix+"[price_data][product_data][description]", strings.Join(names, ", "))

			choicesJSON, err := json.Marshal(item.Options.SelectedChoices)
			if err != nil {
				return nil, fmt.Errorf("error marshaling choices: %v", err)
			}
			form.Set(prefix+"[price_data][product_data][metadata][choices]", string(choicesJSON))
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(toCents(item.Price), 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		idx++
	}

	if payload.DeliveryFee > 0 {
		prefix := fmt.Sprintf("line_items[%d]", idx)
		form.Set(prefix+"[price_data][currency]", "eur")
		form.Set(prefix+"[price_data][product_data][name]", DeliveryFeeLineName)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(toCents(payload.DeliveryFee), 10))
		form.Set(prefix+"[quantity]", "1")
	}

	info := payload.DeliveryInfo
	form.Set("metadata[restaurantId]", payload.RestaurantID)
	form.Set("metadata[customerName]", info.Name)
	form.Set("metadata[customerPhone]", info.Phone)
	form.Set("metadata[customerEmail]", info.Email)
	form.Set("metadata[deliveryAddress]", info.Address)
	form.Set("metadata[deliveryCity]", info.City)
	form.Set("metadata[deliveryZipCode]", info.ZipCode)
	form.Set("metadata[orderType]", info.OrderType)
	form.Set("metadata[instructions]", info.Instructions)
	form.Set("metadata[subtotal]", formatAmount(payload.Subtotal))
	form.Set("metadata[deliveryFee]", formatAmount(payload.DeliveryFee))
	form.Set("metadata[totalAmount]", formatAmount(payload.Total))

	endpoint := ss.getBaseURL() + "/v1/checkout/sessions"
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+ss.config.SecretKey)

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Stripe API error: %s", string(body))
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}

	return &session, nil
}

// ListLineItems fetches the session's line items with products expanded; the
// payment record is the source of truth for what was actually paid.
func (ss *StripeService) ListLineItems(sessionID string) ([]StripeLineItem, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s/line_items?expand[]=data.price.product&limit=100",
		ss.getBaseURL(), url.PathEscape(sessionID))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+ss.config.SecretKey)

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Stripe API error: %s", string(body))
	}

	var list struct {
		Data []StripeLineItem `json:"data"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}

	return list.Data, nil
}

// VerifySignature checks the Stripe-Signature header against the raw payload:
// the v1 scheme is an HMAC-SHA256 of "<timestamp>.<payload>" keyed with the
// webhook secret, and the timestamp must be within tolerance.
func (ss *StripeService) VerifySignature(payload []byte, header string) error {
	return ss.verifySignatureAt(payload, header, time.Now())
}

func (ss *StripeService) verifySignatureAt(payload []byte, header string, now time.Time) error {
	if header == "" {
		return fmt.Errorf("missing Stripe-Signature header")
	}

	var timestamp int64
	var signatures [][]byte
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid signature timestamp")
			}
			timestamp = ts
		case "v1":
			sig, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return fmt.Errorf("malformed Stripe-Signature header")
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(ss.config.WebhookSecret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}

	return fmt.Errorf("no matching v1 signature")
}

// ParseEvent decodes a verified webhook payload.
func (ss *StripeService) ParseEvent(payload []byte) (*StripeEvent, error) {
	var event StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("error unmarshaling event: %v", err)
	}
	return &event, nil
}

// ParseCheckoutSession decodes the session object carried by a
// checkout.session.completed event.
func (ss *StripeService) ParseCheckoutSession(event *StripeEvent) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %v", err)
	}
	return &session, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
