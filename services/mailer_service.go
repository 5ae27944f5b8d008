package services

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
	"gopkg.in/gomail.v2"
)

// MailerConfig holds the SMTP settings for the confirmation emails.
type MailerConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	OperatorEmail string
}

// MailerService sends the operator notification and the customer confirmation
// after a paid checkout.
type MailerService struct {
	config *MailerConfig
	send   func(msg *gomail.Message) error
}

var (
	mailerService *MailerService
	mailerOnce    sync.Once
)

// GetMailerService returns the singleton instance configured from the
// environment (Gmail SMTP by default, matching the restaurant's account).
func GetMailerService() *MailerService {
	mailerOnce.Do(func() {
		cfg := &MailerConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Username:      os.Getenv("GMAIL_USER"),
			Password:      os.Getenv("GMAIL_PASSWORD"),
			OperatorEmail: os.Getenv("RESTAURANT_EMAIL"),
		}
		if cfg.Host == "" {
			cfg.Host = "smtp.gmail.com"
		}
		if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
			cfg.Port = port
		} else {
			cfg.Port = 587
		}
		if cfg.OperatorEmail == "" {
			cfg.OperatorEmail = models.RestaurantEmail
		}
		cfg.From = fmt.Sprintf("%q <%s>", models.RestaurantName, cfg.Username)

		mailerService = NewMailerService(cfg)
	})
	return mailerService
}

func NewMailerService(cfg *MailerConfig) *MailerService {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &MailerService{
		config: cfg,
		send: func(msg *gomail.Message) error {
			return dialer.DialAndSend(msg)
		},
	}
}

// ValidateConfig checks the SMTP credentials are present.
func (ms *MailerService) ValidateConfig() error {
	if ms.config.Username == "" {
		return fmt.Errorf("GMAIL_USER is not set")
	}
	if ms.config.Password == "" {
		return fmt.Errorf("GMAIL_PASSWORD is not set")
	}
	return nil
}

type mailItem struct {
	Quantity int
	Name     string
	Choices  string
	Total    string
}

type mailData struct {
	OrderCode         string
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	IsDelivery        bool
	Address           string
	City              string
	ZipCode           string
	Instructions      string
	Items             []mailItem
	Subtotal          string
	DeliveryFee       string
	Total             string
	HasDeliveryFee    bool
	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string
}

func buildMailData(order *models.Order, items []models.CartLine) mailData {
	data := mailData{
		OrderCode:         order.OrderCode,
		CustomerName:      order.CustomerName,
		CustomerPhone:     order.CustomerPhone,
		CustomerEmail:     order.CustomerEmail,
		IsDelivery:        order.OrderType == models.OrderTypeDelivery,
		Address:           order.DeliveryAddress,
		City:              order.DeliveryCity,
		ZipCode:           order.DeliveryZipCode,
		Instructions:      order.Instructions,
		Subtotal:          utils.FormatCurrencyEUR(order.Subtotal),
		DeliveryFee:       utils.FormatCurrencyEUR(order.DeliveryFee),
		Total:             utils.FormatCurrencyEUR(order.TotalAmount),
		HasDeliveryFee:    order.DeliveryFee > 0,
		RestaurantName:    models.RestaurantName,
		RestaurantAddress: models.RestaurantAddress,
		RestaurantPhone:   models.RestaurantPhone,
	}

	for _, item := range items {
		mi := mailItem{
			Quantity: item.Quantity,
			Name:     item.Name,
			Total:    utils.FormatCurrencyEUR(item.Price * float64(item.Quantity)),
		}
		if item.Options != nil && len(item.Options.SelectedChoices) > 0 {
			names := make([]string, len(item.Options.SelectedChoices))
			for i, ch := range item.Options.SelectedChoices {
				names[i] = ch.Name
			}
			mi.Choices = strings.Join(names, ", ")
		}
		data.Items = append(data.Items, mi)
	}

	return data
}

// RenderOperatorEmail renders the notification sent to the restaurant.
func RenderOperatorEmail(order *models.Order, items []models.CartLine) (string, string, error) {
	subject := fmt.Sprintf("🔔 Nouvelle commande #%s - %s", order.OrderCode, order.CustomerName)
	var buf bytes.Buffer
	if err := operatorTmpl.Execute(&buf, buildMailData(order, items)); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

// RenderCustomerEmail renders the confirmation sent to the customer.
func RenderCustomerEmail(order *models.Order, items []models.CartLine) (string, string, error) {
	subject := fmt.Sprintf("✅ Confirmation de votre commande #%s - %s", order.OrderCode, models.RestaurantName)
	var buf bytes.Buffer
	if err := customerTmpl.Execute(&buf, buildMailData(order, items)); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

// SendOrderEmails sends the operator notification then the customer
// confirmation. A failure on one does not stop the other; the first error is
// returned for logging.
func (ms *MailerService) SendOrderEmails(order *models.Order, items []models.CartLine) error {
	var firstErr error

	subject, body, err := RenderOperatorEmail(order, items)
	if err != nil {
		firstErr = err
	} else if err := ms.sendMail(ms.config.OperatorEmail, subject, body); err != nil {
		utils.ErrorLogger.Printf("Error sending operator email for order %s: %v", order.OrderCode, err)
		firstErr = err
	}

	subject, body, err = RenderCustomerEmail(order, items)
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else if err := ms.sendMail(order.CustomerEmail, subject, body); err != nil {
		utils.ErrorLogger.Printf("Error sending customer email for order %s: %v", order.OrderCode, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (ms *MailerService) sendMail(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", ms.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return ms.send(msg)
}
