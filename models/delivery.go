package models

import (
	"regexp"
	"strings"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypeTakeaway = "takeaway"
)

// DeliveryInfo carries the checkout form fields. Address, city and zip are
// only meaningful for delivery orders; takeaway orders fall back to the
// restaurant's own city and zip as placeholders.
type DeliveryInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	OrderType    string `json:"orderType"`
	Instructions string `json:"instructions,omitempty"`
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// French mobile/landline: +33, 0033 or leading 0, a non-zero digit, then
	// four groups of two digits with optional separators.
	phoneRegex = regexp.MustCompile(`^(?:(?:\+|00)33|0)[1-9](?:[\s.-]*\d{2}){4}$`)
	zipRegex   = regexp.MustCompile(`^\d{5}$`)
)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidPhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	return phoneRegex.MatchString(cleaned) && len(cleaned) >= 10
}

func ValidZipCode(zip string) bool {
	return zipRegex.MatchString(zip)
}

// ValidateField checks one form field and returns a user-facing message, or
// "" when the value is acceptable. Address, zip and city rules only apply to
// delivery orders.
func (d DeliveryInfo) ValidateField(field string) string {
	switch field {
	case "name":
		if len([]rune(d.Name)) < 2 {
			return "Le nom doit contenir au moins 2 caractères"
		}
	case "email":
		if !ValidEmail(d.Email) {
			return "Veuillez saisir un email valide"
		}
	case "phone":
		if !ValidPhone(d.Phone) {
			return "Veuillez saisir un numéro de téléphone valide (10 chiffres)"
		}
	case "address":
		if d.OrderType == OrderTypeDelivery && len([]rune(d.Address)) < 5 {
			return "L'adresse doit contenir au moins 5 caractères"
		}
	case "zipCode":
		if d.OrderType == OrderTypeDelivery && !ValidZipCode(d.ZipCode) {
			return "Le code postal doit contenir 5 chiffres"
		}
	case "city":
		if d.OrderType == OrderTypeDelivery && len([]rune(d.City)) < 2 {
			return "Veuillez saisir une ville valide"
		}
	}
	return ""
}

// Validate runs every applicable field validator and returns the per-field
// error messages; an empty map means the form can be submitted.
func (d DeliveryInfo) Validate() map[string]string {
	errors := make(map[string]string)
	for _, field := range []string{"name", "email", "phone", "address", "zipCode", "city"} {
		if msg := d.ValidateField(field); msg != "" {
			errors[field] = msg
		}
	}
	return errors
}

// ApplyTakeawayDefaults zeroes the address fields for a takeaway order,
// keeping the restaurant's own city and zip as placeholders.
func (d *DeliveryInfo) ApplyTakeawayDefaults() {
	if d.OrderType != OrderTypeTakeaway {
		return
	}
	d.Address = ""
	d.City = RestaurantCity
	d.ZipCode = RestaurantZipCode
}
