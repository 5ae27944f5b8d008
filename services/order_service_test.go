package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func paidTestOrder(sessionID string) *models.Order {
	order := &models.Order{
		RestaurantID:    models.RestaurantID,
		OrderCode:       GenerateOrderCode(),
		CustomerName:    "Karim Benali",
		CustomerEmail:   "karim@example.com",
		CustomerPhone:   "0612345678",
		OrderType:       models.OrderTypeTakeaway,
		Subtotal:        19.70,
		DeliveryFee:     0,
		TotalAmount:     19.70,
		PaymentStatus:   models.PaymentStatusPaid,
		StripeSessionID: sessionID,
	}
	order.SetItems([]models.CartLine{
		{ID: "frites", Name: "Frites Traditionnelles", Price: 5.90, Quantity: 1, Category: "Accompagnements"},
	})
	return order
}

func TestGenerateOrderCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOrderCode()
		assert.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}

func TestRecordPaidOrderOncePerSession(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	created, err := svc.RecordPaidOrder(paidTestOrder("cs_test_abc"))
	assert.NoError(t, err)
	assert.True(t, created)

	// A redelivered webhook for the same session is a no-op, not an error.
	created, err = svc.RecordPaidOrder(paidTestOrder("cs_test_abc"))
	assert.NoError(t, err)
	assert.False(t, created)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// A different session still inserts.
	created, err = svc.RecordPaidOrder(paidTestOrder("cs_test_def"))
	assert.NoError(t, err)
	assert.True(t, created)
}

func TestFindBySessionID(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	original := paidTestOrder("cs_test_abc")
	_, err := svc.RecordPaidOrder(original)
	assert.NoError(t, err)

	found, err := svc.FindBySessionID("cs_test_abc")
	assert.NoError(t, err)
	assert.Equal(t, original.OrderCode, found.OrderCode)

	items, err := found.LineItems()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "frites", items[0].ID)

	_, err = svc.FindBySessionID("cs_missing")
	assert.Error(t, err)
}
