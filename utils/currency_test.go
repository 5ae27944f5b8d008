package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyEUR(t *testing.T) {
	assert.Equal(t, "12,50€", FormatCurrencyEUR(12.5))
	assert.Equal(t, "5,90€", FormatCurrencyEUR(5.9))
	assert.Equal(t, "0,00€", FormatCurrencyEUR(0))
	assert.Equal(t, "27,90€", FormatCurrencyEUR(27.9))
}
