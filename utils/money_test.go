package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 3.38, RoundCurrency(3.375))
	assert.Equal(t, 21.60, RoundCurrency(21.6))
	assert.Equal(t, 0.00, RoundCurrency(0))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2400), ToMinorUnits(24.00))
	assert.Equal(t, int64(5), ToMinorUnits(0.05))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "3,20", FormatCurrency(3.2))
	assert.Equal(t, "24,00", FormatCurrency(24))
	assert.Equal(t, "1.240,00", FormatCurrency(1240))
	assert.Equal(t, "15.000,50", FormatCurrency(15000.5))
	assert.Equal(t, "1.234.567,89", FormatCurrency(1234567.894))
}
