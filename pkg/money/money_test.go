package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewFromDecimal(t *testing.T) {
	t.Run("major units convert to minor units", func(t *testing.T) {
		m := NewFromDecimal(decimal.RequireFromString("450.00"), INR)
		assert.Equal(t, int64(45000), m.Amount())
		assert.Equal(t, INR, m.Currency())
	})

	t.Run("sub-minor precision rounds half away from zero", func(t *testing.T) {
		m := NewFromDecimal(decimal.RequireFromString("450.005"), INR)
		assert.Equal(t, int64(45001), m.Amount())
	})

	t.Run("unknown currency falls back to INR", func(t *testing.T) {
		m := NewFromDecimal(decimal.RequireFromString("10.00"), "XXX-NOT-A-CODE")
		assert.Equal(t, INR, m.Currency())
	})
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "₹450.00", New(45000, INR).Display())
	assert.Equal(t, "$12.34", New(1234, USD).Display())
}

func TestNilSafety(t *testing.T) {
	var m *Money
	assert.Equal(t, int64(0), m.Amount())
	assert.Equal(t, "", m.Currency())
	assert.Equal(t, "", m.Display())
}
