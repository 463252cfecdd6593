package money_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ashhabsport/storefront-web/pkg/money"
)

// Los importes de la tienda se muestran siempre en shekels enteros con
// separador de miles.
func TestILS_FormatoEntero(t *testing.T) {
	assert.Equal(t, "₪0", money.ILS(decimal.Zero))
	assert.Equal(t, "₪249", money.ILS(decimal.NewFromInt(249)))
	assert.Equal(t, "₪1,500", money.ILS(decimal.NewFromInt(1500)))
	assert.Equal(t, "₪1,234,567", money.ILS(decimal.NewFromInt(1234567)))
}

func TestILS_RedondeaAlShekelEntero(t *testing.T) {
	assert.Equal(t, "₪80", money.ILS(decimal.NewFromFloat(79.9)))
	assert.Equal(t, "₪79", money.ILS(decimal.NewFromFloat(79.2)))
}

func TestILSFloat_ValoresNoFinitos(t *testing.T) {
	// NaN e infinito nunca deben llegar a la vista como basura.
	assert.Equal(t, "₪0", money.ILSFloat(math.NaN()))
	assert.Equal(t, "₪0", money.ILSFloat(math.Inf(1)))
	assert.Equal(t, "₪0", money.ILSFloat(math.Inf(-1)))
	assert.Equal(t, "₪42", money.ILSFloat(42))
}

func TestZero(t *testing.T) {
	assert.Equal(t, "₪0", money.Zero())
}
