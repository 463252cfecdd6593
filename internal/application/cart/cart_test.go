package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ashhabsport/storefront-web/internal/application/cart"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// El total del carrito es la suma de precio × cantidad de cada línea.
func TestTotal(t *testing.T) {
	items := []entity.CartItem{
		{ID: 1, Price: decimal.NewFromFloat(79.90), Quantity: 2},
		{ID: 2, Price: decimal.NewFromInt(120), Quantity: 1},
	}
	assert.True(t, cart.Total(items).Equal(decimal.NewFromFloat(279.80)),
		"total esperado 279.80, obtenido %s", cart.Total(items))
}

// Un carrito vacío totaliza cero, nunca un valor indefinido.
func TestTotal_CarritoVacio(t *testing.T) {
	assert.True(t, cart.Total(nil).IsZero())
	assert.True(t, cart.Total([]entity.CartItem{}).IsZero())
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, 3, cart.CoerceQuantity("3", 1))
	assert.Equal(t, 1, cart.CoerceQuantity("0", 1))
	assert.Equal(t, 1, cart.CoerceQuantity("-2", 1))
	assert.Equal(t, 1, cart.CoerceQuantity("x", 1))
	assert.Equal(t, 1, cart.CoerceQuantity("", 1))
}
