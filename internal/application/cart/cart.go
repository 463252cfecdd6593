// Package cart totales del carrito y saneo de cantidades de formularios.
package cart

import (
	"strconv"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Total suma de los totales de línea (precio unitario × cantidad).
// Un carrito vacío totaliza cero.
func Total(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// CoerceQuantity convierte la entrada de cantidad de un formulario; si no
// parsea o no es positiva cae al valor por defecto.
func CoerceQuantity(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
