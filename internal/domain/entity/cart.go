package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito del cliente logueado.
type CartItem struct {
	ID          int             `json:"cart_item_id"`
	ProductID   int             `json:"product_id"`
	VariantID   int             `json:"variant_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal precio unitario por cantidad.
func (it CartItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
