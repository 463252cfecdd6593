package entity

import "github.com/shopspring/decimal"

// StockRow fila del inventario: una variante con su producto y existencias.
type StockRow struct {
	VariantID     int             `json:"variant_id"`
	ProductID     int             `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}
