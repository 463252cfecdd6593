package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo con sus variantes talla/color.
type Product struct {
	ID          int             `json:"product_id"`
	Name        string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Featured    int             `json:"featured"` // tinyint del backend: 0/1
	Variants    []Variant       `json:"variants"`
}

// IsFeatured indica si el producto aparece en recomendados.
func (p Product) IsFeatured() bool { return p.Featured != 0 }

// TotalStock suma el stock de todas las variantes.
func (p Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.StockQuantity
	}
	return total
}

// Variant combinación talla/color; es la unidad a la que se rastrea el stock.
type Variant struct {
	ID            int    `json:"variant_id"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	StockQuantity int    `json:"stock_quantity"`
}
