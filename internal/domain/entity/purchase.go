package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor; repone stock de una variante.
type Purchase struct {
	ID           int              `json:"purchase_id"`
	PurchaseDate string           `json:"purchase_date"`
	SupplierName string           `json:"supplier_name"`
	VariantID    int              `json:"variant_id"`
	ProductName  string           `json:"product_name"`
	Size         string           `json:"size"`
	Color        string           `json:"color"`
	Quantity     *int             `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	TotalCost    *decimal.Decimal `json:"total_cost"`
	Notes        string           `json:"notes"`
}

// ItemLabel descripción del ítem comprado ("producto • talla / color").
func (p Purchase) ItemLabel() string {
	if p.ProductName == "" {
		if p.VariantID != 0 {
			return fmt.Sprintf("Variant #%d", p.VariantID)
		}
		return "-"
	}
	size, color := p.Size, p.Color
	if size == "" {
		size = "-"
	}
	if color == "" {
		color = "-"
	}
	return p.ProductName + " • " + size + " / " + color
}
