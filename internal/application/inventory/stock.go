// Package inventory clasificación de existencias, lista de reposición y
// cálculos de compras a proveedor.
package inventory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Tier nivel de existencias de una variante.
type Tier string

const (
	TierGood Tier = "good" // >= 15
	TierWarn Tier = "warn" // 5..14
	TierBad  Tier = "bad"  // < 5
)

// lowStockThreshold por debajo de esta cantidad la variante entra en la lista
// de reposición.
const lowStockThreshold = 5

const goodStockThreshold = 15

// Classify asigna el nivel de existencias a una cantidad.
func Classify(quantity int) Tier {
	switch {
	case quantity >= goodStockThreshold:
		return TierGood
	case quantity >= lowStockThreshold:
		return TierWarn
	default:
		return TierBad
	}
}

// IsLowStock una variante está baja de stock si y solo si su cantidad es
// estrictamente menor que el umbral.
func IsLowStock(quantity int) bool {
	return quantity < lowStockThreshold
}

// LowStock filas que necesitan reposición, en el orden original.
func LowStock(rows []entity.StockRow) []entity.StockRow {
	out := make([]entity.StockRow, 0)
	for _, r := range rows {
		if IsLowStock(r.StockQuantity) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByProduct búsqueda por substring del nombre de producto, sin
// distinguir mayúsculas, preservando el orden.
func FilterByProduct(rows []entity.StockRow, query string) []entity.StockRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]entity.StockRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ProductName), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortForPicker ordena para el selector de compras: producto, talla y color,
// todos sin distinguir mayúsculas.
func SortForPicker(rows []entity.StockRow) []entity.StockRow {
	out := make([]entity.StockRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := strings.ToLower(out[i].ProductName), strings.ToLower(out[j].ProductName)
		if pi != pj {
			return pi < pj
		}
		si, sj := strings.ToLower(out[i].Size), strings.ToLower(out[j].Size)
		if si != sj {
			return si < sj
		}
		return strings.ToLower(out[i].Color) < strings.ToLower(out[j].Color)
	})
	return out
}

// CoerceQuantity cantidad de stock desde formulario; valores no parseables o
// negativos caen a cero.
func CoerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseCost coste unitario desde formulario; no parseable o negativo cae a cero.
func ParseCost(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PurchaseTotal coste total de una compra (cantidad × coste unitario).
func PurchaseTotal(quantity int, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(quantity)))
}
