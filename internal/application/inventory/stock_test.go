package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashhabsport/storefront-web/internal/application/inventory"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// Los tres niveles de existencias y sus fronteras exactas.
func TestClassify_Fronteras(t *testing.T) {
	assert.Equal(t, inventory.TierBad, inventory.Classify(0))
	assert.Equal(t, inventory.TierBad, inventory.Classify(4))
	assert.Equal(t, inventory.TierWarn, inventory.Classify(5))
	assert.Equal(t, inventory.TierWarn, inventory.Classify(14))
	assert.Equal(t, inventory.TierGood, inventory.Classify(15))
	assert.Equal(t, inventory.TierGood, inventory.Classify(100))
}

// Bajo stock si y solo si la cantidad es estrictamente menor que el umbral.
func TestIsLowStock_UmbralEstricto(t *testing.T) {
	assert.True(t, inventory.IsLowStock(4))
	assert.False(t, inventory.IsLowStock(5))
	assert.False(t, inventory.IsLowStock(6))
}

func TestLowStock_FiltraYPreservaOrden(t *testing.T) {
	rows := []entity.StockRow{
		{VariantID: 1, ProductName: "Shoes", StockQuantity: 2},
		{VariantID: 2, ProductName: "Shirt", StockQuantity: 20},
		{VariantID: 3, ProductName: "Pants", StockQuantity: 0},
	}
	got := inventory.LowStock(rows)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].VariantID)
	assert.Equal(t, 3, got[1].VariantID)
}

func TestFilterByProduct(t *testing.T) {
	rows := []entity.StockRow{
		{VariantID: 1, ProductName: "Running Shoes"},
		{VariantID: 2, ProductName: "Training Shirt"},
	}
	got := inventory.FilterByProduct(rows, "  SHOES ")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].VariantID)

	assert.Len(t, inventory.FilterByProduct(rows, ""), 2)
}

func TestSortForPicker_ProductoTallaColor(t *testing.T) {
	rows := []entity.StockRow{
		{VariantID: 1, ProductName: "zapatos", Size: "M", Color: "White"},
		{VariantID: 2, ProductName: "Camiseta", Size: "L", Color: "Black"},
		{VariantID: 3, ProductName: "Zapatos", Size: "M", Color: "Black"},
		{VariantID: 4, ProductName: "camiseta", Size: "L", Color: "Azul"},
	}
	got := inventory.SortForPicker(rows)
	require.Len(t, got, 4)
	assert.Equal(t, 4, got[0].VariantID)
	assert.Equal(t, 2, got[1].VariantID)
	assert.Equal(t, 3, got[2].VariantID)
	assert.Equal(t, 1, got[3].VariantID)

	// La lista original no debe mutarse.
	assert.Equal(t, 1, rows[0].VariantID)
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, 7, inventory.CoerceQuantity("7"))
	assert.Equal(t, 7, inventory.CoerceQuantity(" 7 "))
	assert.Equal(t, 0, inventory.CoerceQuantity("-3"))
	assert.Equal(t, 0, inventory.CoerceQuantity("abc"))
	assert.Equal(t, 0, inventory.CoerceQuantity(""))
}

func TestParseCost(t *testing.T) {
	assert.True(t, inventory.ParseCost("12.50").Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, inventory.ParseCost("-1").IsZero())
	assert.True(t, inventory.ParseCost("basura").IsZero())
}

func TestPurchaseTotal(t *testing.T) {
	total := inventory.PurchaseTotal(10, decimal.NewFromFloat(12.5))
	assert.True(t, total.Equal(decimal.NewFromInt(125)))
}
