package view_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

func actionLabels(c view.Cell) []string {
	labels := make([]string, 0, len(c.Actions))
	for _, a := range c.Actions {
		labels = append(labels, a.Label)
	}
	return labels
}

// Un carrito vacío renderiza el placeholder como única fila y totaliza cero.
func TestCartTable_Vacio(t *testing.T) {
	table, total := view.CartTable(nil)
	assert.Empty(t, table.Rows)
	assert.Equal(t, "Your cart is empty.", table.Empty)
	assert.Equal(t, "₪0", total)
}

func TestCartTable_TotalYFormularios(t *testing.T) {
	items := []entity.CartItem{
		{ID: 5, ProductName: "Running Shoes", Price: decimal.NewFromInt(100), Quantity: 2},
		{ID: 6, ProductName: "Shirt", Price: decimal.NewFromInt(50), Quantity: 1},
	}
	table, total := view.CartTable(items)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "₪250", total)

	qty := table.Rows[0].Cells[3]
	require.NotNil(t, qty.Form)
	assert.Equal(t, "/cart/5", qty.Form.URL)
	assert.Equal(t, "2", qty.Form.Value)
}

// El control Accept solo existe mientras la orden está pendiente; tras
// aceptarla la fila deja de ofrecerlo.
func TestAdminOrdersTable_AcceptSoloPendientes(t *testing.T) {
	table := view.AdminOrdersTable([]entity.Order{
		{ID: 1, Status: domain.OrderPending},
		{ID: 2, Status: domain.OrderAccepted},
		{ID: 3, Status: domain.OrderCancelled},
	})
	require.Len(t, table.Rows, 3)

	actions := table.Rows[0].Cells[6]
	assert.Contains(t, actionLabels(actions), "Accept")
	assert.Equal(t, "/orders/1/accept", actions.Actions[0].URL)

	assert.NotContains(t, actionLabels(table.Rows[1].Cells[6]), "Accept")
	assert.NotContains(t, actionLabels(table.Rows[2].Cells[6]), "Accept")
}

// La fila de la cuenta admin muestra un placeholder no interactivo en lugar
// del control de borrado.
func TestEmployeesTable_AdminSinDelete(t *testing.T) {
	table := view.EmployeesTable([]entity.Employee{
		{ID: 1, Username: "admin", FirstName: "Root"},
		{ID: 2, Username: "omar", FirstName: "Omar"},
	})
	require.Len(t, table.Rows, 2)

	adminActions := table.Rows[0].Cells[7].Actions
	require.Len(t, adminActions, 2)
	assert.Equal(t, "-", adminActions[1].Label)
	assert.True(t, adminActions[1].Disabled)

	workerActions := table.Rows[1].Cells[7].Actions
	assert.Equal(t, "Delete", workerActions[1].Label)
	assert.Equal(t, "/admin/employees/2/delete", workerActions[1].URL)
	assert.NotEmpty(t, workerActions[1].Confirm)
}

// El badge de stock refleja los tres niveles con sus fronteras.
func TestStockTable_Niveles(t *testing.T) {
	table := view.StockTable([]entity.StockRow{
		{VariantID: 1, StockQuantity: 20},
		{VariantID: 2, StockQuantity: 7},
		{VariantID: 3, StockQuantity: 2},
	})
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "tier-good", table.Rows[0].Cells[4].Class)
	assert.Equal(t, "tier-warn", table.Rows[1].Cells[4].Class)
	assert.Equal(t, "tier-bad", table.Rows[2].Cells[4].Class)

	form := table.Rows[0].Cells[5].Form
	require.NotNil(t, form)
	assert.Equal(t, "/admin/stock/1", form.URL)
	assert.Equal(t, "20", form.Value)
}

func TestLowStockTable_SoloBajoUmbral(t *testing.T) {
	table := view.LowStockTable([]entity.StockRow{
		{VariantID: 1, ProductName: "Shoes", StockQuantity: 2},
		{VariantID: 2, ProductName: "Shirt", StockQuantity: 15},
	})
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Shoes", table.Rows[0].Cells[0].Text)
	assert.Equal(t, "All products are well stocked!", table.Empty)
}

func TestPurchasesTable_CamposNulos(t *testing.T) {
	table := view.PurchasesTable([]entity.Purchase{{ID: 1}})
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "-", table.Rows[0].Cells[0].Text) // fecha
	assert.Equal(t, "-", table.Rows[0].Cells[3].Text) // cantidad
	assert.Equal(t, "-", table.Rows[0].Cells[4].Text) // coste unitario
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "status-pending", view.StatusClass(domain.OrderPending))
	assert.Equal(t, "status-accepted", view.StatusClass(domain.OrderAccepted))
	assert.Equal(t, "status-shipped", view.StatusClass(domain.OrderShipped))
	assert.Equal(t, "status-cancelled", view.StatusClass(domain.OrderCancelled))
	assert.Equal(t, "", view.StatusClass(domain.OrderStatus("???")))
}
