package view

import (
	"fmt"
	"strconv"

	"github.com/ashhabsport/storefront-web/internal/application/cart"
	"github.com/ashhabsport/storefront-web/internal/application/inventory"
	"github.com/ashhabsport/storefront-web/internal/application/orders"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// adminUsername la cuenta raíz del back-office; nunca se ofrece borrarla.
const adminUsername = "admin"

// CartTable tabla del carrito con total de línea por fila y formulario de
// cantidad embebido. Devuelve también el total formateado.
func CartTable(items []entity.CartItem) (Table, string) {
	t := Table{
		Columns: []string{"Product", "Variant", "Price", "Qty", "Line total", ""},
		Empty:   "Your cart is empty.",
	}
	for _, it := range items {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			{Text: it.ProductName, Strong: true, Sub: it.Category},
			Text(it.Size + " / " + it.Color),
			Text(money.ILS(it.Price)),
			{Form: &InlineForm{
				URL:   fmt.Sprintf("/cart/%d", it.ID),
				Name:  "quantity",
				Value: strconv.Itoa(it.Quantity),
			}},
			Strong(money.ILS(it.LineTotal())),
			Actions(Action{
				Label: "Remove",
				URL:   fmt.Sprintf("/cart/%d/delete", it.ID),
				Post:  true,
				Style: "danger",
			}),
		}})
	}
	return t, money.ILS(cart.Total(items))
}

// EmployeesTable tabla de empleados del panel admin. La fila del usuario
// admin renderiza un placeholder no interactivo en lugar de Delete.
func EmployeesTable(emps []entity.Employee) Table {
	t := Table{
		Columns: []string{"#", "Name", "Username", "Email", "Phone", "Role", "Salary", "Actions"},
		Empty:   "No employees yet.",
	}
	for _, e := range emps {
		del := Action{
			Label:   "Delete",
			URL:     fmt.Sprintf("/admin/employees/%d/delete", e.ID),
			Post:    true,
			Style:   "danger",
			Confirm: "Are you sure you want to delete this employee?",
		}
		if e.Username == adminUsername {
			del = Action{Label: "-", Disabled: true}
		}
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", e.ID)),
			Text(e.FullName()),
			Text(e.Username),
			Text(e.Email),
			Text(orDash(e.Phone)),
			Pill(e.Role, ""),
			Strong(money.ILS(e.SalaryOrZero())),
			Actions(
				Action{Label: "Edit Salary", URL: fmt.Sprintf("/admin/employees/%d/salary", e.ID)},
				del,
			),
		}})
	}
	return t
}

// AdminOrdersTable tabla de órdenes del panel: el control Accept solo se
// renderiza mientras la orden sigue pendiente.
func AdminOrdersTable(list []entity.Order) Table {
	t := Table{
		Columns: []string{"#", "Customer", "Date", "Status", "Total", "Assigned", "Actions"},
		Empty:   "No orders match the current filters.",
	}
	for _, o := range list {
		actions := []Action{}
		if orders.CanAccept(o) {
			actions = append(actions, Action{
				Label: "Accept",
				URL:   fmt.Sprintf("/orders/%d/accept", o.ID),
				Post:  true,
				Style: "ok",
			})
		}
		actions = append(actions, Action{Label: "Details", URL: fmt.Sprintf("/orders/%d", o.ID)})
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", o.ID)),
			Text(o.CustomerName()),
			Text(o.OrderDate),
			Pill(string(o.Status), StatusClass(o.Status)),
			Strong(money.ILS(o.TotalAmount)),
			Text(o.EmployeeName()),
			Actions(actions...),
		}})
	}
	return t
}

// PendingOrdersTable cola de pendientes de la mesa de empleado.
func PendingOrdersTable(list []entity.Order) Table {
	t := Table{
		Columns: []string{"#", "Customer", "Date", "Total", "", ""},
		Empty:   "No pending orders.",
	}
	for _, o := range list {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", o.ID)),
			Text(o.CustomerName()),
			Text(o.OrderDate),
			Strong(money.ILS(o.TotalAmount)),
			Actions(Action{Label: "View", URL: fmt.Sprintf("/orders/%d", o.ID)}),
			Actions(Action{
				Label: "Accept",
				URL:   fmt.Sprintf("/orders/%d/accept", o.ID),
				Post:  true,
				Style: "ok",
			}),
		}})
	}
	return t
}

// CustomerOrdersTable historial de órdenes del cliente.
func CustomerOrdersTable(list []entity.Order) Table {
	t := Table{
		Columns: []string{"#", "Date", "Status", "Total", ""},
		Empty:   "No orders yet.",
	}
	for _, o := range list {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", o.ID)),
			Text(o.OrderDate),
			Pill(string(o.Status), StatusClass(o.Status)),
			Strong(money.ILS(o.TotalAmount)),
			Actions(Action{Label: "Details", URL: fmt.Sprintf("/orders/%d", o.ID)}),
		}})
	}
	return t
}

// StockTable inventario con badge de nivel y edición de cantidad en línea.
func StockTable(rows []entity.StockRow) Table {
	t := Table{
		Columns: []string{"Product", "Variant", "Category", "Price", "Stock", "Update"},
		Empty:   "No stock rows found.",
	}
	for _, r := range rows {
		tier := inventory.Classify(r.StockQuantity)
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			{Text: fmt.Sprintf("#%d", r.ProductID), Strong: true, Sub: r.ProductName},
			Text(r.Size + " / " + r.Color),
			Text(r.Category),
			Text(money.ILS(r.Price)),
			Pill(strconv.Itoa(r.StockQuantity), "tier-"+string(tier)),
			{Form: &InlineForm{
				URL:   fmt.Sprintf("/admin/stock/%d", r.VariantID),
				Name:  "quantity",
				Value: strconv.Itoa(r.StockQuantity),
			}},
		}})
	}
	return t
}

// LowStockTable lista de reposición (variantes bajo el umbral).
func LowStockTable(rows []entity.StockRow) Table {
	t := Table{
		Columns: []string{"Product", "Variant", "Stock"},
		Empty:   "All products are well stocked!",
	}
	for _, r := range inventory.LowStock(rows) {
		t.Rows = append(t.Rows, Row{
			Class: "low-stock",
			Cells: []Cell{
				Strong(r.ProductName),
				Text(r.Size + " / " + r.Color),
				Pill(strconv.Itoa(r.StockQuantity), "tier-bad"),
			},
		})
	}
	return t
}

// TopProductsTable ranking de más vendidos del dashboard.
func TopProductsTable(list []entity.TopProduct) Table {
	t := Table{
		Columns: []string{"Rank", "Product", "Category", "Sold", "Revenue", ""},
		Empty:   "No sales data yet.",
	}
	for i, p := range list {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", i+1)),
			Strong(p.ProductName),
			Text(p.Category),
			Strong(fmt.Sprintf("%d units", p.TotalSold)),
			Strong(money.ILS(p.TotalRevenue)),
			Actions(Action{Label: "View", URL: fmt.Sprintf("/products/%d", p.ProductID)}),
		}})
	}
	return t
}

// RecentOrdersTable últimas órdenes del dashboard.
func RecentOrdersTable(list []entity.Order) Table {
	t := Table{
		Columns: []string{"#", "Customer", "Date", "Status", "Total", ""},
		Empty:   "No orders yet.",
	}
	for _, o := range list {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", o.ID)),
			Text(o.CustomerName()),
			Text(o.OrderDate),
			Pill(string(o.Status), StatusClass(o.Status)),
			Strong(money.ILS(o.TotalAmount)),
			Actions(Action{Label: "View", URL: fmt.Sprintf("/orders/%d", o.ID)}),
		}})
	}
	return t
}

// AdminProductsTable catálogo administrable.
func AdminProductsTable(list []entity.Product) Table {
	t := Table{
		Columns: []string{"#", "Product", "Category", "Price", "Featured", "Variants", "Actions"},
		Empty:   "No products found.",
	}
	for _, p := range list {
		featured := "No"
		if p.IsFeatured() {
			featured = "Yes"
		}
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", p.ID)),
			{Text: p.Name, Strong: true, Sub: p.Description},
			Text(p.Category),
			Strong(money.ILS(p.Price)),
			Text(featured),
			Text(fmt.Sprintf("%d variants", len(p.Variants))),
			Actions(
				Action{Label: "Edit Price", URL: fmt.Sprintf("/admin/products/%d/price", p.ID)},
				Action{Label: "View", URL: fmt.Sprintf("/products/%d", p.ID), Style: "ghost"},
				Action{
					Label:   "Delete",
					URL:     fmt.Sprintf("/admin/products/%d/delete", p.ID),
					Post:    true,
					Style:   "danger",
					Confirm: "Delete this product? This will also delete all variants.",
				},
			),
		}})
	}
	return t
}

// SuppliersTable proveedores con edición y borrado.
func SuppliersTable(list []entity.Supplier) Table {
	t := Table{
		Columns: []string{"#", "Name", "Phone", "Email", "Address", "Actions"},
		Empty:   "No suppliers registered.",
	}
	for _, s := range list {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Strong(fmt.Sprintf("#%d", s.ID)),
			Strong(s.Name),
			Text(orDash(s.Phone)),
			Text(orDash(s.Email)),
			Text(orDash(s.Address)),
			Actions(
				Action{Label: "Edit", URL: fmt.Sprintf("/admin/suppliers/%d/edit", s.ID)},
				Action{
					Label:   "Delete",
					URL:     fmt.Sprintf("/admin/suppliers/%d/delete", s.ID),
					Post:    true,
					Style:   "danger",
					Confirm: "Delete this supplier?",
				},
			),
		}})
	}
	return t
}

// PurchasesTable historial de compras; los campos nulos caen a "-".
func PurchasesTable(list []entity.Purchase) Table {
	t := Table{
		Columns: []string{"Date", "Supplier", "Item", "Qty", "Unit cost", "Total", "Notes"},
		Empty:   "No purchases recorded yet.",
	}
	for _, p := range list {
		qty, unit, total := "-", "-", "-"
		if p.Quantity != nil {
			qty = strconv.Itoa(*p.Quantity)
		}
		if p.UnitCost != nil {
			unit = money.ILS(*p.UnitCost)
		}
		if p.TotalCost != nil {
			total = money.ILS(*p.TotalCost)
		}
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Text(orDash(p.PurchaseDate)),
			Text(orDash(p.SupplierName)),
			Text(p.ItemLabel()),
			Text(qty),
			Text(unit),
			Text(total),
			Text(p.Notes),
		}})
	}
	return t
}

// PaymentMethodsTable métodos de pago guardados.
func PaymentMethodsTable(list []entity.PaymentMethod) Table {
	t := Table{
		Columns: []string{"Type", "Holder", "Number", "Expiry", "Default", ""},
		Empty:   "No payment methods saved yet.",
	}
	for _, p := range list {
		def := "—"
		if p.IsDefault != 0 {
			def = "Yes"
		}
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			Text(orDash(p.CardType)),
			Text(orDash(p.HolderName)),
			Text(p.DisplayNumber()),
			Text(p.ExpiryMonth + " / " + p.ExpiryYear),
			Text(def),
			Actions(Action{
				Label:   "Delete",
				URL:     fmt.Sprintf("/payment-info/%d/delete", p.ID),
				Post:    true,
				Style:   "danger",
				Confirm: "Delete this payment method?",
			}),
		}})
	}
	return t
}

// OrderItemsTable líneas del detalle de orden.
func OrderItemsTable(items []entity.OrderItem) Table {
	t := Table{
		Columns: []string{"Product", "Price", "Qty", "Line total"},
		Empty:   "This order has no items.",
	}
	for _, it := range items {
		t.Rows = append(t.Rows, Row{Cells: []Cell{
			{Text: it.ProductName, Strong: true, Sub: it.Size + " / " + it.Color},
			Text(money.ILS(it.Price)),
			Text(strconv.Itoa(it.Quantity)),
			Strong(money.ILS(it.LineTotal())),
		}})
	}
	return t
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
