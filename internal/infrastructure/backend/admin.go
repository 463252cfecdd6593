package backend

import (
	"context"
	"fmt"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EmployeePayload alta de empleado.
type EmployeePayload struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Password  string          `json:"password"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone"`
	Salary    decimal.Decimal `json:"salary"`
}

// SupplierPayload alta/edición de proveedor.
type SupplierPayload struct {
	Name    string `json:"supplier_name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PurchasePayload registro de compra a proveedor.
type PurchasePayload struct {
	SupplierName string          `json:"supplier_name"`
	VariantID    int             `json:"variant_id"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Notes        string          `json:"notes"`
}

// Employees lista los empleados.
func (cn *Conn) Employees(ctx context.Context) ([]entity.Employee, error) {
	var out []entity.Employee
	if err := cn.do(ctx, "GET", "/api/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee da de alta un empleado.
func (cn *Conn) CreateEmployee(ctx context.Context, in EmployeePayload) error {
	return cn.do(ctx, "POST", "/api/employees", in, nil)
}

// UpdateEmployeeSalary actualización parcial: solo el salario.
func (cn *Conn) UpdateEmployeeSalary(ctx context.Context, id int, salary decimal.Decimal) error {
	body := map[string]decimal.Decimal{"salary": salary}
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/employees/%d", id), body, nil)
}

// DeleteEmployee elimina un empleado.
func (cn *Conn) DeleteEmployee(ctx context.Context, id int) error {
	return cn.do(ctx, "DELETE", fmt.Sprintf("/api/employees/%d", id), nil, nil)
}

// Stock inventario completo por variante.
func (cn *Conn) Stock(ctx context.Context) ([]entity.StockRow, error) {
	var out []entity.StockRow
	if err := cn.do(ctx, "GET", "/api/stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock fija la cantidad de una variante.
func (cn *Conn) UpdateStock(ctx context.Context, variantID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/stock/%d", variantID), body, nil)
}

// AdminStats métricas del panel.
func (cn *Conn) AdminStats(ctx context.Context) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := cn.do(ctx, "GET", "/api/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopProducts productos más vendidos, hasta limit filas.
func (cn *Conn) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	var out []entity.TopProduct
	path := fmt.Sprintf("/api/admin/top-products?limit=%d", limit)
	if err := cn.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Suppliers lista los proveedores.
func (cn *Conn) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := cn.do(ctx, "GET", "/api/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSupplier da de alta un proveedor.
func (cn *Conn) CreateSupplier(ctx context.Context, in SupplierPayload) error {
	return cn.do(ctx, "POST", "/api/suppliers", in, nil)
}

// UpdateSupplier edita un proveedor.
func (cn *Conn) UpdateSupplier(ctx context.Context, id int, in SupplierPayload) error {
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/suppliers/%d", id), in, nil)
}

// DeleteSupplier elimina un proveedor.
func (cn *Conn) DeleteSupplier(ctx context.Context, id int) error {
	return cn.do(ctx, "DELETE", fmt.Sprintf("/api/suppliers/%d", id), nil, nil)
}

// Purchases historial de compras a proveedores.
func (cn *Conn) Purchases(ctx context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	if err := cn.do(ctx, "GET", "/api/purchases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePurchase registra una compra; el backend repone el stock de la variante.
func (cn *Conn) CreatePurchase(ctx context.Context, in PurchasePayload) error {
	return cn.do(ctx, "POST", "/api/purchases", in, nil)
}
