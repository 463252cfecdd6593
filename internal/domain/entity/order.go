package entity

import (
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/shopspring/decimal"
)

// Order orden de compra tal como la devuelve el backend. Los nombres del
// empleado asignado vienen vacíos mientras nadie la acepta.
type Order struct {
	ID            int                `json:"order_id"`
	CustomerFirst string             `json:"customer_first"`
	CustomerLast  string             `json:"customer_last"`
	OrderDate     string             `json:"order_date"`
	Status        domain.OrderStatus `json:"status"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	EmployeeFirst string             `json:"employee_first,omitempty"`
	EmployeeLast  string             `json:"employee_last,omitempty"`
	Items         []OrderItem        `json:"items,omitempty"`
}

// CustomerName nombre completo del cliente.
func (o Order) CustomerName() string {
	return joinName(o.CustomerFirst, o.CustomerLast)
}

// EmployeeName nombre completo del empleado asignado; "-" si no hay.
func (o Order) EmployeeName() string {
	if o.EmployeeFirst == "" {
		return "-"
	}
	return joinName(o.EmployeeFirst, o.EmployeeLast)
}

// OrderItem línea de una orden.
type OrderItem struct {
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal precio unitario por cantidad.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
