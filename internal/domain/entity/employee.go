package entity

import "github.com/shopspring/decimal"

// Employee empleado del back-office. Salary puede venir nulo.
type Employee struct {
	ID        int              `json:"employee_id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Role      string           `json:"role"`
	Salary    *decimal.Decimal `json:"salary"`
}

// FullName nombre completo del empleado.
func (e Employee) FullName() string {
	return joinName(e.FirstName, e.LastName)
}

// SalaryOrZero salario, o cero cuando no está definido.
func (e Employee) SalaryOrZero() decimal.Decimal {
	if e.Salary == nil {
		return decimal.Zero
	}
	return *e.Salary
}
