package entity

import "github.com/ashhabsport/storefront-web/internal/domain"

// User identidad devuelta por el backend en /api/session y /api/login.
// Role solo viene poblado para empleados.
type User struct {
	ID   int    `json:"id"`
	Type string `json:"type"` // customer | employee
	Role string `json:"role,omitempty"`
	Name string `json:"name"`
}

// IsCustomer indica si la sesión pertenece a un cliente.
func (u *User) IsCustomer() bool {
	return u != nil && u.Type == domain.UserTypeCustomer
}

// IsEmployee indica si la sesión pertenece a un empleado (admin incluido).
func (u *User) IsEmployee() bool {
	return u != nil && u.Type == domain.UserTypeEmployee
}

// IsAdmin indica si la sesión es de un empleado con rol elevado.
func (u *User) IsAdmin() bool {
	return u.IsEmployee() && u.Role == domain.RoleAdmin
}

// RoleLabel etiqueta visible en la cabecera (pill de rol).
func (u *User) RoleLabel() string {
	switch {
	case u == nil:
		return "Guest"
	case u.IsCustomer():
		return "Customer"
	case u.IsAdmin():
		return "Admin"
	case u.IsEmployee():
		return "Employee"
	default:
		return "User"
	}
}
