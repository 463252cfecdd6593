package backend

import (
	"context"
	"fmt"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// CustomerProfileUpdate edición de perfil de cliente; Password solo viaja si
// el usuario escribió una nueva.
type CustomerProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password,omitempty"`
}

// EmployeeProfileUpdate edición de perfil de empleado.
type EmployeeProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password,omitempty"`
}

// PaymentMethodPayload alta de método de pago. El CVV es de solo escritura.
type PaymentMethodPayload struct {
	CardType    string `json:"card_type"`
	HolderName  string `json:"card_holder_name"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	IsDefault   int    `json:"is_default"`
}

// CustomerProfile perfil del cliente logueado.
func (cn *Conn) CustomerProfile(ctx context.Context) (*entity.CustomerProfile, error) {
	var out entity.CustomerProfile
	if err := cn.do(ctx, "GET", "/api/customer/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomerProfile guarda el perfil del cliente.
func (cn *Conn) UpdateCustomerProfile(ctx context.Context, in CustomerProfileUpdate) error {
	return cn.do(ctx, "PUT", "/api/customer/profile", in, nil)
}

// EmployeeProfile perfil del empleado logueado.
func (cn *Conn) EmployeeProfile(ctx context.Context) (*entity.EmployeeProfile, error) {
	var out entity.EmployeeProfile
	if err := cn.do(ctx, "GET", "/api/employee/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployeeProfile guarda el perfil del empleado.
func (cn *Conn) UpdateEmployeeProfile(ctx context.Context, in EmployeeProfileUpdate) error {
	return cn.do(ctx, "PUT", "/api/employee/profile", in, nil)
}

// PaymentMethods métodos de pago guardados del cliente.
func (cn *Conn) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	if err := cn.do(ctx, "GET", "/api/payment-info", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPaymentMethod guarda un método de pago nuevo.
func (cn *Conn) AddPaymentMethod(ctx context.Context, in PaymentMethodPayload) error {
	return cn.do(ctx, "POST", "/api/payment-info", in, nil)
}

// DeletePaymentMethod elimina un método de pago.
func (cn *Conn) DeletePaymentMethod(ctx context.Context, id int) error {
	return cn.do(ctx, "DELETE", fmt.Sprintf("/api/payment-info/%d", id), nil, nil)
}
