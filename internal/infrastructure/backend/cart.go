package backend

import (
	"context"
	"fmt"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// AddToCartRequest alta de línea en el carrito.
type AddToCartRequest struct {
	ProductID int `json:"product_id"`
	VariantID int `json:"variant_id"`
	Quantity  int `json:"quantity"`
}

// CreateOrderResponse respuesta del checkout.
type CreateOrderResponse struct {
	OrderID int `json:"order_id"`
}

// Cart líneas del carrito del cliente logueado.
func (cn *Conn) Cart(ctx context.Context) ([]entity.CartItem, error) {
	var out []entity.CartItem
	if err := cn.do(ctx, "GET", "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToCart añade una variante al carrito.
func (cn *Conn) AddToCart(ctx context.Context, in AddToCartRequest) error {
	return cn.do(ctx, "POST", "/api/cart", in, nil)
}

// UpdateCartItem cambia la cantidad de una línea.
func (cn *Conn) UpdateCartItem(ctx context.Context, cartItemID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/cart/%d", cartItemID), body, nil)
}

// DeleteCartItem elimina una línea del carrito.
func (cn *Conn) DeleteCartItem(ctx context.Context, cartItemID int) error {
	return cn.do(ctx, "DELETE", fmt.Sprintf("/api/cart/%d", cartItemID), nil, nil)
}

// Orders lista las órdenes visibles para la sesión actual (las propias para
// clientes; todas para empleados).
func (cn *Conn) Orders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := cn.do(ctx, "GET", "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder convierte el carrito en una orden pendiente (checkout).
func (cn *Conn) CreateOrder(ctx context.Context) (*CreateOrderResponse, error) {
	var out CreateOrderResponse
	if err := cn.do(ctx, "POST", "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order detalle de una orden con sus líneas.
func (cn *Conn) Order(ctx context.Context, id int) (*entity.Order, error) {
	var out entity.Order
	if err := cn.do(ctx, "GET", fmt.Sprintf("/api/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptOrder acepta una orden pendiente; el backend descuenta stock y asigna
// el empleado de la sesión.
func (cn *Conn) AcceptOrder(ctx context.Context, id int) error {
	return cn.do(ctx, "POST", fmt.Sprintf("/api/orders/%d/accept", id), nil, nil)
}

// UpdateOrderStatus cambia el estado de una orden.
func (cn *Conn) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/orders/%d/status", id), body, nil)
}
