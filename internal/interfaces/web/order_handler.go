package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/orders"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// OrderDetail detalle de una orden. Visible para la sesión que la pueda leer
// en el backend; los empleados ven además el control de cancelación mientras
// la orden sigue pendiente.
func (h *Handler) OrderDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		h.flashBad(c, "Error", "Order not found.")
		return h.redirect(c, "/")
	}

	o, err := h.conn(c).Order(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.flashBad(c, "Error", "Order not found.")
		} else {
			h.flashBad(c, "Error", err.Error())
		}
		return h.redirect(c, "/")
	}

	u := h.user(c)
	return h.render(c, "order", fiber.Map{
		"Layout":    h.layout(c, fmt.Sprintf("Order #%d", o.ID), ""),
		"Order":     o,
		"Total":     money.ILS(o.TotalAmount),
		"Items":     view.OrderItemsTable(o.Items),
		"BackURL":   orderBackURL(u),
		"CanCancel": u.IsEmployee() && orders.CanCancel(*o),
	})
}

// AcceptOrder acepta una orden pendiente; el backend descuenta stock y deja
// asignado al empleado. Tras la redirección la fila ya no ofrece el control.
func (h *Handler) AcceptOrder(c *fiber.Ctx) error {
	u, ok := h.guard(c, domain.RequireEmployee)
	if !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, orderBackURL(u))
	}

	if err := h.conn(c).AcceptOrder(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Accepted", fmt.Sprintf("Order #%d accepted. Stock updated.", id))
	}
	return h.redirect(c, orderBackURL(u))
}

// CancelOrder cancela una orden pendiente y vuelve al detalle actualizado.
func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireEmployee); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/")
	}

	if err := h.conn(c).UpdateOrderStatus(c.Context(), id, domain.OrderCancelled); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Updated", "Order cancelled.")
	}
	return h.redirect(c, fmt.Sprintf("/orders/%d", id))
}

// orderBackURL a dónde vuelve cada identidad desde una orden.
func orderBackURL(u *entity.User) string {
	switch {
	case u.IsCustomer():
		return "/account"
	case u.IsAdmin():
		return "/admin/orders"
	case u.IsEmployee():
		return "/employee"
	default:
		return "/"
	}
}
