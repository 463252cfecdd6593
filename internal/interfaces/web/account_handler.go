package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	appcart "github.com/ashhabsport/storefront-web/internal/application/cart"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// Account panel del cliente: carrito, historial de órdenes y perfil.
// Cada sección carga por separado; el fallo de una no bloquea las demás.
func (h *Handler) Account(c *fiber.Ctx) error {
	u, ok := h.guard(c, domain.RequireCustomer)
	if !ok {
		return nil
	}

	var items []entity.CartItem
	cartOK := true
	if list, err := h.conn(c).Cart(c.Context()); err != nil {
		h.failSection(c, "cart", err)
		cartOK = false
	} else {
		items = list
	}

	var orderList []entity.Order
	if list, err := h.conn(c).Orders(c.Context()); err != nil {
		h.failSection(c, "orders", err)
	} else {
		orderList = list
	}

	var profile *entity.CustomerProfile
	if p, err := h.conn(c).CustomerProfile(c.Context()); err != nil {
		h.failSection(c, "profile", err)
	} else {
		profile = p
	}

	cartTable, total := view.CartTable(items)
	if !cartOK {
		cartTable.Empty = "Failed to load cart."
		total = money.Zero()
	}

	return h.render(c, "account", fiber.Map{
		"Layout":    h.layout(c, "My Account", ""),
		"Who":       u.Name,
		"CartTable": cartTable,
		"CartTotal": total,
		"Orders":    view.CustomerOrdersTable(orderList),
		"Profile":   profile,
	})
}

// UpdateCartItem cambia la cantidad de una línea; cantidades inválidas caen a 1.
func (h *Handler) UpdateCartItem(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/account")
	}
	quantity := appcart.CoerceQuantity(c.FormValue("quantity"), 1)
	if err := h.conn(c).UpdateCartItem(c.Context(), id, quantity); err != nil {
		h.flashBad(c, "Error", err.Error())
	}
	return h.redirect(c, "/account")
}

// RemoveCartItem elimina una línea del carrito.
func (h *Handler) RemoveCartItem(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/account")
	}
	if err := h.conn(c).DeleteCartItem(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	}
	return h.redirect(c, "/account")
}

// Checkout convierte el carrito en orden. Si el backend pide método de pago
// ({redirect: "payment-info"}), navega a esa página en lugar de mostrar el
// error como toast.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}

	result, err := h.conn(c).CreateOrder(c.Context())
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Redirect == "payment-info" {
			return h.redirect(c, "/payment-info?required=1")
		}
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/account")
	}

	h.flashOK(c, "Order placed", fmt.Sprintf("Order #%d is now pending.", result.OrderID))
	return h.redirect(c, "/account")
}

// UpdateProfile guarda el perfil del cliente; la contraseña solo viaja si se
// escribió una nueva.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}

	in := backend.CustomerProfileUpdate{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Address:   strings.TrimSpace(c.FormValue("address")),
		Password:  c.FormValue("password"),
	}

	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		h.flashBad(c, "Missing fields", "First name, last name, and email are required.")
		return h.redirect(c, "/account")
	}

	if err := h.conn(c).UpdateCustomerProfile(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/account")
	}

	h.flashOK(c, "Saved", "Profile updated successfully.")
	return h.redirect(c, "/account")
}
