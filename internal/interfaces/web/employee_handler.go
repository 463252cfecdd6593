package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/orders"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// EmployeeDesk mesa del empleado: cola de pendientes con aceptación y el
// resto de órdenes, más el panel de perfil.
func (h *Handler) EmployeeDesk(c *fiber.Ctx) error {
	u, ok := h.guard(c, domain.RequireEmployee)
	if !ok {
		return nil
	}

	var pending, rest []entity.Order
	if list, err := h.conn(c).Orders(c.Context()); err != nil {
		h.failSection(c, "orders", err)
	} else {
		pending, rest = orders.SplitPending(list)
	}

	var profile *entity.EmployeeProfile
	if p, err := h.conn(c).EmployeeProfile(c.Context()); err != nil {
		h.failSection(c, "profile", err)
	} else {
		profile = p
	}

	mine := view.AdminOrdersTable(rest)
	mine.Empty = "No orders assigned yet."

	return h.render(c, "employee", fiber.Map{
		"Layout":  h.layout(c, "Employee desk", ""),
		"Who":     u.Name,
		"Pending": view.PendingOrdersTable(pending),
		"Mine":    mine,
		"Profile": profile,
	})
}

// UpdateEmployeeProfile guarda el perfil del empleado logueado.
func (h *Handler) UpdateEmployeeProfile(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireEmployee); !ok {
		return nil
	}

	in := backend.EmployeeProfileUpdate{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Password:  c.FormValue("password"),
	}

	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		h.flashBad(c, "Missing fields", "First name, last name, and email are required.")
		return h.redirect(c, "/employee")
	}

	if err := h.conn(c).UpdateEmployeeProfile(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/employee")
	}

	h.flashOK(c, "Saved", "Profile updated successfully.")
	return h.redirect(c, "/employee")
}
