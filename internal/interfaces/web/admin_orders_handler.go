package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/orders"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// AdminOrders todas las órdenes con filtro por estado y búsqueda por número o
// cliente. Los filtros se componen: ambos aplican a la vez.
func (h *Handler) AdminOrders(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	status := c.Query("status", orders.StatusAll)
	query := c.Query("q")

	var list []entity.Order
	if all, err := h.conn(c).Orders(c.Context()); err != nil {
		h.failSection(c, "orders", err)
	} else {
		list = orders.Search(orders.FilterByStatus(all, status), query)
	}

	return h.render(c, "admin_orders", fiber.Map{
		"Layout":   h.layout(c, "Orders", "admin"),
		"Table":    view.AdminOrdersTable(list),
		"Statuses": domain.OrderStatuses,
		"Status":   status,
		"Query":    query,
	})
}
