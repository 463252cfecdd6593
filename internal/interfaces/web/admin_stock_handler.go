package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/inventory"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// AdminStock inventario por variante, con búsqueda por producto y la lista de
// reposición al pie.
func (h *Handler) AdminStock(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	query := c.Query("q")

	var rows []entity.StockRow
	if list, err := h.conn(c).Stock(c.Context()); err != nil {
		h.failSection(c, "stock", err)
	} else {
		rows = list
	}

	return h.render(c, "admin_stock", fiber.Map{
		"Layout":   h.layout(c, "Stock", "admin"),
		"Table":    view.StockTable(inventory.FilterByProduct(rows, query)),
		"LowStock": view.LowStockTable(rows),
		"Query":    query,
	})
}

// UpdateStock fija la cantidad de una variante desde el formulario en línea.
func (h *Handler) UpdateStock(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/stock")
	}

	quantity := inventory.CoerceQuantity(c.FormValue("quantity"))
	if err := h.conn(c).UpdateStock(c.Context(), id, quantity); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Saved", "Stock quantity updated.")
	}
	return h.redirect(c, "/admin/stock")
}
