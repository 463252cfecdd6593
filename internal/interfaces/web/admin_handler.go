package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/orders"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// topProductsLimit filas del ranking del dashboard.
const topProductsLimit = 10

// recentOrdersCount órdenes recientes del dashboard.
const recentOrdersCount = 5

// AdminDashboard panel de administración: métricas, más vendidos y órdenes
// recientes. Las tres cargas son secuenciales y cada fallo degrada solo su
// sección.
func (h *Handler) AdminDashboard(c *fiber.Ctx) error {
	u, ok := h.guard(c, domain.RequireAdmin)
	if !ok {
		return nil
	}

	data := fiber.Map{
		"Layout": h.layout(c, "Admin dashboard", "admin"),
		"Who":    u.Name,
	}

	if stats, err := h.conn(c).AdminStats(c.Context()); err != nil {
		h.failSection(c, "stats", err)
		data["Stats"] = nil
	} else {
		data["Stats"] = stats
		data["TotalSales"] = money.ILS(stats.TotalSales)
		data["TotalPurchases"] = money.ILS(stats.TotalPurchases)
		data["NetEarnings"] = money.ILS(stats.NetEarnings)
	}

	var top []entity.TopProduct
	if list, err := h.conn(c).TopProducts(c.Context(), topProductsLimit); err != nil {
		h.failSection(c, "top-products", err)
	} else {
		top = list
	}
	data["TopProducts"] = view.TopProductsTable(top)

	var recent []entity.Order
	if list, err := h.conn(c).Orders(c.Context()); err != nil {
		h.failSection(c, "recent-orders", err)
	} else {
		recent = orders.Recent(list, recentOrdersCount)
	}
	data["RecentOrders"] = view.RecentOrdersTable(recent)

	return h.render(c, "admin_dashboard", data)
}
