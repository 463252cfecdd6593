package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/inventory"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// AdminPurchases historial de compras a proveedor y formulario de registro.
// El selector de variantes llega ordenado por producto, talla y color.
func (h *Handler) AdminPurchases(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	var purchases []entity.Purchase
	if list, err := h.conn(c).Purchases(c.Context()); err != nil {
		h.failSection(c, "purchases", err)
	} else {
		purchases = list
	}

	var picker []entity.StockRow
	if rows, err := h.conn(c).Stock(c.Context()); err != nil {
		h.failSection(c, "stock-picker", err)
	} else {
		picker = inventory.SortForPicker(rows)
	}

	var suppliers []entity.Supplier
	if list, err := h.conn(c).Suppliers(c.Context()); err != nil {
		h.failSection(c, "suppliers", err)
	} else {
		suppliers = list
	}

	return h.render(c, "admin_purchases", fiber.Map{
		"Layout":    h.layout(c, "Purchases", "admin"),
		"Table":     view.PurchasesTable(purchases),
		"Picker":    picker,
		"Suppliers": suppliers,
	})
}

// CreatePurchase registra una compra; el backend suma la cantidad al stock de
// la variante.
func (h *Handler) CreatePurchase(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	variantID, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("variant_id")))

	in := backend.PurchasePayload{
		SupplierName: strings.TrimSpace(c.FormValue("supplier_name")),
		VariantID:    variantID,
		Quantity:     inventory.CoerceQuantity(c.FormValue("quantity")),
		UnitCost:     inventory.ParseCost(c.FormValue("unit_cost")),
		Notes:        strings.TrimSpace(c.FormValue("notes")),
	}

	switch {
	case in.SupplierName == "":
		h.flashBad(c, "Missing supplier", "Pick or type a supplier name.")
		return h.redirect(c, "/admin/purchases")
	case in.VariantID <= 0:
		h.flashBad(c, "Missing variant", "Pick the variant being restocked.")
		return h.redirect(c, "/admin/purchases")
	case in.Quantity <= 0:
		h.flashBad(c, "Invalid quantity", "Quantity must be a positive number.")
		return h.redirect(c, "/admin/purchases")
	}

	if err := h.conn(c).CreatePurchase(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/purchases")
	}

	total := inventory.PurchaseTotal(in.Quantity, in.UnitCost)
	h.flashOK(c, "Recorded", fmt.Sprintf("Purchase of %d units (%s) saved. Stock replenished.", in.Quantity, money.ILS(total)))
	return h.redirect(c, "/admin/purchases")
}
