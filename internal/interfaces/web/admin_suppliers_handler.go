package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// AdminSuppliers proveedores con formulario de alta.
func (h *Handler) AdminSuppliers(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	var suppliers []entity.Supplier
	if list, err := h.conn(c).Suppliers(c.Context()); err != nil {
		h.failSection(c, "suppliers", err)
	} else {
		suppliers = list
	}

	return h.render(c, "admin_suppliers", fiber.Map{
		"Layout": h.layout(c, "Suppliers", "admin"),
		"Table":  view.SuppliersTable(suppliers),
	})
}

// CreateSupplier alta de proveedor.
func (h *Handler) CreateSupplier(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	in := supplierForm(c)
	if in.Name == "" {
		h.flashBad(c, "Missing name", "Supplier name is required.")
		return h.redirect(c, "/admin/suppliers")
	}

	if err := h.conn(c).CreateSupplier(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/suppliers")
	}

	h.flashOK(c, "Created", "Supplier added.")
	return h.redirect(c, "/admin/suppliers")
}

// SupplierEditForm formulario de edición precargado.
func (h *Handler) SupplierEditForm(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/suppliers")
	}

	list, err := h.conn(c).Suppliers(c.Context())
	if err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/suppliers")
	}
	var sup *entity.Supplier
	for i := range list {
		if list[i].ID == id {
			sup = &list[i]
			break
		}
	}
	if sup == nil {
		h.flashBad(c, "Not found", "Supplier not found.")
		return h.redirect(c, "/admin/suppliers")
	}

	return h.render(c, "admin_supplier_edit", fiber.Map{
		"Layout":   h.layout(c, "Edit supplier", "admin"),
		"Supplier": sup,
	})
}

// UpdateSupplier guarda la edición de un proveedor.
func (h *Handler) UpdateSupplier(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/suppliers")
	}

	in := supplierForm(c)
	if in.Name == "" {
		h.flashBad(c, "Missing name", "Supplier name is required.")
		return h.redirect(c, c.Path()+"/edit")
	}

	if err := h.conn(c).UpdateSupplier(c.Context(), id, in); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Saved", "Supplier updated.")
	}
	return h.redirect(c, "/admin/suppliers")
}

// DeleteSupplier elimina un proveedor.
func (h *Handler) DeleteSupplier(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/suppliers")
	}
	if err := h.conn(c).DeleteSupplier(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Deleted", "Supplier removed.")
	}
	return h.redirect(c, "/admin/suppliers")
}

func supplierForm(c *fiber.Ctx) backend.SupplierPayload {
	return backend.SupplierPayload{
		Name:    strings.TrimSpace(c.FormValue("supplier_name")),
		Phone:   strings.TrimSpace(c.FormValue("phone")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Address: strings.TrimSpace(c.FormValue("address")),
	}
}
