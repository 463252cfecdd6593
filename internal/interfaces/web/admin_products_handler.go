package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ashhabsport/storefront-web/internal/application/catalog"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// placeholderImage imagen por defecto de productos nuevos sin foto.
const placeholderImage = "/assets/img/products/placeholder.jpg"

// AdminProducts catálogo administrable con búsqueda y formulario de alta.
func (h *Handler) AdminProducts(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	query := c.Query("q")

	var products []entity.Product
	if list, err := h.conn(c).Products(c.Context()); err != nil {
		h.failSection(c, "products", err)
	} else {
		products = catalog.Filter(list, query, catalog.CategoryAll)
	}

	var categories []string
	if list, err := h.conn(c).Categories(c.Context()); err != nil {
		h.failSection(c, "categories", err)
	} else {
		categories = list
	}

	return h.render(c, "admin_products", fiber.Map{
		"Layout":     h.layout(c, "Products", "admin"),
		"Table":      view.AdminProductsTable(products),
		"Categories": categories,
		"Query":      query,
	})
}

// CreateProduct alta de producto. Sin imagen cae al placeholder del catálogo.
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}

	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil || price.IsNegative() {
		h.flashBad(c, "Invalid price", "Enter a non-negative amount.")
		return h.redirect(c, "/admin/products")
	}

	in := backend.ProductPayload{
		Name:        strings.TrimSpace(c.FormValue("product_name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       price,
		Category:    strings.TrimSpace(c.FormValue("category")),
		ImageURL:    strings.TrimSpace(c.FormValue("image_url")),
	}
	if in.Name == "" || in.Category == "" {
		h.flashBad(c, "Missing fields", "Product name and category are required.")
		return h.redirect(c, "/admin/products")
	}
	if in.ImageURL == "" {
		in.ImageURL = placeholderImage
	}
	if c.FormValue("featured") != "" {
		in.Featured = 1
	}

	if err := h.conn(c).CreateProduct(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/products")
	}

	h.flashOK(c, "Created", "Product added to the catalog.")
	return h.redirect(c, "/admin/products")
}

// ProductPriceForm formulario de cambio de precio con los datos actuales.
func (h *Handler) ProductPriceForm(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/products")
	}

	p, err := h.conn(c).Product(c.Context(), id)
	if err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/products")
	}

	return h.render(c, "admin_price", fiber.Map{
		"Layout":  h.layout(c, "Edit price", "admin"),
		"Product": p,
		"Price":   p.Price.StringFixed(2),
	})
}

// UpdateProductPrice cambia solo el precio: se relee el producto y se reenvían
// los demás campos sin tocar.
func (h *Handler) UpdateProductPrice(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/products")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil || price.IsNegative() {
		h.flashBad(c, "Invalid price", "Enter a non-negative amount.")
		return h.redirect(c, c.Path())
	}

	p, err := h.conn(c).Product(c.Context(), id)
	if err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, "/admin/products")
	}

	in := backend.ProductPayload{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
	}
	if err := h.conn(c).UpdateProduct(c.Context(), id, in); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Saved", "Price updated.")
	}
	return h.redirect(c, "/admin/products")
}

// DeleteProduct elimina un producto y sus variantes.
func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireAdmin); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/admin/products")
	}
	if err := h.conn(c).DeleteProduct(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Deleted", "Product removed from the catalog.")
	}
	return h.redirect(c, "/admin/products")
}
