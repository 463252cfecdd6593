package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/cart"
	"github.com/ashhabsport/storefront-web/internal/application/catalog"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// featuredCount cuántos destacados muestra la portada.
const featuredCount = 6

// Home portada de la tienda: catálogo con búsqueda y filtro de categoría,
// chips de categorías y recomendados. Cada sección degrada por separado.
func (h *Handler) Home(c *fiber.Ctx) error {
	layout := h.layout(c, "Ashhab Sport", "home")

	var products []entity.Product
	if list, err := h.conn(c).Products(c.Context()); err != nil {
		h.failSection(c, "products", err)
		if layout.Flash == nil {
			layout.Flash = badFlash("Error", "Failed to load products")
		}
	} else {
		products = list
	}

	categories := []string{catalog.CategoryAll}
	if list, err := h.conn(c).Categories(c.Context()); err != nil {
		h.failSection(c, "categories", err)
	} else {
		categories = append(categories, list...)
	}

	query := c.Query("q")
	category := c.Query("category", catalog.CategoryAll)

	return h.render(c, "home", fiber.Map{
		"Layout":     layout,
		"Products":   catalog.Filter(products, query, category),
		"Featured":   catalog.Featured(products, featuredCount),
		"Categories": categories,
		"Query":      query,
		"Category":   category,
	})
}

// ProductDetail ficha de producto con selector talla/color. La variante
// seleccionada llega por query; por defecto la primera combinación.
func (h *Handler) ProductDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		h.flashBad(c, "Not found", "Product does not exist.")
		return h.redirect(c, "/")
	}

	p, err := h.conn(c).Product(c.Context(), id)
	if err != nil {
		h.flashBad(c, "Not found", "Product does not exist.")
		return h.redirect(c, "/")
	}

	sizes := catalog.Sizes(p.Variants)
	colors := catalog.Colors(p.Variants)

	size := c.Query("size")
	if size == "" && len(sizes) > 0 {
		size = sizes[0]
	}
	color := c.Query("color")
	if color == "" && len(colors) > 0 {
		color = colors[0]
	}

	variant := catalog.FindVariant(p.Variants, size, color)
	stock := 0
	variantID := 0
	if variant != nil {
		stock = variant.StockQuantity
		variantID = variant.ID
	}

	return h.render(c, "product", fiber.Map{
		"Layout":    h.layout(c, p.Name, ""),
		"Product":   p,
		"Sizes":     sizes,
		"Colors":    colors,
		"Size":      size,
		"Color":     color,
		"Stock":     stock,
		"VariantID": variantID,
		"CanAdd":    variant != nil && stock > 0,
	})
}

// AddToCart añade una variante al carrito. Solo clientes; un visitante
// anónimo o de otro rol recibe el aviso y va al login.
func (h *Handler) AddToCart(c *fiber.Ctx) error {
	u := h.user(c)
	if !u.IsCustomer() {
		h.flashBad(c, "Login needed", "Please login as customer to add to cart.")
		return h.redirect(c, "/login")
	}

	productID, _ := strconv.Atoi(c.FormValue("product_id"))
	variantID, _ := strconv.Atoi(c.FormValue("variant_id"))
	quantity := cart.CoerceQuantity(c.FormValue("quantity"), 1)

	if productID == 0 || variantID == 0 {
		h.flashBad(c, "Invalid", "Choose variant and quantity.")
		return h.redirect(c, backTo(c, "/"))
	}

	err := h.conn(c).AddToCart(c.Context(), backend.AddToCartRequest{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	})
	if err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, backTo(c, "/"))
	}

	h.flashOK(c, "Added to cart", "Open My Account to checkout.")
	return h.redirect(c, backTo(c, "/"))
}

// backTo destino de retorno enviado por el formulario; fallback cuando falta.
func backTo(c *fiber.Ctx, fallback string) string {
	if back := c.FormValue("back"); back != "" && back[0] == '/' {
		return back
	}
	return fallback
}

func badFlash(title, message string) *view.Flash {
	return &view.Flash{Type: "bad", Title: title, Message: message}
}
