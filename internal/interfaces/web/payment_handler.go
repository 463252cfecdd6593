package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/payment"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// PaymentInfo página de métodos de pago. required=1 marca que el visitante
// llegó desde un checkout rechazado y muestra el banner correspondiente.
func (h *Handler) PaymentInfo(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}

	var methods []entity.PaymentMethod
	if list, err := h.conn(c).PaymentMethods(c.Context()); err != nil {
		h.failSection(c, "payment-methods", err)
	} else {
		methods = list
	}

	return h.render(c, "payment_info", fiber.Map{
		"Layout":   h.layout(c, "Payment methods", ""),
		"Methods":  view.PaymentMethodsTable(methods),
		"Required": c.Query("required") == "1",
	})
}

// AddPaymentMethod guarda una tarjeta. El número se normaliza a dígitos antes
// de enviarse; la validación fuerte queda en el backend.
func (h *Handler) AddPaymentMethod(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}

	required := c.FormValue("required") == "1"
	returnTo := "/payment-info"
	if required {
		returnTo = "/payment-info?required=1"
	}

	cardNumber := payment.Normalize(c.FormValue("card_number"))
	in := backend.PaymentMethodPayload{
		CardType:    c.FormValue("card_type"),
		HolderName:  strings.TrimSpace(c.FormValue("card_holder_name")),
		CardNumber:  cardNumber,
		ExpiryMonth: c.FormValue("expiry_month"),
		ExpiryYear:  strings.TrimSpace(c.FormValue("expiry_year")),
		CVV:         strings.TrimSpace(c.FormValue("cvv")),
	}
	if c.FormValue("is_default") != "" {
		in.IsDefault = 1
	}

	switch {
	case in.CardType == "" || in.HolderName == "" || cardNumber == "" ||
		in.ExpiryMonth == "" || in.ExpiryYear == "" || in.CVV == "":
		h.flashBad(c, "Missing info", "Please fill all fields.")
		return h.redirect(c, returnTo)
	case !payment.ValidNumber(cardNumber):
		h.flashBad(c, "Card number", "Card number looks invalid.")
		return h.redirect(c, returnTo)
	case !payment.ValidExpiryYear(in.ExpiryYear):
		h.flashBad(c, "Expiry year", "Use 4 digits (YYYY).")
		return h.redirect(c, returnTo)
	case !payment.ValidCVV(in.CVV):
		h.flashBad(c, "CVV", "CVV must be 3-4 digits.")
		return h.redirect(c, returnTo)
	}

	if err := h.conn(c).AddPaymentMethod(c.Context(), in); err != nil {
		h.flashBad(c, "Error", err.Error())
		return h.redirect(c, returnTo)
	}

	h.flashOK(c, "Saved", "Payment method added.")
	if required {
		// Venía del checkout: de vuelta al panel para reintentar la compra.
		return h.redirect(c, "/account")
	}
	return h.redirect(c, "/payment-info")
}

// DeletePaymentMethod elimina un método de pago guardado.
func (h *Handler) DeletePaymentMethod(c *fiber.Ctx) error {
	if _, ok := h.guard(c, domain.RequireCustomer); !ok {
		return nil
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.redirect(c, "/payment-info")
	}
	if err := h.conn(c).DeletePaymentMethod(c.Context(), id); err != nil {
		h.flashBad(c, "Error", err.Error())
	} else {
		h.flashOK(c, "Deleted", "Payment method removed.")
	}
	return h.redirect(c, "/payment-info")
}
