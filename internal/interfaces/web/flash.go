package web

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
)

// flashCookie cookie efímera que transporta el toast entre la redirección y
// el siguiente render.
const flashCookie = "flash"

func (h *Handler) flashOK(c *fiber.Ctx, title, message string) {
	h.setFlash(c, view.Flash{Type: "ok", Title: title, Message: message})
}

func (h *Handler) flashBad(c *fiber.Ctx, title, message string) {
	h.setFlash(c, view.Flash{Type: "bad", Title: title, Message: message})
}

func (h *Handler) setFlash(c *fiber.Ctx, f view.Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
	})
}

// takeFlash lee y consume el aviso pendiente; nil si no hay o no parsea.
func (h *Handler) takeFlash(c *fiber.Ctx) *view.Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:    flashCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f view.Flash
	if err := json.Unmarshal(decoded, &f); err != nil {
		return nil
	}
	return &f
}
