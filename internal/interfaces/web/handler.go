// Package web handlers de página. Cada página sigue el mismo ciclo:
// guard de rol → carga de datos (fallos aislados por sección) → render.
// Las mutaciones son POST-redirect-GET: tras escribir en el backend se
// redirige y la página vuelve a cargar el estado fresco, sin mutación local.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/session"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/logger"
)

// Locals keys del ciclo de petición.
const (
	localConn = "backend_conn"
	localUser = "session_user"
)

// Handler raíz de los handlers de página; comparte cliente y logger.
type Handler struct {
	client *backend.Client
	log    *logger.Logger
}

// NewHandler construye el handler raíz.
func NewHandler(client *backend.Client, log *logger.Logger) *Handler {
	return &Handler{client: client, log: log}
}

// resolveSession middleware: ata el cliente del backend a las cookies del
// navegador y resuelve la identidad una sola vez por petición. La sesión es
// un valor explícito del ciclo, no un global.
func (h *Handler) resolveSession(c *fiber.Ctx) error {
	conn := h.client.Bind(c.Get(fiber.HeaderCookie))
	c.Locals(localConn, conn)
	c.Locals(localUser, conn.Session(c.Context()))
	return c.Next()
}

// conn cliente del backend ligado a esta petición.
func (h *Handler) conn(c *fiber.Ctx) *backend.Conn {
	return c.Locals(localConn).(*backend.Conn)
}

// user identidad de la petición; nil para visitantes anónimos.
func (h *Handler) user(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(localUser).(*entity.User)
	return u
}

// relayCookies retransmite al navegador los Set-Cookie que el backend emitió
// durante esta petición (login/logout renuevan la cookie de sesión).
func (h *Handler) relayCookies(c *fiber.Ctx) {
	for _, sc := range h.conn(c).SetCookies() {
		c.Response().Header.Add(fiber.HeaderSetCookie, sc)
	}
}

// guard corta la petición si la identidad no cumple el rol requerido:
// deja un aviso y redirige. Devuelve la identidad cuando el acceso procede.
func (h *Handler) guard(c *fiber.Ctx, required domain.RequiredRole) (*entity.User, bool) {
	v := session.Check(h.user(c), required)
	if !v.Allowed {
		h.flashBad(c, v.NoticeTitle, v.NoticeMessage)
		_ = c.Redirect(v.RedirectTo, fiber.StatusSeeOther)
		return nil, false
	}
	return v.User, true
}

// layout arma los datos compartidos de la página (sesión + flash pendiente).
func (h *Handler) layout(c *fiber.Ctx, title, active string) view.Layout {
	return view.Layout{
		Title:  title,
		Active: active,
		User:   h.user(c),
		Flash:  h.takeFlash(c),
	}
}

// render renderiza una plantilla dentro del layout común.
func (h *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	h.relayCookies(c)
	return c.Render(name, data)
}

// redirect redirección SeeOther retransmitiendo cookies del backend.
func (h *Handler) redirect(c *fiber.Ctx, to string) error {
	h.relayCookies(c)
	return c.Redirect(to, fiber.StatusSeeOther)
}

// failSection registra el fallo de una sección de datos y avisa sin tumbar el
// resto de la página.
func (h *Handler) failSection(c *fiber.Ctx, section string, err error) {
	h.log.Warn().Err(err).Str("section", section).Str("path", c.Path()).Msg("sección degradada")
}
