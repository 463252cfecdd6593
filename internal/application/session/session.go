// Package session resuelve la identidad de la petición actual y decide el
// acceso a cada página. La sesión es un valor explícito por petición: se
// resuelve una sola vez contra /api/session y se pasa a los handlers, sin
// caché global mutable.
package session

import (
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// Verdict resultado del guard de rol. Cuando Allowed es false el handler debe
// cortar: RedirectTo indica a dónde enviar al visitante y Notice* el aviso a
// mostrar.
type Verdict struct {
	User          *entity.User
	Allowed       bool
	RedirectTo    string
	NoticeTitle   string
	NoticeMessage string
}

// Check evalúa si la identidad cumple el rol requerido por una página.
// Un admin se modela como empleado con rol elevado, por lo que pasa el guard
// de empleado; el guard de admin exige el atributo ADMIN.
func Check(u *entity.User, required domain.RequiredRole) Verdict {
	if u == nil {
		return Verdict{
			RedirectTo:    "/login",
			NoticeTitle:   "Login required",
			NoticeMessage: "Please login first.",
		}
	}

	switch required {
	case domain.RequireCustomer:
		if !u.IsCustomer() {
			return denied(u, "Customer account required.")
		}
	case domain.RequireEmployee:
		if !u.IsEmployee() {
			return denied(u, "Employee login required.")
		}
	case domain.RequireAdmin:
		if !u.IsAdmin() {
			return denied(u, "Admin only.")
		}
	}

	return Verdict{User: u, Allowed: true}
}

// HomeFor página de inicio natural para una identidad; la portada para
// visitantes anónimos.
func HomeFor(u *entity.User) string {
	switch {
	case u.IsCustomer():
		return "/account"
	case u.IsAdmin():
		return "/admin"
	case u.IsEmployee():
		return "/employee"
	default:
		return "/"
	}
}

func denied(u *entity.User, msg string) Verdict {
	return Verdict{
		User:          u,
		RedirectTo:    "/",
		NoticeTitle:   "Access denied",
		NoticeMessage: msg,
	}
}
