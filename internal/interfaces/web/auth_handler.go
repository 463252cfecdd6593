package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ashhabsport/storefront-web/internal/application/session"
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
)

// LoginPage formulario de login. El rol elegido decide la etiqueta del primer
// campo (email para clientes, usuario para empleados).
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	role := c.Query("role", domain.UserTypeCustomer)
	if role != domain.UserTypeCustomer && role != domain.UserTypeEmployee {
		role = domain.UserTypeCustomer
	}
	return h.render(c, "login", fiber.Map{
		"Layout": h.layout(c, "Login", ""),
		"Role":   role,
	})
}

// Login autentica contra el backend y redirige a la home del rol.
func (h *Handler) Login(c *fiber.Ctx) error {
	role := c.FormValue("role")
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	if username == "" || password == "" {
		h.flashBad(c, "Missing fields", "Please fill all fields.")
		return h.redirect(c, "/login?role="+role)
	}

	result, err := h.conn(c).Login(c.Context(), backend.LoginRequest{
		Role:     role,
		Username: username,
		Password: password,
	})
	if err != nil {
		h.flashBad(c, "Login failed", err.Error())
		return h.redirect(c, "/login?role="+role)
	}
	if !result.Success || result.User == nil {
		h.flashBad(c, "Login failed", "Invalid credentials")
		return h.redirect(c, "/login?role="+role)
	}

	h.flashOK(c, "Welcome!", result.User.Name)
	return h.redirect(c, session.HomeFor(result.User))
}

// SignupPage formulario de alta de cliente.
func (h *Handler) SignupPage(c *fiber.Ctx) error {
	return h.render(c, "signup", fiber.Map{
		"Layout": h.layout(c, "Sign up", ""),
	})
}

// Signup registra la cuenta y envía al login.
func (h *Handler) Signup(c *fiber.Ctx) error {
	in := backend.SignupRequest{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Password:  c.FormValue("password"),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Address:   strings.TrimSpace(c.FormValue("address")),
	}

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		h.flashBad(c, "Missing fields", "Please fill required fields.")
		return h.redirect(c, "/signup")
	}

	if err := h.conn(c).Signup(c.Context(), in); err != nil {
		h.flashBad(c, "Signup failed", err.Error())
		return h.redirect(c, "/signup")
	}

	h.flashOK(c, "Account created", "You can now login.")
	return h.redirect(c, "/login")
}

// Logout cierra la sesión del backend; la siguiente petición ya se resuelve
// como anónima.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.conn(c).Logout(c.Context()); err != nil {
		h.flashBad(c, "Error", "Logout failed")
		return h.redirect(c, "/")
	}
	h.flashOK(c, "Logged out", "See you soon!")
	return h.redirect(c, "/")
}
