package backend

import (
	"context"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// LoginRequest credenciales de login; role decide si username es email (customer) o usuario (employee).
type LoginRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse respuesta de /api/login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

// SignupRequest alta de cliente. Las claves siguen el contrato del backend (camelCase).
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// sessionResponse respuesta de /api/session.
type sessionResponse struct {
	LoggedIn bool         `json:"logged_in"`
	User     *entity.User `json:"user"`
}

// Login autentica contra el backend; la cookie de sesión llega vía SetCookies.
func (cn *Conn) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := cn.do(ctx, "POST", "/api/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout cierra la sesión del backend.
func (cn *Conn) Logout(ctx context.Context) error {
	return cn.do(ctx, "POST", "/api/logout", nil, nil)
}

// Session devuelve la identidad actual; nil cuando no hay sesión o el backend
// no responde (un visitante anónimo no es un error).
func (cn *Conn) Session(ctx context.Context) *entity.User {
	var out sessionResponse
	if err := cn.do(ctx, "GET", "/api/session", nil, &out); err != nil {
		return nil
	}
	if !out.LoggedIn {
		return nil
	}
	return out.User
}

// Signup registra una cuenta de cliente nueva.
func (cn *Conn) Signup(ctx context.Context, in SignupRequest) error {
	return cn.do(ctx, "POST", "/api/signup", in, nil)
}
