package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web"
	"github.com/ashhabsport/storefront-web/internal/interfaces/web/view"
	"github.com/ashhabsport/storefront-web/pkg/logger"
	"github.com/ashhabsport/storefront-web/pkg/money"
)

// fakeBackend emula el backend REST: resuelve la sesión por el valor de la
// cookie y responde los endpoints que las páginas bajo test consultan.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch cookieValue(r) {
		case "customer":
			_, _ = w.Write([]byte(`{"logged_in":true,"user":{"id":1,"type":"customer","name":"Dana"}}`))
		case "worker":
			_, _ = w.Write([]byte(`{"logged_in":true,"user":{"id":2,"type":"employee","role":"WORKER","name":"Omar"}}`))
		case "admin":
			_, _ = w.Write([]byte(`{"logged_in":true,"user":{"id":3,"type":"employee","role":"ADMIN","name":"Sara"}}`))
		default:
			_, _ = w.Write([]byte(`{"logged_in":false}`))
		}
	})

	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"product_id":1,"product_name":"Running Shoes","description":"Road shoes","price":"299","category":"Shoes","image_url":"/assets/img/products/shoes.jpg","featured":1,"variants":[{"variant_id":11,"size":"M","color":"Black","stock_quantity":8}]}]`))
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["Shoes","Shirts"]`))
	})

	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			// Checkout sin método de pago: la pista de navegación del backend.
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Please add payment information","redirect":"payment-info"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	mux.HandleFunc("/api/orders/5/accept", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func cookieValue(r *http.Request) string {
	c, err := r.Cookie("session")
	if err != nil {
		return ""
	}
	return c.Value
}

// buildApp arma la aplicación de páginas igual que el main, contra el backend
// falso y con las plantillas reales.
func buildApp(t *testing.T, backendURL string) *fiber.App {
	t.Helper()

	engine := html.New("../../../views", ".html")
	engine.AddFunc("ils", money.ILS)
	engine.AddFunc("statusClass", view.StatusClass)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	client := backend.New(backendURL, logger.Nop())
	web.Router(app, web.NewHandler(client, logger.Nop()))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, sessionCookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if sessionCookie != "" {
		req.Header.Set("Cookie", "session="+sessionCookie)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// La portada es pública y renderiza el catálogo para cualquier visitante.
func TestHome_RenderizaCatalogo(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodGet, "/", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Running Shoes")
	assert.Contains(t, string(body), "₪299")
}

// Un visitante anónimo en una página de cliente acaba en el login.
func TestGuard_AnonimoRedirigeALogin(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodGet, "/account", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Un empleado sin rol admin no entra al back-office.
func TestGuard_WorkerBloqueadoEnAdmin(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodGet, "/admin", "worker")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// Un cliente tampoco pasa el guard de empleado.
func TestGuard_ClienteBloqueadoEnMesaDeEmpleado(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodGet, "/employee", "customer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// El checkout rechazado con pista "payment-info" navega a la página de pago
// marcada como requerida, en lugar de mostrar el error como toast.
func TestCheckout_SinMetodoDePago(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodPost, "/checkout", "customer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/payment-info?required=1", resp.Header.Get("Location"))
}

// Aceptar una orden redirige a la mesa del empleado con el aviso de éxito.
func TestAcceptOrder_EmpleadoVuelveASuMesa(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodPost, "/orders/5/accept", "worker")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/employee", resp.Header.Get("Location"))

	// El flash de la redirección viaja como cookie propia del BFF.
	flash := strings.Join(resp.Header.Values("Set-Cookie"), "; ")
	assert.Contains(t, flash, "flash=")
}

// El admin vuelve a su tabla de órdenes tras aceptar.
func TestAcceptOrder_AdminVuelveASusOrdenes(t *testing.T) {
	app := buildApp(t, fakeBackend(t).URL)
	resp := doRequest(t, app, http.MethodPost, "/orders/5/accept", "admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/orders", resp.Header.Get("Location"))
}
