package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/infrastructure/backend"
	"github.com/ashhabsport/storefront-web/pkg/logger"
)

// Las cookies del navegador viajan al backend tal cual y los Set-Cookie de la
// respuesta quedan capturados para retransmitirse.
func TestConn_ReenviaYCapturaCookies(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Add("Set-Cookie", "session=abc123; Path=/; HttpOnly")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("session=old")
	_, err := cn.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "session=old", gotCookie)
	require.Len(t, cn.SetCookies(), 1)
	assert.Contains(t, cn.SetCookies()[0], "session=abc123")
}

// Una respuesta de error {error, redirect} se normaliza en APIError con el
// mensaje de negocio y la pista de navegación.
func TestConn_NormalizaErroresDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"No payment method on file","redirect":"payment-info"}`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("")
	_, err := cn.CreateOrder(context.Background())
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr), "el error debe ser un *APIError")
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No payment method on file", apiErr.Message)
	assert.Equal(t, "payment-info", apiErr.Redirect)
	assert.Equal(t, "No payment method on file", err.Error())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"un 400 debe desenrollar al error de dominio de entrada inválida")
}

// Cuerpo de error no parseable: mensaje genérico, nunca HTML crudo a la vista.
func TestConn_ErrorSinCuerpoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>Internal Server Error</html>`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("")
	_, err := cn.Products(context.Background())
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Request failed", apiErr.Message)
	assert.Empty(t, apiErr.Redirect)
}

// /api/session sin sesión activa resuelve como anónimo, no como error.
func TestConn_SessionAnonima(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"logged_in":false}`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("")
	assert.Nil(t, cn.Session(context.Background()))
}

func TestConn_SessionActiva(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"logged_in":true,"user":{"id":7,"type":"customer","name":"Dana"}}`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("session=abc")
	u := cn.Session(context.Background())
	require.NotNil(t, u)
	assert.Equal(t, 7, u.ID)
	assert.True(t, u.IsCustomer())
}

// Backend caído: el error se propaga envuelto, sin pánico ni reintentos.
func TestConn_BackendInalcanzable(t *testing.T) {
	cn := backend.New("http://127.0.0.1:1", logger.Nop()).Bind("")
	_, err := cn.Products(context.Background())
	require.Error(t, err)

	var apiErr *backend.APIError
	assert.False(t, errors.As(err, &apiErr), "un fallo de transporte no es un APIError")
}

func TestConn_DecodificaRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"product_id":1,"product_name":"Running Shoes","price":"79.90","category":"Shoes","featured":1}]`))
	}))
	defer srv.Close()

	cn := backend.New(srv.URL, logger.Nop()).Bind("")
	products, err := cn.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Running Shoes", products[0].Name)
	assert.True(t, products[0].IsFeatured())
	assert.Equal(t, "79.9", products[0].Price.String())
}
