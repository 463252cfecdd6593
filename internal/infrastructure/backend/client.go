// Package backend implementa el cliente JSON del backend REST de la tienda.
// Cada petición es de un solo intento: sin reintentos ni backoff; quien llama
// decide qué hacer con el fallo.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/pkg/logger"
)

// genericFailure mensaje cuando el cuerpo de error no trae uno propio.
const genericFailure = "Request failed"

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 1 << 20

// APIError error normalizado de una respuesta no exitosa del backend.
// Message es el mensaje de negocio del servidor; Redirect es la pista de
// navegación opcional (ej. "payment-info" en el checkout).
type APIError struct {
	Status   int
	Message  string
	Redirect string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap mapea el estado HTTP al error de dominio equivalente, de modo que
// los handlers puedan usar errors.Is sin mirar códigos numéricos.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

// errorBody cuerpo de error que emite el backend: {error, redirect}.
type errorBody struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Client cliente base del backend; seguro para compartir entre peticiones.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente. baseURL sin slash final (ej. http://localhost:5000).
func New(baseURL string, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

// Bind ata el cliente a una petición del navegador: reenvía sus cookies al
// backend y captura los Set-Cookie de la respuesta para retransmitirlos.
// La identidad es una cookie opaca del backend; este módulo nunca la emite.
func (c *Client) Bind(cookie string) *Conn {
	return &Conn{client: c, cookie: cookie}
}

// Conn cliente ligado a una petición concreta. No es concurrente: vive dentro
// de un único handler.
type Conn struct {
	client     *Client
	cookie     string
	setCookies []string
}

// SetCookies cabeceras Set-Cookie acumuladas de las llamadas realizadas
// (login/logout las emiten); deben retransmitirse al navegador.
func (cn *Conn) SetCookies() []string {
	return cn.setCookies
}

// do ejecuta una petición JSON contra el backend. in se serializa como cuerpo
// si no es nil; out se deserializa de la respuesta si no es nil.
func (cn *Conn) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, cn.client.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cn.cookie != "" {
		req.Header.Set("Cookie", cn.cookie)
	}

	resp, err := cn.client.http.Do(req)
	if err != nil {
		cn.client.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("llamada al backend fallida")
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	cn.setCookies = append(cn.setCookies, resp.Header.Values("Set-Cookie")...)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: genericFailure}
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil {
			if eb.Error != "" {
				apiErr.Message = eb.Error
			}
			apiErr.Redirect = eb.Redirect
		}
		cn.client.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("error", apiErr.Message).
			Msg("backend respondió error")
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			cn.client.log.Warn().Err(err).Str("path", path).Msg("respuesta del backend no parseable")
			return fmt.Errorf("backend: deserializar respuesta de %s: %w", path, err)
		}
	}
	return nil
}
