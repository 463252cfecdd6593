// Package view modelos de vista tipados. Sustituye la concatenación de HTML
// por página por una abstracción única de "tabla de recurso": cada página
// aporta columnas, celdas y acciones y una sola parcial la renderiza.
package view

import (
	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// Flash aviso transitorio (toast) de una redirección previa.
type Flash struct {
	Type    string `json:"type"` // ok | bad
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Layout datos compartidos de cabecera y pie, calculados de la sesión.
type Layout struct {
	Title  string
	Active string // marcador de link activo en la nav
	User   *entity.User
	Flash  *Flash
}

// Action control de fila: link o botón de formulario POST.
type Action struct {
	Label    string
	URL      string
	Post     bool   // true: formulario de un botón; false: link
	Style    string // "", primary, danger, ok, ghost
	Confirm  string // confirmación interactiva previa (onsubmit)
	Disabled bool   // placeholder no interactivo ("-")
}

// InlineForm formulario embebido en una celda (cantidad de carrito o stock).
type InlineForm struct {
	URL   string
	Name  string
	Value string
}

// Cell celda de la tabla. Actions y Form la convierten en celda de controles.
type Cell struct {
	Text    string
	Sub     string // línea secundaria pequeña
	Strong  bool
	Pill    bool
	Class   string // clase extra (colores de estado/nivel)
	Actions []Action
	Form    *InlineForm
}

// Row fila ya resuelta.
type Row struct {
	Cells []Cell
	Class string
}

// Table tabla de recurso genérica. Empty es el texto del placeholder que se
// renderiza como única fila cuando no hay datos.
type Table struct {
	Columns []string
	Rows    []Row
	Empty   string
}

// Text celda de texto plano.
func Text(s string) Cell { return Cell{Text: s} }

// Strong celda destacada.
func Strong(s string) Cell { return Cell{Text: s, Strong: true} }

// Pill celda tipo pill con clase opcional.
func Pill(s, class string) Cell { return Cell{Text: s, Pill: true, Class: class} }

// Actions celda de controles.
func Actions(a ...Action) Cell { return Cell{Actions: a} }

// StatusClass clase CSS del pill según el estado de la orden.
func StatusClass(s domain.OrderStatus) string {
	switch s {
	case domain.OrderPending:
		return "status-pending"
	case domain.OrderAccepted:
		return "status-accepted"
	case domain.OrderShipped:
		return "status-shipped"
	case domain.OrderCancelled:
		return "status-cancelled"
	default:
		return ""
	}
}
