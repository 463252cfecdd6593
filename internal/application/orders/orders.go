// Package orders filtros y reglas de elegibilidad sobre listas de órdenes.
package orders

import (
	"strconv"
	"strings"

	"github.com/ashhabsport/storefront-web/internal/domain"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// StatusAll valor del filtro de estado que no excluye nada.
const StatusAll = "All"

// FilterByStatus se queda con las órdenes en el estado dado; "All" o vacío
// devuelve la lista tal cual.
func FilterByStatus(list []entity.Order, status string) []entity.Order {
	if status == "" || status == StatusAll {
		return list
	}
	out := make([]entity.Order, 0, len(list))
	for _, o := range list {
		if string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out
}

// Search filtra por número de orden o nombre de cliente (substring sin
// distinguir mayúsculas). El orden relativo se preserva.
func Search(list []entity.Order, query string) []entity.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]entity.Order, 0, len(list))
	for _, o := range list {
		if strings.Contains(strconv.Itoa(o.ID), q) ||
			strings.Contains(strings.ToLower(o.CustomerName()), q) {
			out = append(out, o)
		}
	}
	return out
}

// SplitPending separa la cola de pendientes del resto (la vista de empleado).
func SplitPending(list []entity.Order) (pending, rest []entity.Order) {
	for _, o := range list {
		if o.Status == domain.OrderPending {
			pending = append(pending, o)
		} else {
			rest = append(rest, o)
		}
	}
	return pending, rest
}

// CanAccept solo las órdenes pendientes admiten aceptación; tras aceptar, el
// control deja de renderizarse para esa fila.
func CanAccept(o entity.Order) bool {
	return o.Status == domain.OrderPending
}

// CanCancel un empleado solo puede cancelar mientras la orden sigue pendiente.
func CanCancel(o entity.Order) bool {
	return o.Status == domain.OrderPending
}

// Recent primeras n órdenes de la lista (el backend ya las ordena por fecha).
func Recent(list []entity.Order, n int) []entity.Order {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
