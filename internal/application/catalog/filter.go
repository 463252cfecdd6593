// Package catalog lógica de listado del catálogo: filtros de búsqueda y
// categoría sobre la lista ya descargada, destacados y selección de variantes.
package catalog

import (
	"strings"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

// CategoryAll valor del filtro que no excluye nada.
const CategoryAll = "All"

// Filter aplica búsqueda (substring, sin distinguir mayúsculas, sobre nombre,
// descripción y categoría) y filtro de categoría exacta. El orden relativo de
// la lista original se preserva.
func Filter(products []entity.Product, query, category string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p entity.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Featured devuelve hasta n productos destacados, en el orden del catálogo.
func Featured(products []entity.Product, n int) []entity.Product {
	out := make([]entity.Product, 0, n)
	for _, p := range products {
		if !p.IsFeatured() {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Sizes tallas únicas de las variantes, en orden de aparición.
func Sizes(variants []entity.Variant) []string {
	return uniqueBy(variants, func(v entity.Variant) string { return v.Size })
}

// Colors colores únicos de las variantes, en orden de aparición.
func Colors(variants []entity.Variant) []string {
	return uniqueBy(variants, func(v entity.Variant) string { return v.Color })
}

// FindVariant localiza la variante exacta talla/color; nil si no existe.
func FindVariant(variants []entity.Variant, size, color string) *entity.Variant {
	for i := range variants {
		if variants[i].Size == size && variants[i].Color == color {
			return &variants[i]
		}
	}
	return nil
}

func uniqueBy(variants []entity.Variant, key func(entity.Variant) string) []string {
	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
