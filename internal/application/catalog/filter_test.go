package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashhabsport/storefront-web/internal/application/catalog"
	"github.com/ashhabsport/storefront-web/internal/domain/entity"
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Running Shoes", Description: "Lightweight road shoes", Category: "Shoes", Featured: 1},
		{ID: 2, Name: "Training Shirt", Description: "Breathable mesh", Category: "Shirts"},
		{ID: 3, Name: "Track Pants", Description: "Warm-up pants", Category: "Pants", Featured: 1},
		{ID: 4, Name: "Trail SHOES", Description: "Grip outsole", Category: "Shoes"},
	}
}

// La búsqueda no distingue mayúsculas y mira nombre, descripción y categoría;
// el orden del catálogo se preserva.
func TestFilter_BusquedaInsensibleAMayusculas(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "shoes", catalog.CategoryAll)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestFilter_BusquedaPorDescripcion(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "mesh", catalog.CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilter_CategoriaExacta(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "", "Pants")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestFilter_CategoriaAllNoExcluye(t *testing.T) {
	assert.Len(t, catalog.Filter(sampleProducts(), "", catalog.CategoryAll), 4)
	assert.Len(t, catalog.Filter(sampleProducts(), "", ""), 4)
}

func TestFilter_BusquedaYCategoriaSeComponen(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "trail", "Shoes")
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestFilter_SinResultados(t *testing.T) {
	got := catalog.Filter(sampleProducts(), "no-existe", catalog.CategoryAll)
	assert.Empty(t, got)
	assert.NotNil(t, got, "la lista vacía debe renderizarse, no ser nil")
}

func TestFeatured_LimitaYRespetaOrden(t *testing.T) {
	got := catalog.Featured(sampleProducts(), 6)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = catalog.Featured(sampleProducts(), 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestSizesColors_UnicosEnOrdenDeAparicion(t *testing.T) {
	variants := []entity.Variant{
		{ID: 1, Size: "M", Color: "Black", StockQuantity: 3},
		{ID: 2, Size: "L", Color: "Black", StockQuantity: 0},
		{ID: 3, Size: "M", Color: "White", StockQuantity: 7},
	}
	assert.Equal(t, []string{"M", "L"}, catalog.Sizes(variants))
	assert.Equal(t, []string{"Black", "White"}, catalog.Colors(variants))
}

func TestFindVariant(t *testing.T) {
	variants := []entity.Variant{
		{ID: 1, Size: "M", Color: "Black", StockQuantity: 3},
		{ID: 2, Size: "L", Color: "Black", StockQuantity: 0},
	}

	v := catalog.FindVariant(variants, "L", "Black")
	require.NotNil(t, v)
	assert.Equal(t, 2, v.ID)

	assert.Nil(t, catalog.FindVariant(variants, "XL", "Black"))
}
