package backend

import (
	"context"
	"fmt"

	"github.com/ashhabsport/storefront-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductPayload cuerpo de alta/edición de producto.
type ProductPayload struct {
	Name        string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Featured    int             `json:"featured"`
}

// Products lista el catálogo completo.
func (cn *Conn) Products(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := cn.do(ctx, "GET", "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product devuelve un producto con sus variantes.
func (cn *Conn) Product(ctx context.Context, id int) (*entity.Product, error) {
	var out entity.Product
	if err := cn.do(ctx, "GET", fmt.Sprintf("/api/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories devuelve las categorías existentes.
func (cn *Conn) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := cn.do(ctx, "GET", "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct crea un producto (solo admin).
func (cn *Conn) CreateProduct(ctx context.Context, in ProductPayload) error {
	return cn.do(ctx, "POST", "/api/products", in, nil)
}

// UpdateProduct reemplaza los campos editables de un producto.
func (cn *Conn) UpdateProduct(ctx context.Context, id int, in ProductPayload) error {
	return cn.do(ctx, "PUT", fmt.Sprintf("/api/products/%d", id), in, nil)
}

// DeleteProduct elimina un producto y sus variantes.
func (cn *Conn) DeleteProduct(ctx context.Context, id int) error {
	return cn.do(ctx, "DELETE", fmt.Sprintf("/api/products/%d", id), nil, nil)
}
