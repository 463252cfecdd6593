package entity

// Supplier proveedor registrado para compras de reposición.
type Supplier struct {
	ID      int    `json:"supplier_id"`
	Name    string `json:"supplier_name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
