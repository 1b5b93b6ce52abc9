package entity

// ProductGroup agrupación comercial de productos (Mã nhóm hàng).
// Inmutable después de su creación.
type ProductGroup struct {
	ID   string
	Code string // Mã nhóm hàng, único
	Name string // Tên nhóm hàng
}
