package entity

// Product producto vendible (Mã mặt hàng), perteneciente a un grupo.
// UnitPrice queda fijado con el primer precio visto en el CSV: importaciones
// posteriores no lo modifican aunque reporten otro valor.
type Product struct {
	ID        string
	Code      string // Mã mặt hàng, único
	Name      string // Tên mặt hàng
	GroupID   string // grupo propietario, obligatorio
	UnitPrice int64  // Đơn giá, en unidades menores de moneda
}
