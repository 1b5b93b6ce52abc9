package entity

import "time"

// Order pedido identificado por su código externo (Mã đơn hàng).
// Se crea una sola vez por código, con el cliente y timestamp de esa fila.
type Order struct {
	ID         string
	Code       string // Mã đơn hàng, único
	CustomerID string
	OrderTime  time.Time // Thời gian tạo đơn, precisión de segundos
}
