package entity

// OrderDetail línea de pedido: a lo sumo una fila por par (pedido, producto).
// Quantity es lo único mutable del modelo: reimportar el mismo par vuelve a
// sumar la cantidad (la acumulación es incondicional, no idempotente).
//
// El importe de la línea (Thành tiền) nunca se almacena: se calcula siempre
// como quantity × product.unit_price.
type OrderDetail struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
}
