package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Puertos de persistencia del importador. Todos siguen la misma semántica
// get-or-create: si el código externo ya existe, la fila NO se modifica y se
// devuelve el ID existente; si no existe, se inserta la entidad propuesta.
// La operación es atómica por clave.

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	FindOrCreate(ctx context.Context, customer *entity.Customer) (string, error)
}

// ProductGroupRepository puerto de persistencia para ProductGroup.
type ProductGroupRepository interface {
	FindOrCreate(ctx context.Context, group *entity.ProductGroup) (string, error)
}

// ProductRepository puerto de persistencia para Product. El precio unitario
// del producto queda fijado en la creación (primer precio visto gana).
type ProductRepository interface {
	FindOrCreate(ctx context.Context, product *entity.Product) (string, error)
}

// OrderRepository puerto de persistencia para Order.
type OrderRepository interface {
	FindOrCreate(ctx context.Context, order *entity.Order) (string, error)
}

// OrderDetailRepository puerto de persistencia para las líneas de pedido.
type OrderDetailRepository interface {
	// Accumulate crea la línea (order, product) con quantity, o suma quantity
	// a la existente. Atómico por par (order, product).
	Accumulate(ctx context.Context, orderID, productID string, quantity int64) error
}
