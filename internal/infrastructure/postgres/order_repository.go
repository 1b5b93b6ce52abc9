package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación pgx de OrderRepository.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindOrCreate inserta el pedido si su código no existe y devuelve el ID
// final. El cliente y el timestamp de un pedido existente no se modifican.
func (r *OrderRepo) FindOrCreate(ctx context.Context, o *entity.Order) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO orders (id, code, customer_id, order_time)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM orders WHERE code = $2
		LIMIT 1`
	var id string
	if err := r.q.QueryRow(ctx, query, o.ID, o.Code, o.CustomerID, o.OrderTime).Scan(&id); err != nil {
		return "", fmt.Errorf("find-or-create order: %w", err)
	}
	return id, nil
}
