package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.OrderDetailRepository = (*OrderDetailRepo)(nil)

// OrderDetailRepo implementación pgx de OrderDetailRepository.
type OrderDetailRepo struct {
	q Querier
}

// NewOrderDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderDetailRepository(q Querier) *OrderDetailRepo {
	return &OrderDetailRepo{q: q}
}

// Accumulate crea la línea (order, product) con quantity o, si ya existe,
// suma quantity a la cantidad almacenada. El upsert es una única sentencia,
// atómico por par (order_id, product_id): no hay carrera read-modify-write.
func (r *OrderDetailRepo) Accumulate(ctx context.Context, orderID, productID string, quantity int64) error {
	const query = `
		INSERT INTO order_details (id, order_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id, product_id)
		DO UPDATE SET quantity = order_details.quantity + EXCLUDED.quantity`
	if _, err := r.q.Exec(ctx, query, uuid.New().String(), orderID, productID, quantity); err != nil {
		return fmt.Errorf("accumulate order detail: %w", err)
	}
	return nil
}
