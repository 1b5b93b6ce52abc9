package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación pgx de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// FindOrCreate inserta el cliente si su código no existe y devuelve el ID de
// la fila resultante. ON CONFLICT DO NOTHING garantiza que una fila existente
// nunca se modifica, en una sola sentencia atómica.
func (r *CustomerRepo) FindOrCreate(ctx context.Context, c *entity.Customer) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO customers (id, code, name, segment_code)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM customers WHERE code = $2
		LIMIT 1`
	var id string
	if err := r.q.QueryRow(ctx, query, c.ID, c.Code, c.Name, c.SegmentCode).Scan(&id); err != nil {
		return "", fmt.Errorf("find-or-create customer: %w", err)
	}
	return id, nil
}
