package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación pgx de ProductRepository.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindOrCreate inserta el producto si su código no existe y devuelve el ID
// final. El precio de un producto existente no se toca: el primer precio
// visto en una importación gana de forma permanente.
func (r *ProductRepo) FindOrCreate(ctx context.Context, p *entity.Product) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO products (id, code, name, group_id, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM products WHERE code = $2
		LIMIT 1`
	var id string
	if err := r.q.QueryRow(ctx, query, p.ID, p.Code, p.Name, p.GroupID, p.UnitPrice).Scan(&id); err != nil {
		return "", fmt.Errorf("find-or-create product: %w", err)
	}
	return id, nil
}
