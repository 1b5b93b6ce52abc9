package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductGroupRepository = (*ProductGroupRepo)(nil)

// ProductGroupRepo implementación pgx de ProductGroupRepository.
type ProductGroupRepo struct {
	q Querier
}

// NewProductGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductGroupRepository(q Querier) *ProductGroupRepo {
	return &ProductGroupRepo{q: q}
}

// FindOrCreate inserta el grupo si su código no existe y devuelve el ID final.
func (r *ProductGroupRepo) FindOrCreate(ctx context.Context, g *entity.ProductGroup) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO product_groups (id, code, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM product_groups WHERE code = $2
		LIMIT 1`
	var id string
	if err := r.q.QueryRow(ctx, query, g.ID, g.Code, g.Name).Scan(&id); err != nil {
		return "", fmt.Errorf("find-or-create product group: %w", err)
	}
	return id, nil
}
