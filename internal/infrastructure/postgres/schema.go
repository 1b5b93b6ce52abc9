package postgres

import (
	"context"
	"fmt"
)

// schemaDDL esquema estrella del dashboard de ventas. Los UNIQUE sobre los
// códigos externos y sobre (order_id, product_id) son los que sostienen la
// semántica get-or-create y la acumulación de cantidades del importador.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
    id           TEXT PRIMARY KEY,
    code         TEXT NOT NULL UNIQUE,
    name         TEXT,
    segment_code TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS product_groups (
    id   TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id         TEXT PRIMARY KEY,
    code       TEXT NOT NULL UNIQUE,
    name       TEXT NOT NULL,
    group_id   TEXT NOT NULL REFERENCES product_groups(id),
    unit_price BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS orders (
    id          TEXT PRIMARY KEY,
    code        TEXT NOT NULL UNIQUE,
    customer_id TEXT NOT NULL REFERENCES customers(id),
    order_time  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS order_details (
    id         TEXT PRIMARY KEY,
    order_id   TEXT NOT NULL REFERENCES orders(id),
    product_id TEXT NOT NULL REFERENCES products(id),
    quantity   BIGINT NOT NULL DEFAULT 0,
    UNIQUE (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_order_details_order   ON order_details(order_id);
CREATE INDEX IF NOT EXISTS idx_order_details_product ON order_details(product_id);
CREATE INDEX IF NOT EXISTS idx_products_group        ON products(group_id);
CREATE INDEX IF NOT EXISTS idx_orders_customer       ON orders(customer_id);
`

// Migrate aplica el esquema. Idempotente (IF NOT EXISTS).
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
