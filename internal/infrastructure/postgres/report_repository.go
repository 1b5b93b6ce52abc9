package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los doce reportes del dashboard.
// Cada consulta agrega en SQL al grano que necesita el motor de reportes y
// fija un ORDER BY explícito para que la salida sea determinista.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DetailRows devuelve cada línea de pedido con su grupo, producto y pedido.
// (pedido, producto) es único, así que este grano alimenta Q1, Q9 y Q10.
func (r *ReportRepo) DetailRows(ctx context.Context) ([]repository.DetailRow, error) {
	const query = `
	SELECT
	    g.code,
	    g.name,
	    p.code,
	    p.name,
	    o.code,
	    o.order_time,
	    d.quantity,
	    (d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products       p ON p.id = d.product_id
	JOIN product_groups g ON g.id = p.group_id
	JOIN orders         o ON o.id = d.order_id
	ORDER BY o.code, g.code, p.code`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.DetailRows: %w", err)
	}
	defer rows.Close()

	var results []repository.DetailRow
	for rows.Next() {
		var row repository.DetailRow
		if err := rows.Scan(
			&row.GroupCode, &row.GroupName,
			&row.ProductCode, &row.ProductName,
			&row.OrderCode, &row.OrderTime,
			&row.Quantity, &row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("reports.DetailRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GroupSales agrega cantidad e importe por grupo de productos (Q2).
func (r *ReportRepo) GroupSales(ctx context.Context) ([]repository.GroupSalesRow, error) {
	const query = `
	SELECT
	    g.code,
	    g.name,
	    SUM(d.quantity)::BIGINT                AS quantity,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products       p ON p.id = d.product_id
	JOIN product_groups g ON g.id = p.group_id
	GROUP BY g.code, g.name
	ORDER BY g.code`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GroupSales: %w", err)
	}
	defer rows.Close()

	var results []repository.GroupSalesRow
	for rows.Next() {
		var row repository.GroupSalesRow
		if err := rows.Scan(&row.GroupCode, &row.GroupName, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GroupSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MonthlySales agrega por mes calendario (1–12), ignorando el año (Q3).
func (r *ReportRepo) MonthlySales(ctx context.Context) ([]repository.MonthlySalesRow, error) {
	const query = `
	SELECT
	    EXTRACT(MONTH FROM o.order_time)::INT   AS month,
	    SUM(d.quantity)::BIGINT                 AS quantity,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products p ON p.id = d.product_id
	JOIN orders   o ON o.id = d.order_id
	GROUP BY month
	ORDER BY month`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.MonthlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySalesRow
	for rows.Next() {
		var row repository.MonthlySalesRow
		if err := rows.Scan(&row.Month, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.MonthlySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailySales agrega por fecha calendario. El motor de reportes deriva de aquí
// las cubetas de día de la semana (Q4) y día del mes (Q5): cada fila es una
// fecha distinta, así que contar filas por cubeta cuenta fechas distintas.
func (r *ReportRepo) DailySales(ctx context.Context) ([]repository.DailySalesRow, error) {
	const query = `
	SELECT
	    o.order_time::DATE                      AS date,
	    SUM(d.quantity)::BIGINT                 AS quantity,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products p ON p.id = d.product_id
	JOIN orders   o ON o.id = d.order_id
	GROUP BY date
	ORDER BY date`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.DailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesRow
	for rows.Next() {
		var row repository.DailySalesRow
		if err := rows.Scan(&row.Date, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.DailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// HourlySales agrega por (fecha, hora del día) para las franjas horarias (Q6).
func (r *ReportRepo) HourlySales(ctx context.Context) ([]repository.HourlySalesRow, error) {
	const query = `
	SELECT
	    o.order_time::DATE                      AS date,
	    EXTRACT(HOUR FROM o.order_time)::INT    AS hour,
	    SUM(d.quantity)::BIGINT                 AS quantity,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products p ON p.id = d.product_id
	JOIN orders   o ON o.id = d.order_id
	GROUP BY date, hour
	ORDER BY date, hour`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.HourlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.HourlySalesRow
	for rows.Next() {
		var row repository.HourlySalesRow
		if err := rows.Scan(&row.Date, &row.Hour, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.HourlySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OrderGroupSales agrega por (pedido, grupo). Cada fila es un par distinto,
// lo que permite contar pedidos distintos por grupo (Q7) y por mes y grupo
// (Q8) sin volver a la tabla de pedidos.
func (r *ReportRepo) OrderGroupSales(ctx context.Context) ([]repository.OrderGroupSalesRow, error) {
	const query = `
	SELECT
	    o.code,
	    EXTRACT(MONTH FROM o.order_time)::INT   AS month,
	    g.code,
	    g.name,
	    SUM(d.quantity)::BIGINT                 AS quantity,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products       p ON p.id = d.product_id
	JOIN product_groups g ON g.id = p.group_id
	JOIN orders         o ON o.id = d.order_id
	GROUP BY o.code, month, g.code, g.name
	ORDER BY o.code, g.code`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.OrderGroupSales: %w", err)
	}
	defer rows.Close()

	var results []repository.OrderGroupSalesRow
	for rows.Next() {
		var row repository.OrderGroupSalesRow
		if err := rows.Scan(
			&row.OrderCode, &row.Month,
			&row.GroupCode, &row.GroupName,
			&row.Quantity, &row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("reports.OrderGroupSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OrdersPerMonth cuenta pedidos por mes calendario. La suma de los meses es
// el total de pedidos: denominador de las probabilidades de venta.
func (r *ReportRepo) OrdersPerMonth(ctx context.Context) ([]repository.MonthOrderCountRow, error) {
	const query = `
	SELECT
	    EXTRACT(MONTH FROM order_time)::INT AS month,
	    COUNT(*)::BIGINT                    AS orders
	FROM orders
	GROUP BY month
	ORDER BY month`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.OrdersPerMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthOrderCountRow
	for rows.Next() {
		var row repository.MonthOrderCountRow
		if err := rows.Scan(&row.Month, &row.Orders); err != nil {
			return nil, fmt.Errorf("reports.OrdersPerMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OrderCustomers proyección pedido → cliente (Q11).
func (r *ReportRepo) OrderCustomers(ctx context.Context) ([]repository.OrderCustomerRow, error) {
	const query = `
	SELECT o.code, c.code
	FROM orders    o
	JOIN customers c ON c.id = o.customer_id
	ORDER BY o.code`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.OrderCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.OrderCustomerRow
	for rows.Next() {
		var row repository.OrderCustomerRow
		if err := rows.Scan(&row.OrderCode, &row.CustomerCode); err != nil {
			return nil, fmt.Errorf("reports.OrderCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CustomerSpending gasto acumulado por cliente a través de todos sus pedidos (Q12).
func (r *ReportRepo) CustomerSpending(ctx context.Context) ([]repository.CustomerSpendingRow, error) {
	const query = `
	SELECT
	    c.code,
	    SUM(d.quantity * p.unit_price)::NUMERIC AS revenue
	FROM order_details d
	JOIN products  p ON p.id = d.product_id
	JOIN orders    o ON o.id = d.order_id
	JOIN customers c ON c.id = o.customer_id
	GROUP BY c.code
	ORDER BY c.code`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.CustomerSpending: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerSpendingRow
	for rows.Next() {
		var row repository.CustomerSpendingRow
		if err := rows.Scan(&row.CustomerCode, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.CustomerSpending scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
