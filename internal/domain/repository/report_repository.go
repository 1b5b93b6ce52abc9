package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filas tipadas que devuelven las consultas de reportes. El importe (Thành
// tiền) llega como NUMERIC y se escanea a decimal; las cantidades como BIGINT.

// DetailRow una línea de pedido con su producto, grupo y pedido resueltos.
// Como (pedido, producto) es único, este grano sirve para Q1, Q9 y Q10.
type DetailRow struct {
	GroupCode   string
	GroupName   string
	ProductCode string
	ProductName string
	OrderCode   string
	OrderTime   time.Time
	Quantity    int64
	Revenue     decimal.Decimal // quantity × unit_price
}

// GroupSalesRow totales por grupo de productos.
type GroupSalesRow struct {
	GroupCode string
	GroupName string
	Quantity  int64
	Revenue   decimal.Decimal
}

// MonthlySalesRow totales por mes calendario (1–12, se ignora el año).
type MonthlySalesRow struct {
	Month    int
	Quantity int64
	Revenue  decimal.Decimal
}

// DailySalesRow totales por fecha calendario. Alimenta las cubetas de día de
// la semana (Q4) y día del mes (Q5).
type DailySalesRow struct {
	Date     time.Time // fecha a medianoche, sin componente horario
	Quantity int64
	Revenue  decimal.Decimal
}

// HourlySalesRow totales por (fecha, hora del día).
type HourlySalesRow struct {
	Date     time.Time
	Hour     int // 0–23
	Quantity int64
	Revenue  decimal.Decimal
}

// OrderGroupSalesRow totales por (pedido, grupo). Un pedido tiene un único
// timestamp, así que Month identifica el mes de todas sus líneas.
type OrderGroupSalesRow struct {
	OrderCode string
	Month     int
	GroupCode string
	GroupName string
	Quantity  int64
	Revenue   decimal.Decimal
}

// MonthOrderCountRow número de pedidos por mes. La suma de todos los meses es
// el total de pedidos (denominador de la probabilidad de venta global).
type MonthOrderCountRow struct {
	Month  int
	Orders int64
}

// OrderCustomerRow proyección pedido → cliente (Q11).
type OrderCustomerRow struct {
	OrderCode    string
	CustomerCode string
}

// CustomerSpendingRow gasto total por cliente (Q12).
type CustomerSpendingRow struct {
	CustomerCode string
	Revenue      decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre el modelo de ventas.
// Son independientes entre sí y pueden ejecutarse en cualquier orden o en
// paralelo; cada una impone su propio ORDER BY para salida determinista.
type ReportRepository interface {
	DetailRows(ctx context.Context) ([]DetailRow, error)
	GroupSales(ctx context.Context) ([]GroupSalesRow, error)
	MonthlySales(ctx context.Context) ([]MonthlySalesRow, error)
	DailySales(ctx context.Context) ([]DailySalesRow, error)
	HourlySales(ctx context.Context) ([]HourlySalesRow, error)
	OrderGroupSales(ctx context.Context) ([]OrderGroupSalesRow, error)
	OrdersPerMonth(ctx context.Context) ([]MonthOrderCountRow, error)
	OrderCustomers(ctx context.Context) ([]OrderCustomerRow, error)
	CustomerSpending(ctx context.Context) ([]CustomerSpendingRow, error)
}
