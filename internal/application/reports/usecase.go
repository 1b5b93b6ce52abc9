// Package reports calcula los doce datasets del dashboard de ventas a partir
// del modelo relacional. Cada dataset es independiente y de solo lectura; el
// reparto del trabajo es: el repositorio agrega en SQL al grano necesario y
// aquí se hace el re-agrupado por claves tipadas, el etiquetado y el orden
// final de presentación.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// orderTimeFormat formato del timestamp en Q9/Q10, igual al del CSV de origen.
const orderTimeFormat = "2006-01-02 15:04:05"

// ReportsUseCase construye SalesReportsDTO desde el ReportRepository.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportRepo repository.ReportRepository) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo}
}

// GetReports calcula los doce datasets sobre el estado actual del modelo.
//
// Las tres consultas de cubetas temporales (diaria, horaria y pedido-grupo)
// son las más pesadas y no dependen entre sí: se lanzan en paralelo. El resto
// se lee en secuencia.
func (uc *ReportsUseCase) GetReports(ctx context.Context) (*dto.SalesReportsDTO, error) {
	type dailyResult struct {
		rows []repository.DailySalesRow
		err  error
	}
	type hourlyResult struct {
		rows []repository.HourlySalesRow
		err  error
	}
	type orderGroupResult struct {
		rows []repository.OrderGroupSalesRow
		err  error
	}

	dailyCh := make(chan dailyResult, 1)
	hourlyCh := make(chan hourlyResult, 1)
	ogCh := make(chan orderGroupResult, 1)

	go func() {
		rows, err := uc.reportRepo.DailySales(ctx)
		dailyCh <- dailyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.HourlySales(ctx)
		hourlyCh <- hourlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.OrderGroupSales(ctx)
		ogCh <- orderGroupResult{rows, err}
	}()

	details, err := uc.reportRepo.DetailRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: detalle: %w", err)
	}
	groups, err := uc.reportRepo.GroupSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: grupos: %w", err)
	}
	months, err := uc.reportRepo.MonthlySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: meses: %w", err)
	}
	ordersPerMonth, err := uc.reportRepo.OrdersPerMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: pedidos por mes: %w", err)
	}
	orderCustomers, err := uc.reportRepo.OrderCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: pedidos-cliente: %w", err)
	}
	spending, err := uc.reportRepo.CustomerSpending(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: gasto por cliente: %w", err)
	}

	daily := <-dailyCh
	hourly := <-hourlyCh
	og := <-ogCh
	if daily.err != nil {
		return nil, fmt.Errorf("reportes: ventas diarias: %w", daily.err)
	}
	if hourly.err != nil {
		return nil, fmt.Errorf("reportes: ventas por hora: %w", hourly.err)
	}
	if og.err != nil {
		return nil, fmt.Errorf("reportes: pedido-grupo: %w", og.err)
	}

	orderLines := buildOrderLines(details)

	return &dto.SalesReportsDTO{
		Q1:  buildDetailReport(details),
		Q2:  buildGroupReport(groups),
		Q3:  buildMonthReport(months),
		Q4:  buildWeekdayReport(daily.rows),
		Q5:  buildDayOfMonthReport(daily.rows),
		Q6:  buildHourReport(hourly.rows),
		Q7:  buildGroupProbabilityReport(og.rows, ordersPerMonth),
		Q8:  buildMonthGroupProbabilityReport(og.rows, ordersPerMonth),
		Q9:  orderLines,
		Q10: orderLines, // duplicado intencional de Q9: dos gráficas lo consumen
		Q11: buildOrderCustomerReport(orderCustomers),
		Q12: buildCustomerSpendingReport(spending),
	}, nil
}

// buildDetailReport Q1: una fila por línea de pedido, sin agregación.
func buildDetailReport(rows []repository.DetailRow) []dto.DetailReportRow {
	out := make([]dto.DetailReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DetailReportRow{
			GroupCode:   r.GroupCode,
			GroupName:   r.GroupName,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Revenue:     r.Revenue,
			Quantity:    r.Quantity,
		})
	}
	return out
}

// buildGroupReport Q2: totales por grupo.
func buildGroupReport(rows []repository.GroupSalesRow) []dto.GroupReportRow {
	out := make([]dto.GroupReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.GroupReportRow{
			GroupCode: r.GroupCode,
			GroupName: r.GroupName,
			Revenue:   r.Revenue,
			Quantity:  r.Quantity,
		})
	}
	return out
}

// buildMonthReport Q3: totales por mes, etiqueta "MM".
func buildMonthReport(rows []repository.MonthlySalesRow) []dto.MonthReportRow {
	out := make([]dto.MonthReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthReportRow{
			Month:    monthLabel(r.Month),
			Revenue:  r.Revenue,
			Quantity: r.Quantity,
		})
	}
	return out
}

// buildWeekdayReport Q4: cubetas por día de la semana. El día se deriva de la
// fecha con time.Weekday; los promedios dividen entre las fechas distintas de
// cada cubeta. Salida lunes → domingo, omitiendo días sin ventas.
func buildWeekdayReport(rows []repository.DailySalesRow) []dto.WeekdayReportRow {
	buckets := make(map[time.Weekday]*dateBucket)
	for _, r := range rows {
		wd := r.Date.Weekday()
		b, ok := buckets[wd]
		if !ok {
			b = newDateBucket()
			buckets[wd] = b
		}
		b.add(r.Date, r.Quantity, r.Revenue)
	}

	out := make([]dto.WeekdayReportRow, 0, len(buckets))
	for _, wd := range weekdayOrder {
		b, ok := buckets[wd]
		if !ok {
			continue
		}
		out = append(out, dto.WeekdayReportRow{
			Weekday:    weekdayName(wd),
			Revenue:    b.revenue,
			Quantity:   b.qty,
			AvgRevenue: safeAvg(b.revenue, b.distinctDays()),
			AvgQty:     safeAvg(decimal.NewFromInt(b.qty), b.distinctDays()),
		})
	}
	return out
}

// buildDayOfMonthReport Q5: cubetas por día del mes (1–31), orden ascendente.
func buildDayOfMonthReport(rows []repository.DailySalesRow) []dto.DayOfMonthReportRow {
	buckets := make(map[int]*dateBucket)
	for _, r := range rows {
		day := r.Date.Day()
		b, ok := buckets[day]
		if !ok {
			b = newDateBucket()
			buckets[day] = b
		}
		b.add(r.Date, r.Quantity, r.Revenue)
	}

	days := make([]int, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Ints(days)

	out := make([]dto.DayOfMonthReportRow, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		out = append(out, dto.DayOfMonthReportRow{
			Day:        dayLabel(day),
			Revenue:    b.revenue,
			Quantity:   b.qty,
			AvgRevenue: safeAvg(b.revenue, b.distinctDays()),
			AvgQty:     safeAvg(decimal.NewFromInt(b.qty), b.distinctDays()),
		})
	}
	return out
}

// buildHourReport Q6: cubetas por hora del día, orden ascendente. El divisor
// de los promedios son las fechas distintas con ventas en esa hora.
func buildHourReport(rows []repository.HourlySalesRow) []dto.HourReportRow {
	buckets := make(map[int]*dateBucket)
	for _, r := range rows {
		b, ok := buckets[r.Hour]
		if !ok {
			b = newDateBucket()
			buckets[r.Hour] = b
		}
		b.add(r.Date, r.Quantity, r.Revenue)
	}

	hours := make([]int, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]dto.HourReportRow, 0, len(hours))
	for _, h := range hours {
		b := buckets[h]
		out = append(out, dto.HourReportRow{
			HourRange:  hourLabel(h),
			Revenue:    b.revenue,
			Quantity:   b.qty,
			AvgRevenue: safeAvg(b.revenue, b.distinctDays()),
			AvgQty:     safeAvg(decimal.NewFromInt(b.qty), b.distinctDays()),
		})
	}
	return out
}

// groupAgg acumulador por grupo: totales más pedidos distintos que lo incluyen.
type groupAgg struct {
	label   string
	revenue decimal.Decimal
	qty     int64
	orders  map[string]struct{}
}

// buildGroupProbabilityReport Q7: por grupo, probabilidad de venta = pedidos
// distintos que incluyen el grupo / total de pedidos × 100. Orden: probabilidad
// descendente, con la etiqueta de grupo como desempate estable.
func buildGroupProbabilityReport(
	rows []repository.OrderGroupSalesRow,
	perMonth []repository.MonthOrderCountRow,
) []dto.GroupProbabilityReportRow {
	var totalOrders int64
	for _, m := range perMonth {
		totalOrders += m.Orders
	}

	buckets := make(map[string]*groupAgg)
	for _, r := range rows {
		b, ok := buckets[r.GroupCode]
		if !ok {
			b = &groupAgg{
				label:  groupLabel(r.GroupCode, r.GroupName),
				orders: make(map[string]struct{}),
			}
			buckets[r.GroupCode] = b
		}
		b.revenue = b.revenue.Add(r.Revenue)
		b.qty += r.Quantity
		b.orders[r.OrderCode] = struct{}{}
	}

	out := make([]dto.GroupProbabilityReportRow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.GroupProbabilityReportRow{
			Group:       b.label,
			Revenue:     b.revenue,
			Quantity:    b.qty,
			OrderCount:  int64(len(b.orders)),
			Probability: percentage(int64(len(b.orders)), totalOrders),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Probability.Equal(out[j].Probability) {
			return out[i].Probability.GreaterThan(out[j].Probability)
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// monthGroupKey clave compuesta tipada de Q8.
type monthGroupKey struct {
	month     int
	groupCode string
}

// buildMonthGroupProbabilityReport Q8: por (mes, grupo); el denominador de la
// probabilidad es el total de pedidos de ese mes. Orden (mes, etiqueta de
// grupo) ascendente.
func buildMonthGroupProbabilityReport(
	rows []repository.OrderGroupSalesRow,
	perMonth []repository.MonthOrderCountRow,
) []dto.MonthGroupProbabilityReportRow {
	ordersByMonth := make(map[int]int64, len(perMonth))
	for _, m := range perMonth {
		ordersByMonth[m.Month] = m.Orders
	}

	type agg struct {
		label   string
		revenue decimal.Decimal
		qty     int64
		orders  map[string]struct{}
	}
	buckets := make(map[monthGroupKey]*agg)
	for _, r := range rows {
		key := monthGroupKey{month: r.Month, groupCode: r.GroupCode}
		b, ok := buckets[key]
		if !ok {
			b = &agg{
				label:  groupLabel(r.GroupCode, r.GroupName),
				orders: make(map[string]struct{}),
			}
			buckets[key] = b
		}
		b.revenue = b.revenue.Add(r.Revenue)
		b.qty += r.Quantity
		b.orders[r.OrderCode] = struct{}{}
	}

	keys := make([]monthGroupKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return buckets[keys[i]].label < buckets[keys[j]].label
	})

	out := make([]dto.MonthGroupProbabilityReportRow, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, dto.MonthGroupProbabilityReportRow{
			Month:       monthFullLabel(k.month),
			Group:       b.label,
			Quantity:    b.qty,
			Revenue:     b.revenue,
			OrderCount:  int64(len(b.orders)),
			Probability: percentage(int64(len(b.orders)), ordersByMonth[k.month]),
		})
	}
	return out
}

// buildOrderLines Q9/Q10: líneas de pedido con el timestamp formateado.
func buildOrderLines(rows []repository.DetailRow) []dto.OrderLineReportRow {
	out := make([]dto.OrderLineReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OrderLineReportRow{
			OrderCode:   r.OrderCode,
			GroupCode:   r.GroupCode,
			GroupName:   r.GroupName,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Revenue:     r.Revenue,
			Quantity:    r.Quantity,
			OrderTime:   r.OrderTime.Format(orderTimeFormat),
		})
	}
	return out
}

// buildOrderCustomerReport Q11: proyección pedido → cliente.
func buildOrderCustomerReport(rows []repository.OrderCustomerRow) []dto.OrderCustomerReportRow {
	out := make([]dto.OrderCustomerReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OrderCustomerReportRow{
			OrderCode:    r.OrderCode,
			CustomerCode: r.CustomerCode,
		})
	}
	return out
}

// buildCustomerSpendingReport Q12: gasto total por cliente.
func buildCustomerSpendingReport(rows []repository.CustomerSpendingRow) []dto.CustomerSpendingReportRow {
	out := make([]dto.CustomerSpendingReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerSpendingReportRow{
			CustomerCode: r.CustomerCode,
			Revenue:      r.Revenue,
		})
	}
	return out
}
