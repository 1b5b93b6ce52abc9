package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas precargadas por método.
type fakeReportRepo struct {
	details        []repository.DetailRow
	groups         []repository.GroupSalesRow
	months         []repository.MonthlySalesRow
	daily          []repository.DailySalesRow
	hourly         []repository.HourlySalesRow
	orderGroups    []repository.OrderGroupSalesRow
	ordersPerMonth []repository.MonthOrderCountRow
	orderCustomers []repository.OrderCustomerRow
	spending       []repository.CustomerSpendingRow
}

func (f *fakeReportRepo) DetailRows(context.Context) ([]repository.DetailRow, error) {
	return f.details, nil
}
func (f *fakeReportRepo) GroupSales(context.Context) ([]repository.GroupSalesRow, error) {
	return f.groups, nil
}
func (f *fakeReportRepo) MonthlySales(context.Context) ([]repository.MonthlySalesRow, error) {
	return f.months, nil
}
func (f *fakeReportRepo) DailySales(context.Context) ([]repository.DailySalesRow, error) {
	return f.daily, nil
}
func (f *fakeReportRepo) HourlySales(context.Context) ([]repository.HourlySalesRow, error) {
	return f.hourly, nil
}
func (f *fakeReportRepo) OrderGroupSales(context.Context) ([]repository.OrderGroupSalesRow, error) {
	return f.orderGroups, nil
}
func (f *fakeReportRepo) OrdersPerMonth(context.Context) ([]repository.MonthOrderCountRow, error) {
	return f.ordersPerMonth, nil
}
func (f *fakeReportRepo) OrderCustomers(context.Context) ([]repository.OrderCustomerRow, error) {
	return f.orderCustomers, nil
}
func (f *fakeReportRepo) CustomerSpending(context.Context) ([]repository.CustomerSpendingRow, error) {
	return f.spending, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// sampleRepo dos pedidos: ORD0001 (martes 2024-03-05 14:21, grupos BOT y TRA)
// y ORD0002 (sábado 2024-04-13 20:05, grupo BOT).
func sampleRepo() *fakeReportRepo {
	t1 := time.Date(2024, 3, 5, 14, 21, 9, 0, time.UTC)
	t2 := time.Date(2024, 4, 13, 20, 5, 55, 0, time.UTC)
	d1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)

	return &fakeReportRepo{
		details: []repository.DetailRow{
			{GroupCode: "BOT", GroupName: "Bột", ProductCode: "SP001", ProductName: "Bột cần tây",
				OrderCode: "ORD0001", OrderTime: t1, Quantity: 2, Revenue: dec(240000)},
			{GroupCode: "TRA", GroupName: "Trà củ quả sấy", ProductCode: "SP014", ProductName: "Trà gừng",
				OrderCode: "ORD0001", OrderTime: t1, Quantity: 1, Revenue: dec(65000)},
			{GroupCode: "BOT", GroupName: "Bột", ProductCode: "SP002", ProductName: "Bột diếp cá",
				OrderCode: "ORD0002", OrderTime: t2, Quantity: 4, Revenue: dec(440000)},
		},
		groups: []repository.GroupSalesRow{
			{GroupCode: "BOT", GroupName: "Bột", Quantity: 6, Revenue: dec(680000)},
			{GroupCode: "TRA", GroupName: "Trà củ quả sấy", Quantity: 1, Revenue: dec(65000)},
		},
		months: []repository.MonthlySalesRow{
			{Month: 3, Quantity: 3, Revenue: dec(305000)},
			{Month: 4, Quantity: 4, Revenue: dec(440000)},
		},
		daily: []repository.DailySalesRow{
			{Date: d1, Quantity: 3, Revenue: dec(305000)},
			{Date: d2, Quantity: 4, Revenue: dec(440000)},
		},
		hourly: []repository.HourlySalesRow{
			{Date: d1, Hour: 14, Quantity: 3, Revenue: dec(305000)},
			{Date: d2, Hour: 20, Quantity: 4, Revenue: dec(440000)},
		},
		orderGroups: []repository.OrderGroupSalesRow{
			{OrderCode: "ORD0001", Month: 3, GroupCode: "BOT", GroupName: "Bột", Quantity: 2, Revenue: dec(240000)},
			{OrderCode: "ORD0001", Month: 3, GroupCode: "TRA", GroupName: "Trà củ quả sấy", Quantity: 1, Revenue: dec(65000)},
			{OrderCode: "ORD0002", Month: 4, GroupCode: "BOT", GroupName: "Bột", Quantity: 4, Revenue: dec(440000)},
		},
		ordersPerMonth: []repository.MonthOrderCountRow{
			{Month: 3, Orders: 1},
			{Month: 4, Orders: 1},
		},
		orderCustomers: []repository.OrderCustomerRow{
			{OrderCode: "ORD0001", CustomerCode: "KH0001"},
			{OrderCode: "ORD0002", CustomerCode: "KH0002"},
		},
		spending: []repository.CustomerSpendingRow{
			{CustomerCode: "KH0001", Revenue: dec(305000)},
			{CustomerCode: "KH0002", Revenue: dec(440000)},
		},
	}
}

func TestGetReports_EjemploCompleto(t *testing.T) {
	uc := NewReportsUseCase(sampleRepo())

	out, err := uc.GetReports(context.Background())
	require.NoError(t, err)

	// Q1 refleja el detalle tal cual.
	require.Len(t, out.Q1, 3)
	assert.Equal(t, "BOT", out.Q1[0].GroupCode)
	assert.Equal(t, "SP001", out.Q1[0].ProductCode)
	assert.True(t, dec(240000).Equal(out.Q1[0].Revenue))

	// La suma de Q2 coincide con la suma de Q1.
	var q1Total, q2Total decimal.Decimal
	for _, r := range out.Q1 {
		q1Total = q1Total.Add(r.Revenue)
	}
	for _, r := range out.Q2 {
		q2Total = q2Total.Add(r.Revenue)
	}
	assert.True(t, q1Total.Equal(q2Total))
	assert.True(t, dec(745000).Equal(q2Total))

	// Q3 etiqueta "MM".
	require.Len(t, out.Q3, 2)
	assert.Equal(t, "03", out.Q3[0].Month)
	assert.Equal(t, "04", out.Q3[1].Month)

	// Q4: martes antes que sábado (orden lunes → domingo); los días sin ventas
	// no aparecen. Promedios con divisor = fechas distintas de la cubeta.
	require.Len(t, out.Q4, 2)
	assert.Equal(t, "Thứ Ba", out.Q4[0].Weekday)
	assert.Equal(t, "Thứ Bảy", out.Q4[1].Weekday)
	assert.Equal(t, int64(3), out.Q4[0].Quantity)
	assert.True(t, dec(305000).Equal(out.Q4[0].AvgRevenue))
	assert.True(t, dec(3).Equal(out.Q4[0].AvgQty))

	// Q5: etiqueta "Ngày NN" en orden ascendente.
	require.Len(t, out.Q5, 2)
	assert.Equal(t, "Ngày 05", out.Q5[0].Day)
	assert.Equal(t, "Ngày 13", out.Q5[1].Day)

	// Q6: franjas horarias ascendentes.
	require.Len(t, out.Q6, 2)
	assert.Equal(t, "14:00-14:59", out.Q6[0].HourRange)
	assert.Equal(t, "20:00-20:59", out.Q6[1].HourRange)
	assert.True(t, dec(305000).Equal(out.Q6[0].AvgRevenue))

	// Q7: BOT aparece en 2 de 2 pedidos (100%), TRA en 1 de 2 (50%);
	// orden por probabilidad descendente.
	require.Len(t, out.Q7, 2)
	assert.Equal(t, "[BOT] Bột", out.Q7[0].Group)
	assert.True(t, dec(100).Equal(out.Q7[0].Probability))
	assert.Equal(t, int64(2), out.Q7[0].OrderCount)
	assert.Equal(t, "[TRA] Trà củ quả sấy", out.Q7[1].Group)
	assert.True(t, dec(50).Equal(out.Q7[1].Probability))

	// Q8: denominador por mes; orden (mes, etiqueta de grupo).
	require.Len(t, out.Q8, 3)
	assert.Equal(t, "Tháng 03", out.Q8[0].Month)
	assert.Equal(t, "[BOT] Bột", out.Q8[0].Group)
	assert.True(t, dec(100).Equal(out.Q8[0].Probability))
	assert.Equal(t, "Tháng 03", out.Q8[1].Month)
	assert.Equal(t, "[TRA] Trà củ quả sấy", out.Q8[1].Group)
	assert.Equal(t, "Tháng 04", out.Q8[2].Month)

	// Q9 con el timestamp formateado; Q10 es el mismo dataset.
	require.Len(t, out.Q9, 3)
	assert.Equal(t, "2024-03-05 14:21:09", out.Q9[0].OrderTime)
	assert.Equal(t, out.Q9, out.Q10)

	// Q11 y Q12.
	require.Len(t, out.Q11, 2)
	assert.Equal(t, "KH0001", out.Q11[0].CustomerCode)
	require.Len(t, out.Q12, 2)
	assert.True(t, dec(440000).Equal(out.Q12[1].Revenue))
}

func TestGetReports_ModeloVacio(t *testing.T) {
	uc := NewReportsUseCase(&fakeReportRepo{})

	out, err := uc.GetReports(context.Background())
	require.NoError(t, err)

	// Listas vacías pero no nil: serializan como [] y no como null.
	assert.NotNil(t, out.Q1)
	assert.Empty(t, out.Q1)
	assert.NotNil(t, out.Q4)
	assert.Empty(t, out.Q4)
	assert.NotNil(t, out.Q7)
	assert.Empty(t, out.Q7)
	assert.NotNil(t, out.Q12)
	assert.Empty(t, out.Q12)
}

func TestGetReports_ProbabilidadConPedidosRepetidos(t *testing.T) {
	// Dos líneas del mismo pedido y grupo cuentan como UN pedido en la
	// probabilidad.
	repo := &fakeReportRepo{
		orderGroups: []repository.OrderGroupSalesRow{
			{OrderCode: "ORD0001", Month: 3, GroupCode: "BOT", GroupName: "Bột", Quantity: 2, Revenue: dec(100)},
			{OrderCode: "ORD0001", Month: 3, GroupCode: "BOT", GroupName: "Bột", Quantity: 1, Revenue: dec(50)},
		},
		ordersPerMonth: []repository.MonthOrderCountRow{{Month: 3, Orders: 1}},
	}
	uc := NewReportsUseCase(repo)

	out, err := uc.GetReports(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Q7, 1)
	assert.Equal(t, int64(1), out.Q7[0].OrderCount)
	assert.True(t, dec(100).Equal(out.Q7[0].Probability))
	assert.Equal(t, int64(3), out.Q7[0].Quantity)
	assert.True(t, dec(150).Equal(out.Q7[0].Revenue))
}
