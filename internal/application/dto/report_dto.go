package dto

import "github.com/shopspring/decimal"

// Los doce datasets del dashboard. Las etiquetas JSON son las claves en
// vietnamita a las que se enlazan las gráficas del front (vienen del CSV de
// origen y no se traducen). Thành tiền = importe, SL = cantidad.

// DetailReportRow fila de Q1: una por línea de pedido, sin agregación.
type DetailReportRow struct {
	GroupCode   string          `json:"Mã nhóm hàng"`
	GroupName   string          `json:"Tên nhóm hàng"`
	ProductCode string          `json:"Mã mặt hàng"`
	ProductName string          `json:"Tên mặt hàng"`
	Revenue     decimal.Decimal `json:"Thành tiền"`
	Quantity    int64           `json:"SL"`
}

// GroupReportRow fila de Q2: totales por grupo de productos.
type GroupReportRow struct {
	GroupCode string          `json:"Mã nhóm hàng"`
	GroupName string          `json:"Tên nhóm hàng"`
	Revenue   decimal.Decimal `json:"Thành tiền"`
	Quantity  int64           `json:"SL"`
}

// MonthReportRow fila de Q3: totales por mes calendario, etiqueta "MM".
type MonthReportRow struct {
	Month    string          `json:"Tháng"`
	Revenue  decimal.Decimal `json:"Thành tiền"`
	Quantity int64           `json:"SL"`
}

// WeekdayReportRow fila de Q4: totales y promedios por día de la semana.
// Los promedios dividen entre el número de fechas DISTINTAS que caen en ese
// día; salida ordenada lunes → domingo.
type WeekdayReportRow struct {
	Weekday    string          `json:"Thứ"`
	Revenue    decimal.Decimal `json:"Thành tiền"`
	Quantity   int64           `json:"SL"`
	AvgRevenue decimal.Decimal `json:"Doanh số bán TB"`
	AvgQty     decimal.Decimal `json:"Số lượng bán TB"`
}

// DayOfMonthReportRow fila de Q5: por día del mes (1–31), etiqueta "Ngày NN".
type DayOfMonthReportRow struct {
	Day        string          `json:"Ngày trong tháng"`
	Revenue    decimal.Decimal `json:"Thành tiền"`
	Quantity   int64           `json:"SL"`
	AvgRevenue decimal.Decimal `json:"Doanh số bán TB"`
	AvgQty     decimal.Decimal `json:"Số lượng bán TB"`
}

// HourReportRow fila de Q6: por franja horaria, etiqueta "HH:00-HH:59".
type HourReportRow struct {
	HourRange  string          `json:"Khung giờ"`
	Revenue    decimal.Decimal `json:"Thành tiền"`
	Quantity   int64           `json:"SL"`
	AvgRevenue decimal.Decimal `json:"Doanh số bán TB"`
	AvgQty     decimal.Decimal `json:"Số lượng bán TB"`
}

// GroupProbabilityReportRow fila de Q7: por grupo, con etiqueta "[código]
// nombre" y probabilidad de venta = pedidos distintos que incluyen el grupo /
// total de pedidos × 100. Ordenado por probabilidad descendente.
type GroupProbabilityReportRow struct {
	Group       string          `json:"Nhóm hàng"`
	Revenue     decimal.Decimal `json:"Thành tiền"`
	Quantity    int64           `json:"SL"`
	OrderCount  int64           `json:"SL Đơn Bán"`
	Probability decimal.Decimal `json:"Xác suất bán"`
}

// MonthGroupProbabilityReportRow fila de Q8: por (mes, grupo), etiqueta de mes
// "Tháng MM"; el denominador de la probabilidad es el total de pedidos del mes.
type MonthGroupProbabilityReportRow struct {
	Month       string          `json:"Tháng"`
	Group       string          `json:"Nhóm hàng"`
	Quantity    int64           `json:"SL"`
	Revenue     decimal.Decimal `json:"Thành tiền"`
	OrderCount  int64           `json:"SL Đơn Bán"`
	Probability decimal.Decimal `json:"Xác suất bán"`
}

// OrderLineReportRow fila de Q9 y Q10: línea de pedido con el timestamp del
// pedido formateado como YYYY-MM-DD HH:MM:SS.
type OrderLineReportRow struct {
	OrderCode   string          `json:"Mã đơn hàng"`
	GroupCode   string          `json:"Mã nhóm hàng"`
	GroupName   string          `json:"Tên nhóm hàng"`
	ProductCode string          `json:"Mã mặt hàng"`
	ProductName string          `json:"Tên mặt hàng"`
	Revenue     decimal.Decimal `json:"Thành tiền"`
	Quantity    int64           `json:"SL"`
	OrderTime   string          `json:"Thời gian tạo đơn"`
}

// OrderCustomerReportRow fila de Q11: proyección pedido → cliente.
type OrderCustomerReportRow struct {
	OrderCode    string `json:"Mã đơn hàng"`
	CustomerCode string `json:"Mã khách hàng"`
}

// CustomerSpendingReportRow fila de Q12: gasto total por cliente.
type CustomerSpendingReportRow struct {
	CustomerCode string          `json:"Mã khách hàng"`
	Revenue      decimal.Decimal `json:"Thành tiền"`
}

// SalesReportsDTO respuesta completa de GET /api/reports: los doce datasets
// listos para las gráficas. Q10 es un duplicado intencional de Q9 (dos
// gráficas distintas consumen el mismo dataset).
type SalesReportsDTO struct {
	Q1  []DetailReportRow                `json:"data_for_q1"`
	Q2  []GroupReportRow                 `json:"data_for_q2"`
	Q3  []MonthReportRow                 `json:"data_for_q3"`
	Q4  []WeekdayReportRow               `json:"data_for_q4"`
	Q5  []DayOfMonthReportRow            `json:"data_for_q5"`
	Q6  []HourReportRow                  `json:"data_for_q6"`
	Q7  []GroupProbabilityReportRow      `json:"data_for_q7"`
	Q8  []MonthGroupProbabilityReportRow `json:"data_for_q8"`
	Q9  []OrderLineReportRow             `json:"data_for_q9"`
	Q10 []OrderLineReportRow             `json:"data_for_q10"`
	Q11 []OrderCustomerReportRow         `json:"data_for_q11"`
	Q12 []CustomerSpendingReportRow      `json:"data_for_q12"`
}
