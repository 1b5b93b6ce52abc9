package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// weekdayNames nombres en vietnamita indexados por time.Weekday (domingo = 0).
var weekdayNames = [7]string{
	"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy",
}

// weekdayOrder orden de presentación de Q4: lunes → domingo.
var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func weekdayName(d time.Weekday) string { return weekdayNames[int(d)] }

// Etiquetas de cubeta del dashboard.
func monthLabel(m int) string     { return fmt.Sprintf("%02d", m) }           // Q3
func monthFullLabel(m int) string { return fmt.Sprintf("Tháng %02d", m) }     // Q8
func dayLabel(d int) string       { return fmt.Sprintf("Ngày %02d", d) }      // Q5
func hourLabel(h int) string      { return fmt.Sprintf("%02d:00-%02d:59", h, h) } // Q6

// groupLabel etiqueta compuesta "[código] nombre" de Q7/Q8.
func groupLabel(code, name string) string { return fmt.Sprintf("[%s] %s", code, name) }

// safeAvg divide value entre days. Sin días (cubeta sin datos) el promedio es
// 0 en lugar de fallar.
func safeAvg(value decimal.Decimal, days int) decimal.Decimal {
	if days == 0 {
		return decimal.Zero
	}
	return value.Div(decimal.NewFromInt(int64(days)))
}

// percentage devuelve part/total × 100, o 0 si total es 0.
func percentage(part, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total))
}

// dateBucket acumulador de una cubeta temporal: totales más el conjunto de
// fechas calendario distintas vistas (divisor de los promedios).
type dateBucket struct {
	revenue decimal.Decimal
	qty     int64
	days    map[string]struct{}
}

func newDateBucket() *dateBucket {
	return &dateBucket{days: make(map[string]struct{})}
}

func (b *dateBucket) add(date time.Time, qty int64, revenue decimal.Decimal) {
	b.revenue = b.revenue.Add(revenue)
	b.qty += qty
	b.days[date.Format("2006-01-02")] = struct{}{}
}

func (b *dateBucket) distinctDays() int { return len(b.days) }
