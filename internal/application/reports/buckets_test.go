package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEtiquetasDeCubeta(t *testing.T) {
	assert.Equal(t, "03", monthLabel(3))
	assert.Equal(t, "12", monthLabel(12))
	assert.Equal(t, "Tháng 03", monthFullLabel(3))
	assert.Equal(t, "Ngày 05", dayLabel(5))
	assert.Equal(t, "Ngày 31", dayLabel(31))
	assert.Equal(t, "14:00-14:59", hourLabel(14))
	assert.Equal(t, "08:00-08:59", hourLabel(8))
	assert.Equal(t, "[BOT] Bột", groupLabel("BOT", "Bột"))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Chủ Nhật", weekdayName(time.Sunday))
	assert.Equal(t, "Thứ Hai", weekdayName(time.Monday))
	assert.Equal(t, "Thứ Ba", weekdayName(time.Tuesday))
	assert.Equal(t, "Thứ Bảy", weekdayName(time.Saturday))
}

func TestSafeAvg(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(safeAvg(decimal.NewFromInt(100), 0)))
	assert.True(t, decimal.NewFromInt(50).Equal(safeAvg(decimal.NewFromInt(100), 2)))
}

func TestPercentage(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(percentage(3, 0)))
	assert.True(t, decimal.NewFromInt(50).Equal(percentage(1, 2)))
	assert.True(t, hundred.Equal(percentage(4, 4)))
}

func TestDateBucketDiasDistintos(t *testing.T) {
	b := newDateBucket()
	d1 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	b.add(d1, 2, decimal.NewFromInt(100))
	b.add(d1, 3, decimal.NewFromInt(200))
	b.add(d2, 1, decimal.NewFromInt(50))

	// La misma fecha añadida dos veces cuenta como un solo día.
	assert.Equal(t, 2, b.distinctDays())
	assert.Equal(t, int64(6), b.qty)
	assert.True(t, decimal.NewFromInt(350).Equal(b.revenue))
}
