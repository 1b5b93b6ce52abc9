package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/importer"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Fakes mínimos de persistencia para montar la app completa con fiber.

type memCatalog struct {
	customers map[string]string
	groups    map[string]string
	products  map[string]string
	orders    map[string]string
	details   map[[2]string]int64
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		customers: map[string]string{},
		groups:    map[string]string{},
		products:  map[string]string{},
		orders:    map[string]string{},
		details:   map[[2]string]int64{},
	}
}

func findOrCreate(m map[string]string, code, id string) string {
	if existing, ok := m[code]; ok {
		return existing
	}
	m[code] = id
	return id
}

type memCustomerRepo struct{ c *memCatalog }

func (r memCustomerRepo) FindOrCreate(_ context.Context, e *entity.Customer) (string, error) {
	return findOrCreate(r.c.customers, e.Code, e.ID), nil
}

type memGroupRepo struct{ c *memCatalog }

func (r memGroupRepo) FindOrCreate(_ context.Context, e *entity.ProductGroup) (string, error) {
	return findOrCreate(r.c.groups, e.Code, e.ID), nil
}

type memProductRepo struct{ c *memCatalog }

func (r memProductRepo) FindOrCreate(_ context.Context, e *entity.Product) (string, error) {
	return findOrCreate(r.c.products, e.Code, e.ID), nil
}

type memOrderRepo struct{ c *memCatalog }

func (r memOrderRepo) FindOrCreate(_ context.Context, e *entity.Order) (string, error) {
	return findOrCreate(r.c.orders, e.Code, e.ID), nil
}

type memDetailRepo struct{ c *memCatalog }

func (r memDetailRepo) Accumulate(_ context.Context, orderID, productID string, qty int64) error {
	r.c.details[[2]string{orderID, productID}] += qty
	return nil
}

type stubReportRepo struct {
	groups []repository.GroupSalesRow
}

func (s stubReportRepo) DetailRows(context.Context) ([]repository.DetailRow, error) { return nil, nil }
func (s stubReportRepo) GroupSales(context.Context) ([]repository.GroupSalesRow, error) {
	return s.groups, nil
}
func (s stubReportRepo) MonthlySales(context.Context) ([]repository.MonthlySalesRow, error) {
	return nil, nil
}
func (s stubReportRepo) DailySales(context.Context) ([]repository.DailySalesRow, error) {
	return nil, nil
}
func (s stubReportRepo) HourlySales(context.Context) ([]repository.HourlySalesRow, error) {
	return nil, nil
}
func (s stubReportRepo) OrderGroupSales(context.Context) ([]repository.OrderGroupSalesRow, error) {
	return nil, nil
}
func (s stubReportRepo) OrdersPerMonth(context.Context) ([]repository.MonthOrderCountRow, error) {
	return nil, nil
}
func (s stubReportRepo) OrderCustomers(context.Context) ([]repository.OrderCustomerRow, error) {
	return nil, nil
}
func (s stubReportRepo) CustomerSpending(context.Context) ([]repository.CustomerSpendingRow, error) {
	return nil, nil
}

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateSalesReportPDF(context.Context, *dto.SalesReportsDTO) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestApp(t *testing.T, csvPath string, reportRepo repository.ReportRepository) *fiber.App {
	t.Helper()
	cat := newMemCatalog()
	importUC := importer.NewImportUseCase(
		memCustomerRepo{cat}, memGroupRepo{cat}, memProductRepo{cat},
		memOrderRepo{cat}, memDetailRepo{cat},
	)
	reportsUC := reports.NewReportsUseCase(reportRepo)
	pdfUC := reports.NewPDFExportUseCase(reportsUC, stubPDFGenerator{})

	app := fiber.New()
	Router(app, RouterDeps{
		ImportUC:  importUC,
		ReportsUC: reportsUC,
		PDFExport: pdfUC,
		CSVPath:   csvPath,
	})
	return app
}

func TestImportEndpoint_OK(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "ventas.csv")
	content := "Thời gian tạo đơn,Mã đơn hàng,Mã khách hàng,Tên khách hàng,Mã PKKH,Mã nhóm hàng,Tên nhóm hàng,Mã mặt hàng,Tên mặt hàng,Đơn giá,SL\n" +
		"2024-03-05 14:21:09,ORD0001,KH0001,Nguyễn Văn An,PK01,BOT,Bột,SP001,Bột cần tây,120000,2\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	app := newTestApp(t, csvPath, stubReportRepo{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/import", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result dto.ImportResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Datos importados correctamente", result.Message)
	assert.Equal(t, 1, result.Rows)
}

func TestImportEndpoint_CSVInexistente(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "no-existe.csv"), stubReportRepo{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/import", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "CSV_NOT_FOUND", errResp.Code)
}

func TestReportsEndpoint(t *testing.T) {
	repo := stubReportRepo{groups: []repository.GroupSalesRow{
		{GroupCode: "BOT", GroupName: "Bột", Quantity: 6, Revenue: decimal.NewFromInt(680000)},
	}}
	app := newTestApp(t, "", repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Los doce datasets están presentes; los vacíos serializan como [].
	for _, key := range []string{
		"data_for_q1", "data_for_q2", "data_for_q3", "data_for_q4",
		"data_for_q5", "data_for_q6", "data_for_q7", "data_for_q8",
		"data_for_q9", "data_for_q10", "data_for_q11", "data_for_q12",
	} {
		require.Contains(t, body, key)
		assert.NotEqual(t, "null", string(body[key]), key)
	}

	var q2 []map[string]any
	require.NoError(t, json.Unmarshal(body["data_for_q2"], &q2))
	require.Len(t, q2, 1)
	assert.Equal(t, "BOT", q2[0]["Mã nhóm hàng"])
	assert.Equal(t, float64(6), q2[0]["SL"])
}

func TestExportPDFEndpoint(t *testing.T) {
	app := newTestApp(t, "", stubReportRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/export/pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "resumen-ventas.pdf")

	pdfBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(pdfBytes))
}
