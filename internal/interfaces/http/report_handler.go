package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
)

// ReportHandler maneja los endpoints de reportes del dashboard.
type ReportHandler struct {
	uc        *reports.ReportsUseCase
	pdfExport *reports.PDFExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase, pdfExport *reports.PDFExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdfExport: pdfExport}
}

// GetReports godoc
// @Summary      Devuelve los doce datasets del dashboard de ventas
// @Description  Calcula Q1–Q12 sobre el estado actual del modelo. Cada dataset
//               es una lista ordenada de registros con las etiquetas de campo
//               que consumen las gráficas del front.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SalesReportsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) GetReports(c *fiber.Ctx) error {
	data, err := h.uc.GetReports(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "REPORTS_FAILED", Message: err.Error(),
		})
	}
	return c.JSON(data)
}

// ExportPDF godoc
// @Summary      Exporta el resumen de ventas en PDF
// @Description  Genera un PDF con los totales por grupo, por mes y el gasto
//               por cliente, calculados sobre el estado actual del modelo.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfExport.Export(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "EXPORT_FAILED", Message: err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ventas.pdf"`)
	return c.Send(pdfBytes)
}
