package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/importer"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC  *importer.ImportUseCase
	ReportsUC *reports.ReportsUseCase
	PDFExport *reports.PDFExportUseCase
	CSVPath   string // ruta del CSV de ventas a importar
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Importación del CSV (disparador sin parámetros)
	importHandler := NewImportHandler(deps.ImportUC, deps.CSVPath)
	api.Post("/import", importHandler.Import)

	// Reportes del dashboard
	reportHandler := NewReportHandler(deps.ReportsUC, deps.PDFExport)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/", reportHandler.GetReports)
	reportsGroup.Get("/export/pdf", reportHandler.ExportPDF)
}
