package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// ReportPDFGenerator puerto para la representación PDF del resumen de ventas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, reports *dto.SalesReportsDTO) ([]byte, error)
}

// PDFExportUseCase genera el PDF del resumen del dashboard (totales por
// grupo, por mes y gasto por cliente) a partir de los mismos doce datasets
// que sirve la API.
type PDFExportUseCase struct {
	reports   *ReportsUseCase
	generator ReportPDFGenerator
}

// NewPDFExportUseCase construye el caso de uso.
func NewPDFExportUseCase(reports *ReportsUseCase, generator ReportPDFGenerator) *PDFExportUseCase {
	return &PDFExportUseCase{reports: reports, generator: generator}
}

// Export calcula los reportes y los entrega al generador PDF.
func (uc *PDFExportUseCase) Export(ctx context.Context) ([]byte, error) {
	data, err := uc.reports.GetReports(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateSalesReportPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("exportar PDF: %w", err)
	}
	return pdf, nil
}
