// Package pdf implementa la exportación en PDF del resumen del dashboard de
// ventas: totales por grupo de productos (Q2), por mes (Q3) y gasto por
// cliente (Q12), en una página A4 con tablas simples.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
)

// maxCustomerRows tope de filas de la tabla de clientes para que el resumen
// quepa en pocas páginas; la API sigue devolviendo el dataset completo.
const maxCustomerRows = 50

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReportPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReportPDF(
	_ context.Context,
	data *dto.SalesReportsDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Ventas por grupo de productos"))
	m.AddRows(groupHeaderRow())
	for _, r := range data.Q2 {
		m.AddRows(row.New(5).Add(
			text.NewCol(2, r.GroupCode),
			text.NewCol(5, r.GroupName),
			text.NewCol(2, strconv.FormatInt(r.Quantity, 10), props.Text{Align: align.Right}),
			text.NewCol(3, r.Revenue.String(), props.Text{Align: align.Right}),
		))
	}

	m.AddRows(sectionRow("Ventas por mes"))
	m.AddRows(monthHeaderRow())
	for _, r := range data.Q3 {
		m.AddRows(row.New(5).Add(
			text.NewCol(3, r.Month),
			text.NewCol(4, strconv.FormatInt(r.Quantity, 10), props.Text{Align: align.Right}),
			text.NewCol(5, r.Revenue.String(), props.Text{Align: align.Right}),
		))
	}

	m.AddRows(sectionRow("Gasto por cliente"))
	m.AddRows(customerHeaderRow())
	customers := data.Q12
	if len(customers) > maxCustomerRows {
		customers = customers[:maxCustomerRows]
	}
	for _, r := range customers {
		m.AddRows(row.New(5).Add(
			text.NewCol(6, r.CustomerCode),
			text.NewCol(6, r.Revenue.String(), props.Text{Align: align.Right}),
		))
	}
	if len(data.Q12) > maxCustomerRows {
		m.AddRows(row.New(5).Add(
			text.NewCol(12, fmt.Sprintf("… y %d clientes más", len(data.Q12)-maxCustomerRows), props.Text{
				Color: colorGray, Style: fontstyle.Italic,
			}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow cabecera con el título y la fecha de generación.
func titleRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Dashboard de Ventas - Resumen", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 5, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

// sectionRow título de sección.
func sectionRow(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func groupHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(2, "Mã nhóm hàng", props.Text{Style: fontstyle.Bold}),
		text.NewCol(5, "Tên nhóm hàng", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "SL", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Thành tiền", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
}

func monthHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(3, "Tháng", props.Text{Style: fontstyle.Bold}),
		text.NewCol(4, "SL", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(5, "Thành tiền", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
}

func customerHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(6, "Mã khách hàng", props.Text{Style: fontstyle.Bold}),
		text.NewCol(6, "Thành tiền", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
}
