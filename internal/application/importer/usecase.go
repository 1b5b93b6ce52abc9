// Package importer implementa la carga del CSV de ventas al modelo relacional.
//
// El CSV llega con cabeceras en vietnamita (export de Google Sheets). Cada
// fila se aplica en orden: get-or-create de cliente, grupo, producto y pedido,
// y acumulación de la cantidad en la línea (pedido, producto). Cada upsert se
// confirma de forma independiente: un fallo en la fila N deja las filas
// 1..N-1 persistidas (no hay transacción que abarque varias filas).
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Cabeceras exactas del CSV. El orden de columnas no importa; los nombres sí.
const (
	colCustomerCode = "Mã khách hàng"
	colCustomerName = "Tên khách hàng"
	colSegmentCode  = "Mã PKKH"
	colGroupCode    = "Mã nhóm hàng"
	colGroupName    = "Tên nhóm hàng"
	colProductCode  = "Mã mặt hàng"
	colProductName  = "Tên mặt hàng"
	colUnitPrice    = "Đơn giá"
	colOrderCode    = "Mã đơn hàng"
	colOrderTime    = "Thời gian tạo đơn"
	colQuantity     = "SL"
)

// orderTimeLayout formato del timestamp del pedido, precisión de segundos.
const orderTimeLayout = "2006-01-02 15:04:05"

// ImportUseCase orquesta la importación del CSV contra los puertos de
// persistencia del modelo estrella.
type ImportUseCase struct {
	customers repository.CustomerRepository
	groups    repository.ProductGroupRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	details   repository.OrderDetailRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	customers repository.CustomerRepository,
	groups repository.ProductGroupRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	details repository.OrderDetailRepository,
) *ImportUseCase {
	return &ImportUseCase{
		customers: customers,
		groups:    groups,
		products:  products,
		orders:    orders,
		details:   details,
	}
}

// Import abre el CSV en csvPath y aplica todas sus filas en orden de archivo.
// Devuelve el número de filas procesadas. Si la ruta no existe, el error
// envuelve domain.ErrCSVNotFound para que el handler lo distinga del resto.
func (uc *ImportUseCase) Import(ctx context.Context, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrCSVNotFound, csvPath)
		}
		return 0, fmt.Errorf("abrir CSV %s: %w", csvPath, err)
	}
	defer f.Close()

	return uc.importAll(ctx, f)
}

// importAll lee cabecera y filas del reader y las aplica una a una.
func (uc *ImportUseCase) importAll(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("leer cabecera del CSV: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return 0, err
	}

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// La línea 1 es la cabecera: la primera fila de datos es la línea 2.
		line := rows + 2
		if err != nil {
			return rows, fmt.Errorf("leer línea %d del CSV: %w", line, err)
		}
		if err := uc.importRow(ctx, cols, record); err != nil {
			return rows, fmt.Errorf("línea %d: %w", line, err)
		}
		rows++
	}
	return rows, nil
}

// importRow aplica una fila: cuatro get-or-create encadenados y la
// acumulación final de cantidad.
func (uc *ImportUseCase) importRow(ctx context.Context, cols columnIndex, record []string) error {
	var name *string
	if v := cols.value(record, colCustomerName); v != "" {
		name = &v
	}
	customerID, err := uc.customers.FindOrCreate(ctx, &entity.Customer{
		ID:          uuid.New().String(),
		Code:        cols.value(record, colCustomerCode),
		Name:        name,
		SegmentCode: cols.value(record, colSegmentCode),
	})
	if err != nil {
		return err
	}

	groupID, err := uc.groups.FindOrCreate(ctx, &entity.ProductGroup{
		ID:   uuid.New().String(),
		Code: cols.value(record, colGroupCode),
		Name: cols.value(record, colGroupName),
	})
	if err != nil {
		return err
	}

	// Đơn giá inválido o ausente degrada a 0; la fila no falla por el precio.
	unitPrice, _ := strconv.ParseInt(strings.TrimSpace(cols.value(record, colUnitPrice)), 10, 64)

	productID, err := uc.products.FindOrCreate(ctx, &entity.Product{
		ID:        uuid.New().String(),
		Code:      cols.value(record, colProductCode),
		Name:      cols.value(record, colProductName),
		GroupID:   groupID,
		UnitPrice: unitPrice,
	})
	if err != nil {
		return err
	}

	rawTime := cols.value(record, colOrderTime)
	orderTime, err := time.Parse(orderTimeLayout, rawTime)
	if err != nil {
		// Timestamp malformado aborta la importación; no hay recuperación por fila.
		return fmt.Errorf("%w: %q no cumple el formato %s", domain.ErrMalformedRow, rawTime, orderTimeLayout)
	}

	orderID, err := uc.orders.FindOrCreate(ctx, &entity.Order{
		ID:         uuid.New().String(),
		Code:       cols.value(record, colOrderCode),
		CustomerID: customerID,
		OrderTime:  orderTime,
	})
	if err != nil {
		return err
	}

	rawQty := strings.TrimSpace(cols.value(record, colQuantity))
	quantity, err := strconv.ParseInt(rawQty, 10, 64)
	if err != nil {
		return fmt.Errorf("cantidad inválida %q: %w", rawQty, err)
	}

	return uc.details.Accumulate(ctx, orderID, productID, quantity)
}

// columnIndex mapea nombre de columna → posición en el registro.
type columnIndex map[string]int

// indexColumns valida la cabecera. Todas las columnas son obligatorias salvo
// Đơn giá: si falta, el precio degrada a 0 (mismo trato que un valor no
// numérico).
func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	required := []string{
		colCustomerCode, colCustomerName, colSegmentCode,
		colGroupCode, colGroupName,
		colProductCode, colProductName,
		colOrderCode, colOrderTime, colQuantity,
	}
	for _, c := range required {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("columna %q ausente en el CSV", c)
		}
	}
	return idx, nil
}

func (c columnIndex) value(record []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
