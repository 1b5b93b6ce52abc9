package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/importer"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// ImportHandler maneja la carga del CSV de ventas.
type ImportHandler struct {
	uc      *importer.ImportUseCase
	csvPath string
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, csvPath string) *ImportHandler {
	return &ImportHandler{uc: uc, csvPath: csvPath}
}

// Import godoc
// @Summary      Importa el CSV de ventas al modelo relacional
// @Description  Lee el CSV configurado (CSV_PATH) y aplica todas sus filas en
//               orden: get-or-create de cliente, grupo, producto y pedido, y
//               acumulación de cantidades por línea (pedido, producto). Las
//               filas ya confirmadas permanecen aunque una fila posterior falle.
// @Tags         import
// @Produce      json
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse  "CSV_NOT_FOUND: la ruta configurada no existe"
// @Failure      500  {object}  dto.ErrorResponse  "IMPORT_FAILED: cualquier otro fallo, con la causa"
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	rows, err := h.uc.Import(c.Context(), h.csvPath)
	if err != nil {
		if errors.Is(err, domain.ErrCSVNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "CSV_NOT_FOUND", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "IMPORT_FAILED", Message: err.Error(),
		})
	}

	return c.JSON(dto.ImportResultDTO{
		Message: "Datos importados correctamente",
		Rows:    rows,
	})
}
