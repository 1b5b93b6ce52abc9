package dto

// ImportResultDTO respuesta de POST /api/import.
type ImportResultDTO struct {
	Message string `json:"message"`
	Rows    int    `json:"rows"` // filas del CSV procesadas
}
