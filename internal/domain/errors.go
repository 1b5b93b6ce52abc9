package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrCSVNotFound la ruta configurada del CSV de ventas no existe.
	// Se distingue del resto de fallos de importación de cara al cliente.
	ErrCSVNotFound = errors.New("archivo CSV no encontrado")

	// ErrMalformedRow una fila del CSV trae un timestamp de pedido que no
	// cumple el formato YYYY-MM-DD HH:MM:SS. Aborta el resto de la carga.
	ErrMalformedRow = errors.New("fila del CSV inválida")
)
