package entity

// Customer cliente identificado por su código externo (Mã khách hàng).
// Se crea la primera vez que aparece en el CSV y nunca se actualiza después.
type Customer struct {
	ID          string
	Code        string  // Mã khách hàng, único
	Name        *string // Tên khách hàng; NULL si viene vacío en el CSV
	SegmentCode string  // Mã PKKH (segmento del cliente)
}
