package dto

// PageRequest paginación para listados (page basado en cero).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize aplica valores por defecto y topes a la paginación.
func (p *PageRequest) Normalize() {
	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Size > 100 {
		p.Size = 100
	}
	if p.Page < 0 {
		p.Page = 0
	}
}

// Offset devuelve el desplazamiento equivalente para la consulta.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
