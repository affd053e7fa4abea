package entity

import "time"

// Category representa una categoría de productos.
// El nombre es único sin distinguir mayúsculas/minúsculas (3–50 caracteres).
type Category struct {
	ID          string
	Name        string
	Description string // opcional, máx. 200 caracteres
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
