package entity

import "time"

// Color por defecto cuando la categoría no existe o la referencia quedó obsoleta.
const DefaultCategoryColor = "#6B7280"

// Category representa una categoría de productos. Los productos la referencian por nombre.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string // hex, ej: #3B82F6
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
