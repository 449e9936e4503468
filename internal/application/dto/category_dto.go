package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryColorResponse color resuelto para un nombre de categoría.
type CategoryColorResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PaletteResponse colores disponibles para categorías.
type PaletteResponse struct {
	Colors  []string `json:"colors"`
	Default string   `json:"default"`
}
