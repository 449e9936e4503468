package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" validate:"min=0"`
	Barcode  string          `json:"barcode" validate:"omitempty,max=64"`
	Category string          `json:"category" validate:"omitempty,max=100"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no cambian.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock" validate:"omitempty,min=0"`
	Barcode  *string          `json:"barcode" validate:"omitempty,max=64"`
	Category *string          `json:"category" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto, con el color de su categoría resuelto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Barcode       string          `json:"barcode,omitempty"`
	Category      string          `json:"category,omitempty"`
	CategoryColor string          `json:"category_color"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BarcodeResponse código de barras generado.
type BarcodeResponse struct {
	Barcode string `json:"barcode"`
}
