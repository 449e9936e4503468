package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la tienda.
// Category es el nombre de la categoría (referencia desnormalizada, sin integridad referencial).
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta
	Stock     int
	Barcode   string // opcional; único dentro del catálogo
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
