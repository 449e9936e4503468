package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DraftLine es una línea editable de una factura de compra antes de guardarla.
// Las líneas no se fusionan por producto: cada entrega puede traer su propio costo.
type DraftLine struct {
	ProductName   string
	Barcode       string
	Category      string
	Quantity      int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}

// IsValid indica si la línea entra en la factura al guardar (producto y cantidad > 0).
func (l DraftLine) IsValid() bool {
	return strings.TrimSpace(l.ProductName) != "" && l.Quantity > 0
}

// LineItem convierte la línea en una línea de factura de compra.
func (l DraftLine) LineItem() LineItem {
	name := strings.TrimSpace(l.ProductName)
	return LineItem{
		ProductRef:  name,
		Name:        name,
		Barcode:     strings.TrimSpace(l.Barcode),
		Quantity:    l.Quantity,
		UnitPrice:   l.PurchasePrice,
		ResalePrice: l.SalePrice,
		Category:    l.Category,
	}
}
