package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distingue facturas de venta y de compra.
type InvoiceKind string

const (
	InvoiceKindSale     InvoiceKind = "sale"
	InvoiceKindPurchase InvoiceKind = "purchase"
)

// Valid indica si el tipo es conocido.
func (k InvoiceKind) Valid() bool {
	return k == InvoiceKindSale || k == InvoiceKindPurchase
}

// Formatos de fecha y hora de la factura.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Invoice es el registro inmutable de una venta o compra cerrada.
// Las líneas se copian al construirla y solo se exponen como copia.
type Invoice struct {
	ID          string
	Kind        InvoiceKind
	Number      string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Total       decimal.Decimal
	Counterpart string // cajero (venta) o proveedor (compra)
	CreatedAt   time.Time

	items []LineItem
}

// NewInvoice construye la factura congelando una copia de las líneas.
func NewInvoice(id string, kind InvoiceKind, number, date, clock string, items []LineItem, total decimal.Decimal, counterpart string, createdAt time.Time) Invoice {
	frozen := make([]LineItem, len(items))
	copy(frozen, items)
	return Invoice{
		ID:          id,
		Kind:        kind,
		Number:      number,
		Date:        date,
		Time:        clock,
		Total:       total,
		Counterpart: counterpart,
		CreatedAt:   createdAt,
		items:       frozen,
	}
}

// Items devuelve una copia de las líneas de la factura.
func (inv Invoice) Items() []LineItem {
	out := make([]LineItem, len(inv.items))
	copy(out, inv.items)
	return out
}

// ItemCount número de líneas de la factura.
func (inv Invoice) ItemCount() int {
	return len(inv.items)
}
