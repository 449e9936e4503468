package dto

import "github.com/shopspring/decimal"

// InvoiceResponse factura de venta o compra con detalle.
type InvoiceResponse struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Number      string             `json:"invoice_number"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Counterpart string             `json:"counterpart"` // cajero o proveedor
	Total       decimal.Decimal    `json:"total"`
	LineCount   int                `json:"line_count"`
	Items       []LineItemResponse `json:"items"`
}
