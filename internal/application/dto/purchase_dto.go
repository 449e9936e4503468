package dto

import "github.com/shopspring/decimal"

// PurchaseHeaderRequest body para PUT /api/purchases/draft/header.
// No se valida aquí: los campos vacíos se rechazan al guardar.
type PurchaseHeaderRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	Supplier      string `json:"supplier"`
	Date          string `json:"date"`
}

// PurchaseLineRequest línea completa del borrador.
type PurchaseLineRequest struct {
	ProductName   string          `json:"product_name" validate:"max=200"`
	Barcode       string          `json:"barcode" validate:"max=64"`
	Category      string          `json:"category" validate:"max=100"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// UpdatePurchaseLineRequest body para PUT /api/purchases/draft/lines/:index.
// Se envía un campo con su valor (como en el formulario) o la línea completa.
type UpdatePurchaseLineRequest struct {
	Field string               `json:"field" validate:"omitempty,oneof=productName barcode category quantity purchasePrice salePrice"`
	Value string               `json:"value"`
	Line  *PurchaseLineRequest `json:"line" validate:"omitempty"`
}

// PurchaseLineResponse línea del borrador.
type PurchaseLineResponse struct {
	Index         int             `json:"index"`
	ProductName   string          `json:"product_name"`
	Barcode       string          `json:"barcode"`
	Category      string          `json:"category"`
	CategoryColor string          `json:"category_color"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Valid         bool            `json:"valid"`
}

// PurchaseDraftResponse estado del borrador de factura de compra.
type PurchaseDraftResponse struct {
	InvoiceNumber string                 `json:"invoice_number"`
	Supplier      string                 `json:"supplier"`
	Date          string                 `json:"date"`
	Lines         []PurchaseLineResponse `json:"lines"`
	ValidLines    int                    `json:"valid_lines"`
	Total         decimal.Decimal        `json:"total"`
}
