package dto

import "github.com/shopspring/decimal"

// ScanRequest body para POST /api/sales/cart/scan.
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

// AddCartItemRequest body para POST /api/sales/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateCartItemRequest body para PUT /api/sales/cart/items/:ref. Cantidad 0 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// LineItemResponse línea de carrito o de factura con su total.
type LineItemResponse struct {
	ProductRef  string           `json:"product_ref"`
	Name        string           `json:"name"`
	Barcode     string           `json:"barcode,omitempty"`
	Category    string           `json:"category,omitempty"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	ResalePrice *decimal.Decimal `json:"resale_price,omitempty"` // solo compras
	LineTotal   decimal.Decimal  `json:"line_total"`
}

// CartResponse estado del carrito abierto.
type CartResponse struct {
	Status    string             `json:"status"` // empty | building
	Cashier   string             `json:"cashier"`
	Items     []LineItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Total     decimal.Decimal    `json:"total"`
}
