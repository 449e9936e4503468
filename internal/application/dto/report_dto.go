package dto

import "github.com/shopspring/decimal"

// ReportRequest filtros de GET /api/reports/:kind. Fechas YYYY-MM-DD inclusivas, opcionales.
type ReportRequest struct {
	Kind string
	From string
	To   string
}

// SalesDayDTO ventas de un día.
type SalesDayDTO struct {
	Date     string          `json:"date"`
	Invoices int             `json:"invoices"`
	Total    decimal.Decimal `json:"total"`
}

// PurchasesDayDTO compras de un día.
type PurchasesDayDTO struct {
	Date     string          `json:"date"`
	Invoices int             `json:"invoices"`
	Total    decimal.Decimal `json:"total"`
	Items    int             `json:"items"` // unidades compradas
}

// ProfitDayDTO ventas - compras de un día.
type ProfitDayDTO struct {
	Date      string          `json:"date"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Profit    decimal.Decimal `json:"profit"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PurchasedItemDTO producto comprado.
type PurchasedItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// SoldItemDTO producto vendido con el stock restante en catálogo.
type SoldItemDTO struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Remaining int    `json:"remaining"`
}

// ReportResponse respuesta de reportes. Solo se llena la sección del tipo pedido.
type ReportResponse struct {
	Kind           string             `json:"kind"`
	From           string             `json:"from,omitempty"`
	To             string             `json:"to,omitempty"`
	Sales          []SalesDayDTO      `json:"sales,omitempty"`
	Purchases      []PurchasesDayDTO  `json:"purchases,omitempty"`
	Profits        []ProfitDayDTO     `json:"profits,omitempty"`
	TopSelling     []TopProductDTO    `json:"top_selling,omitempty"`
	PurchasedItems []PurchasedItemDTO `json:"purchased_items,omitempty"`
	SoldItems      []SoldItemDTO      `json:"sold_items,omitempty"`
	Total          decimal.Decimal    `json:"total"`
}
