package usecase

import (
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InvoiceUseCase consulta de facturas cerradas (solo lectura).
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List lista las facturas del tipo, la más reciente primero.
func (uc *InvoiceUseCase) List(kind entity.InvoiceKind) (*dto.ListResponse[dto.InvoiceResponse], error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *ToInvoiceResponse(inv))
	}
	out := dto.NewListResponse(items)
	return &out, nil
}

// GetByID obtiene una factura con su detalle.
func (uc *InvoiceUseCase) GetByID(kind entity.InvoiceKind, id string) (*dto.InvoiceResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return ToInvoiceResponse(*inv), nil
}

// ToInvoiceResponse convierte una factura en su DTO con totales por línea.
func ToInvoiceResponse(inv entity.Invoice) *dto.InvoiceResponse {
	items := inv.Items()
	summary := pricing.Summarize(items)
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		Kind:        string(inv.Kind),
		Number:      inv.Number,
		Date:        inv.Date,
		Time:        inv.Time,
		Counterpart: inv.Counterpart,
		Total:       inv.Total,
		LineCount:   len(items),
		Items:       make([]dto.LineItemResponse, 0, len(items)),
	}
	for i, it := range items {
		resp.Items = append(resp.Items, ToLineItemResponse(it, summary.Lines[i]))
	}
	return resp
}

// ToLineItemResponse convierte una línea con su total ya calculado.
func ToLineItemResponse(it entity.LineItem, lineTotal decimal.Decimal) dto.LineItemResponse {
	resp := dto.LineItemResponse{
		ProductRef: it.ProductRef,
		Name:       it.Name,
		Barcode:    it.Barcode,
		Category:   it.Category,
		Quantity:   it.Quantity,
		UnitPrice:  it.UnitPrice,
		LineTotal:  lineTotal,
	}
	if !it.ResalePrice.IsZero() {
		resale := it.ResalePrice
		resp.ResalePrice = &resale
	}
	return resp
}
