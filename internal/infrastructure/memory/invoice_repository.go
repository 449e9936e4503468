package memory

import (
	"sync"

	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo registro de facturas en memoria, solo de agregado.
// Las facturas son valores inmutables, así que se guardan y devuelven por valor.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices []entity.Invoice
}

// NewInvoiceRepository construye el registro vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{}
}

// Append agrega una factura. El ID debe ser único.
func (r *InvoiceRepo) Append(invoice entity.Invoice) error {
	if invoice.ID == "" || !invoice.Kind.Valid() {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.ID == invoice.ID {
			return domain.ErrDuplicate
		}
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

// GetByID obtiene una factura del tipo indicado.
func (r *InvoiceRepo) GetByID(kind entity.InvoiceKind, id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.Kind == kind && inv.ID == id {
			found := inv
			return &found, nil
		}
	}
	return nil, nil
}

// ExistsNumber indica si ya hay una factura del tipo con ese número.
func (r *InvoiceRepo) ExistsNumber(kind entity.InvoiceKind, number string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.Kind == kind && inv.Number == number {
			return true, nil
		}
	}
	return false, nil
}

// ListByKind devuelve las facturas del tipo, la más reciente primero.
func (r *InvoiceRepo) ListByKind(kind entity.InvoiceKind) ([]entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]entity.Invoice, 0)
	for i := len(r.invoices) - 1; i >= 0; i-- {
		if r.invoices[i].Kind == kind {
			list = append(list, r.invoices[i])
		}
	}
	return list, nil
}
