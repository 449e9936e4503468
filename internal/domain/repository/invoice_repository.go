package repository

import "github.com/jhoicas/puntoventa/internal/domain/entity"

// InvoiceRepository registro de facturas cerradas. Solo se agregan; nunca se modifican.
type InvoiceRepository interface {
	Append(invoice entity.Invoice) error
	GetByID(kind entity.InvoiceKind, id string) (*entity.Invoice, error)
	ExistsNumber(kind entity.InvoiceKind, number string) (bool, error)
	// ListByKind devuelve las facturas del tipo indicado, la más reciente primero.
	ListByKind(kind entity.InvoiceKind) ([]entity.Invoice, error)
}
