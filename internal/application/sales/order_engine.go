// Package sales contiene el motor del carrito de ventas y el caso de uso de la caja.
package sales

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/cart"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Status estado del carrito.
type Status string

// Estados del carrito: empty → building → (empty | committed). committed es terminal.
const (
	StatusEmpty     Status = "empty"
	StatusBuilding  Status = "building"
	StatusCommitted Status = "committed"
)

// Catalog consulta de solo lectura del catálogo. (nil, nil) si no hay coincidencia.
type Catalog interface {
	GetByBarcode(barcode string) (*entity.Product, error)
}

// OrderEngine lleva una venta desde el primer escaneo hasta la factura cerrada.
// No es seguro para uso concurrente y no se reutiliza tras Checkout.
type OrderEngine struct {
	catalog  Catalog
	cashier  string
	items    *cart.LineItemSet
	status   Status
	now      func() time.Time
	location *time.Location
}

// Option configura el motor.
type Option func(*OrderEngine)

// WithClock reemplaza el reloj del cierre de venta.
func WithClock(now func() time.Time) Option {
	return func(e *OrderEngine) { e.now = now }
}

// WithLocation zona horaria para la fecha y hora de la factura.
func WithLocation(loc *time.Location) Option {
	return func(e *OrderEngine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// NewOrderEngine construye un carrito vacío para el cajero indicado.
func NewOrderEngine(catalog Catalog, cashier string, opts ...Option) *OrderEngine {
	e := &OrderEngine{
		catalog:  catalog,
		cashier:  cashier,
		items:    cart.NewLineItemSet(),
		status:   StatusEmpty,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScanBarcode busca el producto por código de barras exacto y lo suma al carrito.
// Sin coincidencia retorna ErrProductNotFound y el carrito no cambia.
func (e *OrderEngine) ScanBarcode(code string) (entity.Product, error) {
	if e.status == StatusCommitted {
		return entity.Product{}, domain.ErrOrderCommitted
	}
	product, err := e.catalog.GetByBarcode(code)
	if err != nil {
		return entity.Product{}, fmt.Errorf("buscar código de barras: %w", err)
	}
	if product == nil {
		return entity.Product{}, domain.ErrProductNotFound
	}
	if err := e.AddByProduct(*product); err != nil {
		return entity.Product{}, err
	}
	return *product, nil
}

// AddByProduct suma una unidad del producto (alta directa desde el catálogo).
func (e *OrderEngine) AddByProduct(product entity.Product) error {
	if e.status == StatusCommitted {
		return domain.ErrOrderCommitted
	}
	if err := e.items.AddOrMerge(product, 1); err != nil {
		return err
	}
	e.syncStatus()
	return nil
}

// UpdateLineQuantity fija la cantidad de una línea; 0 o menos la elimina.
func (e *OrderEngine) UpdateLineQuantity(productRef string, quantity int) error {
	if e.status == StatusCommitted {
		return domain.ErrOrderCommitted
	}
	e.items.SetQuantity(productRef, quantity)
	e.syncStatus()
	return nil
}

// RemoveLine quita la línea del carrito si existe.
func (e *OrderEngine) RemoveLine(productRef string) error {
	if e.status == StatusCommitted {
		return domain.ErrOrderCommitted
	}
	e.items.Remove(productRef)
	e.syncStatus()
	return nil
}

// Checkout cierra la venta: calcula el total, genera el número INV-<YYYYMMDD>-<últimos 4 dígitos
// de epoch en ms>, congela las líneas en la factura, vacía el carrito y pasa a committed.
func (e *OrderEngine) Checkout() (entity.Invoice, error) {
	if e.status == StatusCommitted {
		return entity.Invoice{}, domain.ErrOrderCommitted
	}
	if e.items.IsEmpty() {
		return entity.Invoice{}, domain.ErrEmptyCart
	}
	id, err := uuid.NewV7()
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("generar id de factura: %w", err)
	}

	committedAt := e.now()
	local := committedAt.In(e.location)
	entries := e.items.Entries()
	invoice := entity.NewInvoice(
		id.String(),
		entity.InvoiceKindSale,
		InvoiceNumber(committedAt),
		local.Format(entity.DateLayout),
		local.Format(entity.TimeLayout),
		entries,
		pricing.SetTotal(entries),
		e.cashier,
		committedAt,
	)

	e.items.Clear()
	e.status = StatusCommitted
	return invoice, nil
}

// InvoiceNumber formato INV-<YYYYMMDD UTC>-<últimos 4 dígitos de epoch en milisegundos>.
func InvoiceNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 4 {
		ms = ms[len(ms)-4:]
	}
	return fmt.Sprintf("INV-%s-%s", t.UTC().Format("20060102"), ms)
}

// Entries líneas actuales en orden de inserción.
func (e *OrderEngine) Entries() []entity.LineItem { return e.items.Entries() }

// Total total actual del carrito.
func (e *OrderEngine) Total() decimal.Decimal { return pricing.SetTotal(e.items.Entries()) }

// Summary totales por línea y del carrito.
func (e *OrderEngine) Summary() pricing.Summary { return pricing.Summarize(e.items.Entries()) }

func (e *OrderEngine) Status() Status  { return e.status }
func (e *OrderEngine) Cashier() string { return e.cashier }

func (e *OrderEngine) syncStatus() {
	if e.items.IsEmpty() {
		e.status = StatusEmpty
		return
	}
	e.status = StatusBuilding
}
