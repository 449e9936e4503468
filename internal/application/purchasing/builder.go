// Package purchasing contiene el borrador de facturas de compra y su caso de uso.
package purchasing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Campos editables de una línea, con los nombres del formulario.
const (
	FieldProductName   = "productName"
	FieldBarcode       = "barcode"
	FieldCategory      = "category"
	FieldQuantity      = "quantity"
	FieldPurchasePrice = "purchasePrice"
	FieldSalePrice     = "salePrice"
)

// Header cabecera de la factura de compra.
type Header struct {
	InvoiceNumber string
	Supplier      string
	Date          string
}

// Complete indica si número, proveedor y fecha tienen contenido.
func (h Header) Complete() bool {
	return strings.TrimSpace(h.InvoiceNumber) != "" &&
		strings.TrimSpace(h.Supplier) != "" &&
		strings.TrimSpace(h.Date) != ""
}

// Builder arma una factura de compra línea a línea. Siempre tiene al menos una línea.
// No es seguro para uso concurrente; se reutiliza después de Save.
type Builder struct {
	header   Header
	lines    []entity.DraftLine
	now      func() time.Time
	location *time.Location
}

// Option configura el borrador.
type Option func(*Builder)

// WithClock reemplaza el reloj usado al guardar.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithLocation zona horaria de la hora de la factura.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// NewBuilder crea un borrador con cabecera vacía y una línea vacía.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now, location: time.Local}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b
}

// SetHeader guarda la cabecera tal cual; los vacíos se detectan en Save.
func (b *Builder) SetHeader(number, supplier, date string) {
	b.header = Header{InvoiceNumber: number, Supplier: supplier, Date: date}
}

// Header cabecera actual.
func (b *Builder) Header() Header { return b.header }

// AddLine agrega una línea vacía al final y retorna su índice.
func (b *Builder) AddLine() int {
	b.lines = append(b.lines, entity.DraftLine{})
	return len(b.lines) - 1
}

// UpdateLine cambia un campo de la línea a partir del texto del formulario.
// Los números que no se pueden leer quedan en 0; los precios negativos o fuera de
// rango se rechazan con ErrInvalidInput.
func (b *Builder) UpdateLine(index int, field, value string) error {
	if index < 0 || index >= len(b.lines) {
		return fmt.Errorf("línea %d: %w", index, domain.ErrInvalidInput)
	}
	line := b.lines[index]
	switch field {
	case FieldProductName:
		line.ProductName = value
	case FieldBarcode:
		line.Barcode = value
	case FieldCategory:
		line.Category = value
	case FieldQuantity:
		line.Quantity = parseQuantity(value)
	case FieldPurchasePrice, FieldSalePrice:
		price, err := parsePrice(value)
		if err != nil {
			return fmt.Errorf("%s %q: %w", field, value, err)
		}
		if field == FieldPurchasePrice {
			line.PurchasePrice = price
		} else {
			line.SalePrice = price
		}
	default:
		return fmt.Errorf("campo %q: %w", field, domain.ErrInvalidInput)
	}
	b.lines[index] = line
	return nil
}

// SetLine reemplaza la línea completa.
func (b *Builder) SetLine(index int, line entity.DraftLine) error {
	if index < 0 || index >= len(b.lines) {
		return fmt.Errorf("línea %d: %w", index, domain.ErrInvalidInput)
	}
	if err := pricing.CheckAmount(line.PurchasePrice); err != nil {
		return fmt.Errorf("precio de compra: %w", err)
	}
	if err := pricing.CheckAmount(line.SalePrice); err != nil {
		return fmt.Errorf("precio de venta: %w", err)
	}
	if line.Quantity < 0 {
		line.Quantity = 0
	}
	b.lines[index] = line
	return nil
}

// RemoveLine quita la línea. Si es la única, la deja vacía en lugar de quitarla.
func (b *Builder) RemoveLine(index int) error {
	if index < 0 || index >= len(b.lines) {
		return fmt.Errorf("línea %d: %w", index, domain.ErrInvalidInput)
	}
	if len(b.lines) == 1 {
		b.lines[0] = entity.DraftLine{}
		return nil
	}
	b.lines = append(b.lines[:index], b.lines[index+1:]...)
	return nil
}

// Lines copia de las líneas en orden.
func (b *Builder) Lines() []entity.DraftLine {
	out := make([]entity.DraftLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total total acumulado de las líneas válidas.
func (b *Builder) Total() decimal.Decimal {
	return pricing.SetTotal(b.validItems())
}

// Save valida y cierra la factura de compra con las líneas válidas y deja el borrador vacío.
// Ante error el borrador no cambia.
func (b *Builder) Save() (entity.Invoice, error) {
	if !b.header.Complete() {
		return entity.Invoice{}, domain.ErrMissingHeader
	}
	items := b.validItems()
	if len(items) == 0 {
		return entity.Invoice{}, domain.ErrNoValidLines
	}
	id, err := uuid.NewV7()
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("generar id de factura: %w", err)
	}

	savedAt := b.now()
	invoice := entity.NewInvoice(
		id.String(),
		entity.InvoiceKindPurchase,
		strings.TrimSpace(b.header.InvoiceNumber),
		strings.TrimSpace(b.header.Date),
		savedAt.In(b.location).Format(entity.TimeLayout),
		items,
		pricing.SetTotal(items),
		strings.TrimSpace(b.header.Supplier),
		savedAt,
	)
	b.reset()
	return invoice, nil
}

func (b *Builder) validItems() []entity.LineItem {
	items := make([]entity.LineItem, 0, len(b.lines))
	for _, l := range b.lines {
		if l.IsValid() {
			items = append(items, l.LineItem())
		}
	}
	return items
}

func (b *Builder) reset() {
	b.header = Header{}
	b.lines = []entity.DraftLine{{}}
}

var (
	leadingInt     = regexp.MustCompile(`^[+-]?[0-9]+`)
	leadingDecimal = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)`)
)

// parseQuantity lee el entero al inicio del texto, como el formulario: "3.7" y "3abc" son 3,
// "1e3" es 1. Lo ilegible, lo negativo o lo que no cabe en un int queda en 0.
func parseQuantity(value string) int {
	digits := leadingInt.FindString(strings.TrimSpace(value))
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parsePrice lee el número decimal al inicio del texto, sin exponente ("2.5kg" es 2.5).
// Lo ilegible es 0; fuera de los límites de pricing.CheckAmount retorna ErrInvalidInput.
func parsePrice(value string) (decimal.Decimal, error) {
	prefix := leadingDecimal.FindString(strings.TrimSpace(value))
	if prefix == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(prefix, "."))
	if err != nil {
		return decimal.Zero, nil
	}
	if err := pricing.CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
