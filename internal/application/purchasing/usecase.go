package purchasing

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
	"github.com/jhoicas/puntoventa/pkg/logger"
)

// ErrLineRequired el cambio de línea no trae ni campo ni línea completa.
var ErrLineRequired = errors.New("indique field/value o la línea completa")

// Config reloj y zona horaria del borrador.
type Config struct {
	Location *time.Location
	Clock    func() time.Time
}

// UseCase es la pantalla de compras: un único borrador compartido, protegido por mutex.
type UseCase struct {
	mu          sync.Mutex
	invoiceRepo repository.InvoiceRepository
	colors      usecase.CategoryColors
	log         *logger.Logger
	builder     *Builder
}

// NewUseCase construye el caso de uso con un borrador vacío.
func NewUseCase(invoiceRepo repository.InvoiceRepository, colors usecase.CategoryColors, cfg Config, log *logger.Logger) *UseCase {
	opts := []Option{WithLocation(cfg.Location)}
	if cfg.Clock != nil {
		opts = append(opts, WithClock(cfg.Clock))
	}
	return &UseCase{
		invoiceRepo: invoiceRepo,
		colors:      colors,
		log:         log.Component("purchasing"),
		builder:     NewBuilder(opts...),
	}
}

// Draft estado actual del borrador.
func (uc *UseCase) Draft() *dto.PurchaseDraftResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draftLocked()
}

// SetHeader reemplaza la cabecera.
func (uc *UseCase) SetHeader(in dto.PurchaseHeaderRequest) *dto.PurchaseDraftResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.builder.SetHeader(in.InvoiceNumber, in.Supplier, in.Date)
	return uc.draftLocked()
}

// AddLine agrega una línea vacía.
func (uc *UseCase) AddLine() *dto.PurchaseDraftResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.builder.AddLine()
	return uc.draftLocked()
}

// UpdateLine aplica un cambio de campo o reemplaza la línea completa.
func (uc *UseCase) UpdateLine(index int, in dto.UpdatePurchaseLineRequest) (*dto.PurchaseDraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	var err error
	switch {
	case in.Line != nil:
		err = uc.builder.SetLine(index, entity.DraftLine{
			ProductName:   in.Line.ProductName,
			Barcode:       in.Line.Barcode,
			Category:      in.Line.Category,
			Quantity:      in.Line.Quantity,
			PurchasePrice: in.Line.PurchasePrice,
			SalePrice:     in.Line.SalePrice,
		})
	case in.Field != "":
		err = uc.builder.UpdateLine(index, in.Field, in.Value)
	default:
		err = fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrLineRequired)
	}
	if err != nil {
		return nil, err
	}
	return uc.draftLocked(), nil
}

// RemoveLine quita la línea (o la vacía si es la única).
func (uc *UseCase) RemoveLine(index int) (*dto.PurchaseDraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.builder.RemoveLine(index); err != nil {
		return nil, err
	}
	return uc.draftLocked(), nil
}

// Save guarda la factura de compra. La fecha se guarda tal cual y el número no puede
// estar ya registrado; ante cualquier error el borrador queda intacto.
func (uc *UseCase) Save() (*dto.InvoiceResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	header := uc.builder.Header()
	if !header.Complete() {
		return nil, domain.ErrMissingHeader
	}
	exists, err := uc.invoiceRepo.ExistsNumber(entity.InvoiceKindPurchase, strings.TrimSpace(header.InvoiceNumber))
	if err != nil {
		return nil, fmt.Errorf("verificar número de factura: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("factura de compra %s: %w", header.InvoiceNumber, domain.ErrDuplicate)
	}

	invoice, err := uc.builder.Save()
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Append(invoice); err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", invoice.ID).
			Str("invoice_number", invoice.Number).
			Msg("no se pudo registrar la factura de compra")
		return nil, fmt.Errorf("registrar factura: %w", err)
	}
	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("invoice_number", invoice.Number).
		Str("supplier", invoice.Counterpart).
		Int("lines", invoice.ItemCount()).
		Str("total", invoice.Total.StringFixed(2)).
		Msg("compra registrada")
	return usecase.ToInvoiceResponse(invoice), nil
}

func (uc *UseCase) draftLocked() *dto.PurchaseDraftResponse {
	header := uc.builder.Header()
	lines := uc.builder.Lines()
	resp := &dto.PurchaseDraftResponse{
		InvoiceNumber: header.InvoiceNumber,
		Supplier:      header.Supplier,
		Date:          header.Date,
		Lines:         make([]dto.PurchaseLineResponse, 0, len(lines)),
		Total:         uc.builder.Total(),
	}
	for i, l := range lines {
		valid := l.IsValid()
		if valid {
			resp.ValidLines++
		}
		color := entity.DefaultCategoryColor
		if uc.colors != nil {
			color = uc.colors.ColorOf(l.Category)
		}
		resp.Lines = append(resp.Lines, dto.PurchaseLineResponse{
			Index:         i,
			ProductName:   l.ProductName,
			Barcode:       l.Barcode,
			Category:      l.Category,
			CategoryColor: color,
			Quantity:      l.Quantity,
			PurchasePrice: l.PurchasePrice,
			SalePrice:     l.SalePrice,
			Valid:         valid,
		})
	}
	return resp
}
