package sales

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
	"github.com/jhoicas/puntoventa/pkg/logger"
)

// RegisterConfig datos de la caja.
type RegisterConfig struct {
	Cashier  string
	Location *time.Location
	Clock    func() time.Time // opcional; time.Now por defecto
}

// RegisterUseCase es la caja: mantiene un único carrito abierto y, tras cada cobro,
// registra la factura y abre un carrito nuevo. Serializa los comandos porque los
// handlers HTTP corren en paralelo.
type RegisterUseCase struct {
	mu          sync.Mutex
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	cfg         RegisterConfig
	log         *logger.Logger
	engine      *OrderEngine
}

// NewRegisterUseCase construye la caja con un carrito vacío.
func NewRegisterUseCase(productRepo repository.ProductRepository, invoiceRepo repository.InvoiceRepository, cfg RegisterConfig, log *logger.Logger) *RegisterUseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	uc := &RegisterUseCase{
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		cfg:         cfg,
		log:         log.Component("sales"),
	}
	uc.engine = uc.newEngine()
	return uc
}

func (uc *RegisterUseCase) newEngine() *OrderEngine {
	return NewOrderEngine(uc.productRepo, uc.cfg.Cashier, WithClock(uc.cfg.Clock), WithLocation(uc.cfg.Location))
}

// Cart devuelve el estado actual del carrito.
func (uc *RegisterUseCase) Cart() *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cartLocked()
}

// Scan agrega por código de barras.
func (uc *RegisterUseCase) Scan(in dto.ScanRequest) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	product, err := uc.engine.ScanBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("barcode", in.Barcode).Str("product_id", product.ID).Msg("producto escaneado")
	return uc.cartLocked(), nil
}

// AddProduct agrega una unidad del producto elegido en el catálogo.
func (uc *RegisterUseCase) AddProduct(in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.engine.AddByProduct(*product); err != nil {
		return nil, err
	}
	return uc.cartLocked(), nil
}

// UpdateQuantity fija la cantidad de una línea; 0 la elimina.
func (uc *RegisterUseCase) UpdateQuantity(productRef string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.engine.UpdateLineQuantity(productRef, in.Quantity); err != nil {
		return nil, err
	}
	return uc.cartLocked(), nil
}

// Remove quita una línea del carrito.
func (uc *RegisterUseCase) Remove(productRef string) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.engine.RemoveLine(productRef); err != nil {
		return nil, err
	}
	return uc.cartLocked(), nil
}

// Checkout cobra la venta, guarda la factura y abre un carrito nuevo.
// Si el registro falla, la factura queda en el log de errores y la caja abre igual
// un carrito nuevo: un motor cerrado no se reutiliza.
func (uc *RegisterUseCase) Checkout() (*dto.InvoiceResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	invoice, err := uc.engine.Checkout()
	if err != nil {
		return nil, err
	}
	uc.engine = uc.newEngine()

	if err := uc.invoiceRepo.Append(invoice); err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", invoice.ID).
			Str("invoice_number", invoice.Number).
			Str("total", invoice.Total.StringFixed(2)).
			Msg("no se pudo registrar la factura de venta")
		return nil, fmt.Errorf("registrar factura: %w", err)
	}
	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("invoice_number", invoice.Number).
		Int("lines", invoice.ItemCount()).
		Str("total", invoice.Total.StringFixed(2)).
		Msg("venta registrada")
	return usecase.ToInvoiceResponse(invoice), nil
}

func (uc *RegisterUseCase) cartLocked() *dto.CartResponse {
	entries := uc.engine.Entries()
	summary := pricing.Summarize(entries)
	resp := &dto.CartResponse{
		Status:    string(uc.engine.Status()),
		Cashier:   uc.engine.Cashier(),
		Items:     make([]dto.LineItemResponse, 0, len(entries)),
		ItemCount: summary.ItemCount,
		Subtotal:  summary.Subtotal,
		Total:     summary.Total,
	}
	for i, e := range entries {
		resp.Items = append(resp.Items, usecase.ToLineItemResponse(e, summary.Lines[i]))
	}
	return resp
}
