package purchasing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/purchasing"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/infrastructure/memory"
	"github.com/jhoicas/puntoventa/pkg/logger"
)

func newPurchaseUseCase(t *testing.T) (*purchasing.UseCase, *memory.InvoiceRepo) {
	t.Helper()
	products := memory.NewProductRepository()
	categories := memory.NewCategoryRepository()
	invoices := memory.NewInvoiceRepository()
	require.NoError(t, memory.SeedDemo(products, categories, invoices))
	colors := usecase.NewCategoryUseCase(categories, "")
	uc := purchasing.NewUseCase(invoices, colors, purchasing.Config{
		Location: time.UTC,
		Clock:    func() time.Time { return fixedNow },
	}, logger.Nop())
	return uc, invoices
}

func TestUseCase_GuardaYRegistra(t *testing.T) {
	uc, invoices := newPurchaseUseCase(t)
	uc.SetHeader(dto.PurchaseHeaderRequest{InvoiceNumber: "P-10", Supplier: "Acme", Date: "2024-03-01"})
	draft, err := uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{Line: &dto.PurchaseLineRequest{
		ProductName: "Cola", Category: "Bebidas", Quantity: 4,
		PurchasePrice: mustDecimal("2"), SalePrice: mustDecimal("2.5"),
	}})
	require.NoError(t, err)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "#3B82F6", draft.Lines[0].CategoryColor)
	assert.True(t, draft.Lines[0].Valid)
	assert.Equal(t, 1, draft.ValidLines)
	assert.Equal(t, "8.00", draft.Total.StringFixed(2))

	inv, err := uc.Save()
	require.NoError(t, err)
	assert.Equal(t, "P-10", inv.Number)
	assert.Equal(t, "8.00", inv.Total.StringFixed(2))

	stored, err := invoices.GetByID(entity.InvoiceKindPurchase, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	after := uc.Draft()
	assert.Empty(t, after.InvoiceNumber)
	assert.Len(t, after.Lines, 1)
}

func TestUseCase_NumeroDuplicadoNoTocaElBorrador(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	uc.SetHeader(dto.PurchaseHeaderRequest{InvoiceNumber: "INV-001", Supplier: "Acme", Date: "2024-03-01"})
	_, err := uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{Field: purchasing.FieldProductName, Value: "Cola"})
	require.NoError(t, err)
	_, err = uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{Field: purchasing.FieldQuantity, Value: "1"})
	require.NoError(t, err)

	_, err = uc.Save()
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "INV-001", uc.Draft().InvoiceNumber)
	assert.Equal(t, "Cola", uc.Draft().Lines[0].ProductName)
}

func TestUseCase_FechaSeGuardaTalCual(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	uc.SetHeader(dto.PurchaseHeaderRequest{InvoiceNumber: "P-11", Supplier: "Acme", Date: "01/03/2024"})
	_, err := uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{Line: &dto.PurchaseLineRequest{
		ProductName: "Cola", Quantity: 1, PurchasePrice: mustDecimal("2"),
	}})
	require.NoError(t, err)

	inv, err := uc.Save()
	require.NoError(t, err)
	assert.Equal(t, "01/03/2024", inv.Date)
}

func TestUseCase_PrecioFueraDeRango(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	_, err := uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{Line: &dto.PurchaseLineRequest{
		ProductName: "Cola", Quantity: 1, PurchasePrice: mustDecimal("1e30000000"),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, uc.Draft().Total.IsZero())
}

func TestUseCase_CabeceraIncompleta(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	_, err := uc.Save()
	assert.ErrorIs(t, err, domain.ErrMissingHeader)
}

func TestUseCase_UpdateLineSinCampoNiLinea(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	_, err := uc.UpdateLine(0, dto.UpdatePurchaseLineRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, purchasing.ErrLineRequired)
}

func TestUseCase_AddYRemoveLine(t *testing.T) {
	uc, _ := newPurchaseUseCase(t)
	draft := uc.AddLine()
	require.Len(t, draft.Lines, 2)
	assert.Equal(t, 1, draft.Lines[1].Index)
	assert.Equal(t, "#6B7280", draft.Lines[1].CategoryColor)

	draft, err := uc.RemoveLine(1)
	require.NoError(t, err)
	assert.Len(t, draft.Lines, 1)

	_, err = uc.RemoveLine(7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
