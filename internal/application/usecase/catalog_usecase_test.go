package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/infrastructure/memory"
)

func newCatalog(t *testing.T) (*usecase.ProductUseCase, *usecase.CategoryUseCase) {
	t.Helper()
	products := memory.NewProductRepository()
	categories := memory.NewCategoryRepository()
	require.NoError(t, memory.SeedDemo(products, categories, memory.NewInvoiceRepository()))
	cats := usecase.NewCategoryUseCase(categories, "")
	return usecase.NewProductUseCase(products, cats), cats
}

func strPtr(s string) *string { return &s }

func TestProductUseCase_CreateValida(t *testing.T) {
	products, _ := newCatalog(t)

	_, err := products.Create(dto.CreateProductRequest{Name: "   ", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Create(dto.CreateProductRequest{Name: "Agua", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Create(dto.CreateProductRequest{Name: "Agua", Price: decimal.NewFromInt(1), Stock: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Create(dto.CreateProductRequest{Name: "Cola light", Price: decimal.NewFromInt(3), Barcode: "12345"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	created, err := products.Create(dto.CreateProductRequest{
		Name: " Agua ", Price: decimal.RequireFromString("1.20"), Stock: 10, Barcode: "55555", Category: "Bebidas",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Agua", created.Name)
	assert.Equal(t, "#3B82F6", created.CategoryColor)
}

func TestProductUseCase_PrecioFueraDeRango(t *testing.T) {
	products, _ := newCatalog(t)
	huge := decimal.RequireFromString("1e30000000")

	_, err := products.Create(dto.CreateProductRequest{Name: "Agua", Price: huge})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Update("1", dto.UpdateProductRequest{Price: &huge})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tiny := decimal.RequireFromString("0.0000001")
	_, err = products.Update("1", dto.UpdateProductRequest{Price: &tiny})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := products.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "2.5", got.Price.String())
}

func TestProductUseCase_ColorPorDefectoSinCategoria(t *testing.T) {
	products, _ := newCatalog(t)
	created, err := products.Create(dto.CreateProductRequest{Name: "Pan", Price: decimal.NewFromInt(1), Category: "Panadería"})
	require.NoError(t, err)
	assert.Equal(t, "#6B7280", created.CategoryColor)
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	products, _ := newCatalog(t)
	price := decimal.RequireFromString("2.75")
	updated, err := products.Update("1", dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Cola", updated.Name)
	assert.True(t, updated.Price.Equal(price))

	_, err = products.Update("1", dto.UpdateProductRequest{Name: strPtr(" ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Update("1", dto.UpdateProductRequest{Barcode: strPtr("67890")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = products.Update("nope", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_SearchPorNombreOCategoria(t *testing.T) {
	products, _ := newCatalog(t)

	res, err := products.Search("BEBIDAS")
	require.NoError(t, err)
	require.Equal(t, 2, res.Total)
	assert.Equal(t, "Cola", res.Items[0].Name)
	assert.Equal(t, "Jugo de naranja", res.Items[1].Name)

	res, err = products.Search("choco")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Dulces", res.Items[0].Category)

	res, err = products.Search("")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)

	res, err = products.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestProductUseCase_FindByBarcode(t *testing.T) {
	products, _ := newCatalog(t)
	found, err := products.FindByBarcode("67890")
	require.NoError(t, err)
	assert.Equal(t, "Papas fritas", found.Name)

	_, err = products.FindByBarcode("99999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_GenerateBarcode(t *testing.T) {
	products, _ := newCatalog(t)
	for i := 0; i < 20; i++ {
		res, err := products.GenerateBarcode()
		require.NoError(t, err)
		require.Len(t, res.Barcode, 9)
		for _, r := range res.Barcode {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestProductUseCase_DeleteYGet(t *testing.T) {
	products, _ := newCatalog(t)
	require.NoError(t, products.Delete("2"))
	_, err := products.GetByID("2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, err := products.List()
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}

func TestCategoryUseCase_CreateColorPorDefectoYNombreUnico(t *testing.T) {
	_, cats := newCatalog(t)

	created, err := cats.Create(dto.CategoryRequest{Name: "Limpieza"})
	require.NoError(t, err)
	assert.Equal(t, "#3B82F6", created.Color)

	_, err = cats.Create(dto.CategoryRequest{Name: "bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = cats.Create(dto.CategoryRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUseCase_ColorOf(t *testing.T) {
	_, cats := newCatalog(t)
	assert.Equal(t, "#10B981", cats.ColorOf("Snacks"))
	assert.Equal(t, "#6B7280", cats.ColorOf("Inexistente"))
	assert.Equal(t, "#6B7280", cats.ColorOf(""))

	custom := usecase.NewCategoryUseCase(memory.NewCategoryRepository(), "#000000")
	assert.Equal(t, "#000000", custom.ColorOf("Snacks"))
}

func TestCategoryUseCase_UpdateYDelete(t *testing.T) {
	_, cats := newCatalog(t)
	updated, err := cats.Update("2", dto.CategoryRequest{Name: "Botanas", Color: "#ef4444"})
	require.NoError(t, err)
	assert.Equal(t, "Botanas", updated.Name)
	assert.Equal(t, "#EF4444", updated.Color)

	// el color anterior ya no resuelve por el nombre viejo
	assert.Equal(t, "#6B7280", cats.ColorOf("Snacks"))

	require.NoError(t, cats.Delete("2"))
	_, err = cats.GetByID("2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = cats.Update("2", dto.CategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_Palette(t *testing.T) {
	_, cats := newCatalog(t)
	p := cats.Palette()
	require.Len(t, p.Colors, 8)
	assert.Equal(t, "#3B82F6", p.Default)
	p.Colors[0] = "#FFFFFF"
	assert.Equal(t, "#3B82F6", cats.Palette().Colors[0])
}
