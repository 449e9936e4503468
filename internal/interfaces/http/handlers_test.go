package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/purchasing"
	"github.com/jhoicas/puntoventa/internal/application/reports"
	"github.com/jhoicas/puntoventa/internal/application/sales"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/puntoventa/internal/interfaces/http"
	"github.com/jhoicas/puntoventa/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre repositorios en memoria con datos de demostración.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	products := memory.NewProductRepository()
	categories := memory.NewCategoryRepository()
	invoices := memory.NewInvoiceRepository()
	require.NoError(t, memory.SeedDemo(products, categories, invoices))

	log := logger.Nop()
	clock := func() time.Time { return time.Date(2024, 12, 5, 9, 15, 0, 0, time.UTC) }
	categoryUC := usecase.NewCategoryUseCase(categories, "")

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(products, categoryUC),
		CategoryUC: categoryUC,
		InvoiceUC:  usecase.NewInvoiceUseCase(invoices),
		Register: sales.NewRegisterUseCase(products, invoices, sales.RegisterConfig{
			Cashier: "Ana", Location: time.UTC, Clock: clock,
		}, log),
		Purchasing: purchasing.NewUseCase(invoices, categoryUC, purchasing.Config{Location: time.UTC, Clock: clock}, log),
		Reports:    reports.NewUseCase(invoices, products),
	})
	return app
}

// do lanza la petición con body JSON opcional y decodifica la respuesta en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// Caja
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_EscanearYCobrar(t *testing.T) {
	app := buildTestApp(t)

	var cart dto.CartResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/sales/cart/scan", dto.ScanRequest{Barcode: "12345"}, &cart))
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/sales/cart/scan", dto.ScanRequest{Barcode: "12345"}, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "5.00", cart.Total.StringFixed(2))

	var inv dto.InvoiceResponse
	require.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/sales/checkout", nil, &inv))
	assert.Equal(t, "5.00", inv.Total.StringFixed(2))
	assert.Regexp(t, `^INV-20241205-\d{4}$`, inv.Number)

	var list dto.ListResponse[dto.InvoiceResponse]
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/invoices/sale", nil, &list))
	require.Equal(t, 3, list.Total)
	assert.Equal(t, inv.ID, list.Items[0].ID)

	var detail dto.InvoiceResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/invoices/sale/"+inv.ID, nil, &detail))
	assert.Equal(t, 1, detail.LineCount)
}

func TestSales_CodigoDesconocido(t *testing.T) {
	app := buildTestApp(t)
	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/sales/cart/scan", dto.ScanRequest{Barcode: "99999"}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errResp.Code)
}

func TestSales_CobrarCarritoVacio(t *testing.T) {
	app := buildTestApp(t)
	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/sales/checkout", nil, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "EMPTY_CART", errResp.Code)
}

func TestSales_CantidadCeroEliminaLinea(t *testing.T) {
	app := buildTestApp(t)
	var cart dto.CartResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/sales/cart/items", dto.AddCartItemRequest{ProductID: "1"}, &cart))
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPut, "/api/sales/cart/items/1", dto.UpdateCartItemRequest{Quantity: 0}, &cart))
	assert.Empty(t, cart.Items)
	assert.Equal(t, "empty", cart.Status)
}

func TestSales_ValidacionDelCuerpo(t *testing.T) {
	app := buildTestApp(t)
	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/sales/cart/scan", map[string]string{}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "required", errResp.Fields["barcode"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchases_GuardarBorrador(t *testing.T) {
	app := buildTestApp(t)

	var draft dto.PurchaseDraftResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPut, "/api/purchases/draft/header",
		dto.PurchaseHeaderRequest{InvoiceNumber: "P-77", Supplier: "Acme", Date: "2024-12-05"}, &draft))
	for _, change := range []dto.UpdatePurchaseLineRequest{
		{Field: "productName", Value: "Cola"},
		{Field: "quantity", Value: "50"},
		{Field: "purchasePrice", Value: "2"},
	} {
		require.Equal(t, http.StatusOK, do(t, app, http.MethodPut, "/api/purchases/draft/lines/0", change, &draft))
	}
	require.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/purchases/draft/lines", nil, &draft))
	require.Len(t, draft.Lines, 2)
	assert.Equal(t, 1, draft.ValidLines)

	var inv dto.InvoiceResponse
	require.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/purchases/draft/save", nil, &inv))
	assert.Equal(t, "100.00", inv.Total.StringFixed(2))
	assert.Equal(t, "Acme", inv.Counterpart)

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/purchases/draft/save", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_HEADER", errResp.Code)
}

func TestPurchases_Errores(t *testing.T) {
	app := buildTestApp(t)
	var errResp dto.ErrorResponse

	status := do(t, app, http.MethodPut, "/api/purchases/draft/lines/0", dto.UpdatePurchaseLineRequest{Field: "color", Value: "x"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errResp.Code)

	status = do(t, app, http.MethodPut, "/api/purchases/draft/lines/abc", dto.UpdatePurchaseLineRequest{Field: "quantity", Value: "1"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", errResp.Code)

	require.Equal(t, http.StatusOK, do(t, app, http.MethodPut, "/api/purchases/draft/header",
		dto.PurchaseHeaderRequest{InvoiceNumber: "P-1", Supplier: "Acme", Date: "2024-12-05"}, nil))
	status = do(t, app, http.MethodPost, "/api/purchases/draft/save", nil, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "NO_VALID_LINES", errResp.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo, facturas y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrudYBusqueda(t *testing.T) {
	app := buildTestApp(t)

	var created dto.ProductResponse
	require.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": "Agua", "price": "1.20", "stock": 5, "barcode": "33333", "category": "Bebidas"}, &created))
	assert.Equal(t, "#3B82F6", created.CategoryColor)

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": "Otra", "price": "1", "barcode": "33333"}, &errResp)
	assert.Equal(t, http.StatusConflict, status)

	status = do(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": "Cara", "price": "1e30000000"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", errResp.Code)

	var list dto.ListResponse[dto.ProductResponse]
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products?q=bebidas", nil, &list))
	assert.Equal(t, 3, list.Total)

	var found dto.ProductResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products/barcode/33333", nil, &found))
	assert.Equal(t, created.ID, found.ID)

	var code dto.BarcodeResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/products/barcode", nil, &code))
	assert.Len(t, code.Barcode, 9)

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, "/api/products/"+created.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/products/"+created.ID, nil, &errResp))
}

func TestCategories_ColorYPaleta(t *testing.T) {
	app := buildTestApp(t)

	var color dto.CategoryColorResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/categories/color?name=Dulces", nil, &color))
	assert.Equal(t, "#F59E0B", color.Color)
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/categories/color?name=Nada", nil, &color))
	assert.Equal(t, "#6B7280", color.Color)

	var palette dto.PaletteResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/categories/palette", nil, &palette))
	assert.Len(t, palette.Colors, 8)

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/categories", dto.CategoryRequest{Name: "Lácteos", Color: "azul"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "hexcolor", errResp.Fields["color"])
}

func TestInvoices_TipoInvalido(t *testing.T) {
	app := buildTestApp(t)
	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodGet, "/api/invoices/refund", nil, &errResp))
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/invoices/sale/nope", nil, &errResp))
}

func TestReports_Ganancias(t *testing.T) {
	app := buildTestApp(t)
	var report dto.ReportResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/reports/profits?from=2024-01-01&to=2024-12-31", nil, &report))
	assert.Len(t, report.Profits, 2)
	assert.Equal(t, "-110.50", report.Total.StringFixed(2))

	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodGet, "/api/reports/profits?from=ayer", nil, &errResp))
}
