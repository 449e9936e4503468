package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/sales"
)

// SalesHandler expone el carrito de la caja.
type SalesHandler struct {
	uc *sales.RegisterUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.RegisterUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Cart godoc
// @Summary      Carrito actual
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/sales/cart [get]
func (h *SalesHandler) Cart(c *fiber.Ctx) error {
	return c.JSON(h.uc.Cart())
}

// Scan godoc
// @Summary      Escanear código de barras
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código escaneado"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/cart/scan [post]
func (h *SalesHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if resp := bindJSON(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.Scan(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una unidad de un producto del catálogo.
func (h *SalesHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if resp := bindJSON(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.AddProduct(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Cambiar cantidad de una línea (0 la elimina)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        ref   path  string  true  "Referencia del producto"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Cantidad"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/sales/cart/items/{ref} [put]
func (h *SalesHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if resp := bindJSON(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.UpdateQuantity(c.Params("ref"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem quita una línea del carrito.
func (h *SalesHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Params("ref"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Cobrar la venta
// @Tags         sales
// @Produce      json
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
