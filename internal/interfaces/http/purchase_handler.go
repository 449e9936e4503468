package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/purchasing"
	"github.com/jhoicas/puntoventa/internal/domain"
)

// PurchaseHandler expone el borrador de facturas de compra.
type PurchaseHandler struct {
	uc *purchasing.UseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchasing.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Draft godoc
// @Summary      Borrador actual
// @Tags         purchases
// @Produce      json
// @Success      200  {object}  dto.PurchaseDraftResponse
// @Router       /api/purchases/draft [get]
func (h *PurchaseHandler) Draft(c *fiber.Ctx) error {
	return c.JSON(h.uc.Draft())
}

// SetHeader reemplaza número, proveedor y fecha.
func (h *PurchaseHandler) SetHeader(c *fiber.Ctx) error {
	var in dto.PurchaseHeaderRequest
	if resp := bindJSON(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	return c.JSON(h.uc.SetHeader(in))
}

// AddLine agrega una línea vacía.
func (h *PurchaseHandler) AddLine(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.AddLine())
}

// UpdateLine godoc
// @Summary      Editar una línea del borrador
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "Índice de la línea"
// @Param        body   body  dto.UpdatePurchaseLineRequest  true  "Campo y valor, o línea completa"
// @Success      200    {object}  dto.PurchaseDraftResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/purchases/draft/lines/{index} [put]
func (h *PurchaseHandler) UpdateLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return writeError(c, fmt.Errorf("índice de línea: %w", domain.ErrInvalidInput))
	}
	var in dto.UpdatePurchaseLineRequest
	if resp := bindJSON(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.UpdateLine(index, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine quita una línea (la última se vacía).
func (h *PurchaseHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return writeError(c, fmt.Errorf("índice de línea: %w", domain.ErrInvalidInput))
	}
	out, err := h.uc.RemoveLine(index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar la factura de compra
// @Tags         purchases
// @Produce      json
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/purchases/draft/save [post]
func (h *PurchaseHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
