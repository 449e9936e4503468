package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
)

// InvoiceHandler consulta las facturas registradas.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar facturas (más recientes primero)
// @Tags         invoices
// @Produce      json
// @Param        kind  path  string  true  "sale o purchase"
// @Success      200   {object}  dto.ListResponse[dto.InvoiceResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/{kind} [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.InvoiceKind(c.Params("kind")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una factura
// @Tags         invoices
// @Produce      json
// @Param        kind  path  string  true  "sale o purchase"
// @Param        id    path  string  true  "ID de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{kind}/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(entity.InvoiceKind(c.Params("kind")), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
