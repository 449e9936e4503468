package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/application/reports"
)

// ReportHandler expone los reportes de ventas y compras.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte por tipo
// @Tags         reports
// @Produce      json
// @Param        kind  path   string  true   "sales, purchases, profits, top-selling, purchased-items, sold-items"
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/{kind} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext(), dto.ReportRequest{
		Kind: c.Params("kind"),
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
