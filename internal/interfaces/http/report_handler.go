package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/inventory"
)

// ReportHandler handlers REST para reportes.
type ReportHandler struct {
	lowStock *inventory.LowStockUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(lowStock *inventory.LowStockUseCase) *ReportHandler {
	return &ReportHandler{lowStock: lowStock}
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Description  Productos activos en o por debajo de su stock mínimo, con el faltante sugerido para reponer.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockReportResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.lowStock.Report()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStockPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.lowStock.ReportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("stock-bajo-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
