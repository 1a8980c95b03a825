package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/statistics"
)

// StatisticsHandler expone el agregador de ventas por ventana de tiempo.
type StatisticsHandler struct {
	uc       *statistics.UseCase
	reportUC *statistics.ReportUseCase
}

// NewStatisticsHandler construye el handler. reportUC puede ser nil si el
// reporte PDF está deshabilitado.
func NewStatisticsHandler(uc *statistics.UseCase, reportUC *statistics.ReportUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc, reportUC: reportUC}
}

// Get godoc
// @Summary      Estadísticas de ventas por ventana de tiempo
// @Description  Ventana de calendario local según mode+anchor+tzOffset.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        mode      query  string  true   "day | week | month | year"
// @Param        anchor    query  string  true   "day/week: YYYY-MM-DD, month: YYYY-MM, year: YYYY"
// @Param        tzOffset  query  int     false  "minutos (UTC = local + offset), default 0"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics [get]
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.StatisticsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	res, err := h.uc.GetStatistics(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetReportPDF godoc
// @Summary      Reporte PDF de estadísticas de ventas
// @Tags         statistics
// @Security     Bearer
// @Produce      application/pdf
// @Param        mode      query  string  true   "day | week | month | year"
// @Param        anchor    query  string  true   "day/week: YYYY-MM-DD, month: YYYY-MM, year: YYYY"
// @Param        tzOffset  query  int     false  "minutos (UTC = local + offset), default 0"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/report.pdf [get]
func (h *StatisticsHandler) GetReportPDF(c *fiber.Ctx) error {
	if h.reportUC == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte PDF no habilitado"})
	}
	userID := GetUserID(c)
	var in dto.StatisticsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	pdf, err := h.reportUC.GetStatisticsPDF(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdf)
}
