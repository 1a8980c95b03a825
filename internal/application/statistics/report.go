package statistics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
)

// ReportPDFGenerator puerto para renderizar un reporte de estadísticas en PDF.
type ReportPDFGenerator interface {
	GenerateStatisticsPDF(ctx context.Context, title string, res *dto.StatisticsResponse) ([]byte, error)
}

// ReportUseCase genera la versión PDF del reporte de estadísticas.
type ReportUseCase struct {
	statsUC *UseCase
	pdf     ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso de reporte.
func NewReportUseCase(statsUC *UseCase, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{statsUC: statsUC, pdf: pdf}
}

// GetStatisticsPDF calcula las estadísticas y las renderiza como PDF A4.
func (uc *ReportUseCase) GetStatisticsPDF(ctx context.Context, userID string, in dto.StatisticsRequest) ([]byte, error) {
	res, err := uc.statsUC.GetStatistics(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Reporte de ventas (%s %s)", in.Mode, in.Anchor)
	return uc.pdf.GenerateStatisticsPDF(ctx, title, res)
}
