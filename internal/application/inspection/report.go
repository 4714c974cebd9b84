package inspection

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// DownloadReport genera el PDF de recepción de la inspección con su estado enriquecido.
func (s *Service) DownloadReport(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.FileDto] {
	return run(ctx, s, "DownloadReport", func() (*dto.FileDto, error) {
		if id <= 0 {
			return nil, fmt.Errorf("%w: id de inspección inválido", domain.ErrInvalidInput)
		}
		if s.reports == nil {
			return nil, fmt.Errorf("generador de reportes no configurado")
		}
		in, err := s.loadDto(ctx, id)
		if err != nil {
			return nil, err
		}
		content, err := s.reports.InspectionReport(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("generar reporte de inspección: %w", err)
		}
		return &dto.FileDto{
			FileName:    fmt.Sprintf("inspeccion-%d.pdf", id),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	})
}
