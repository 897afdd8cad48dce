package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// ReportUseCase genera el PDF de la agenda con los mismos filtros y alcance de /visitas.
type ReportUseCase struct {
	visits    *VisitUseCase
	generator AgendaPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(visits *VisitUseCase, generator AgendaPDFGenerator) *ReportUseCase {
	return &ReportUseCase{visits: visits, generator: generator}
}

// AgendaPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) AgendaPDF(ctx context.Context, id entity.Identity, in dto.VisitListRequest) (pdfBytes []byte, filename string, err error) {
	list, err := uc.visits.listEntities(ctx, id, in)
	if err != nil {
		return nil, "", err
	}
	// listEntities ya validó el rango.
	from, to, _ := entity.ParseRange(in.Inicio, in.Fim)

	pdfBytes, err = uc.generator.GenerateAgendaPDF(ctx, AgendaReport{
		Inicio:      from,
		Fim:         to,
		Solicitante: id.Nome,
		Visitas:     list,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("agenda_%s_%s.pdf", from.Format(entity.DateLayout), to.Format(entity.DateLayout))
	return pdfBytes, filename, nil
}
