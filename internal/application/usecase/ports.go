package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// AgendaReport datos de la agenda semanal a imprimir.
type AgendaReport struct {
	Inicio      time.Time
	Fim         time.Time
	Solicitante string // nome de quien pide el reporte
	Visitas     []*entity.Visit
}

// AgendaPDFGenerator genera la representación impresa de la agenda.
type AgendaPDFGenerator interface {
	GenerateAgendaPDF(ctx context.Context, report AgendaReport) ([]byte, error)
}
