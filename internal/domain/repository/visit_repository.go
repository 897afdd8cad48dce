package repository

import (
	"context"
	"time"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// VisitFilter filtros del listado de visitas; el rango de fechas es inclusivo.
type VisitFilter struct {
	Scope access.Scope
	From  time.Time
	To    time.Time
}

// VisitRepository define el puerto de persistencia para agr_visitas.
// Las visitas nunca se eliminan.
type VisitRepository interface {
	// Create inserta la visita como no confirmada y completa ID y campos de exhibición.
	Create(ctx context.Context, v *entity.Visit) error
	// List visitas del alcance en el rango, ordenadas por data y hora.
	List(ctx context.Context, f VisitFilter) ([]*entity.Visit, error)
	// Confirm marca confirmado = true y sella data_confirmacao; devuelve false si no hubo fila.
	Confirm(ctx context.Context, scope access.Scope, id int64) (bool, error)
	// UpdateNote reemplaza la observação; devuelve false si no hubo fila.
	UpdateNote(ctx context.Context, scope access.Scope, id int64, observacao string) (bool, error)
}
