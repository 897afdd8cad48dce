// Package analytics contiene los casos de uso del dashboard de la agenda:
// agregados de cartera y de visitas del alcance del usuario.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

const dashboardRecentActivities = 10 // visitas en el widget de actividades recientes

// DashboardUseCase genera el resumen de clientes y visitas de un periodo.
//
// Fuente de datos: CustomerRepository.Totals y VisitRepository.List (read-only).
type DashboardUseCase struct {
	customers repository.CustomerRepository
	visits    repository.VisitRepository
	scopes    *usecase.ScopeResolver
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	customers repository.CustomerRepository,
	visits repository.VisitRepository,
	scopes *usecase.ScopeResolver,
) *DashboardUseCase {
	return &DashboardUseCase{customers: customers, visits: visits, scopes: scopes, now: time.Now}
}

// GetSummary construye el DashboardResumoDTO del alcance.
//
// Dos llamadas en paralelo:
//  1. Totals(alcance)            → QtdClientes + PotencialTotal + ValorCompradoTotal
//  2. List(alcance, inicio, fim) → confirmadas / pendientes + AtividadesRecentes
func (uc *DashboardUseCase) GetSummary(ctx context.Context, id entity.Identity, in dto.DashboardRequest) (*dto.DashboardResumoDTO, error) {
	from, to, err := uc.period(in)
	if err != nil {
		return nil, err
	}
	scope, err := uc.scopes.Read(ctx, id, in.CodUsuario)
	if err != nil {
		return nil, err
	}

	type totalsResult struct {
		totals repository.CustomerTotals
		err    error
	}
	type visitsResult struct {
		visits []*entity.Visit
		err    error
	}

	totalsCh := make(chan totalsResult, 1)
	visitsCh := make(chan visitsResult, 1)

	go func() {
		t, err := uc.customers.Totals(ctx, scope)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		v, err := uc.visits.List(ctx, repository.VisitFilter{Scope: scope, From: from, To: to})
		visitsCh <- visitsResult{v, err}
	}()

	totals := <-totalsCh
	visits := <-visitsCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de clientes: %w", totals.err)
	}
	if visits.err != nil {
		return nil, fmt.Errorf("dashboard: visitas del periodo: %w", visits.err)
	}

	out := &dto.DashboardResumoDTO{
		Inicio:             from.Format(entity.DateLayout),
		Fim:                to.Format(entity.DateLayout),
		QtdClientes:        totals.totals.Customers,
		PotencialTotal:     totals.totals.PotencialTotal.Round(2),
		ValorCompradoTotal: totals.totals.ValorComprado.Round(2),
		AtividadesRecentes: recentActivities(visits.visits, dashboardRecentActivities),
	}
	for _, v := range visits.visits {
		if v.Confirmado {
			out.VisitasConfirmadas++
		} else {
			out.VisitasPendentes++
		}
	}
	return out, nil
}

// period rango pedido; las fechas ausentes toman la semana en curso (domingo a sábado).
func (uc *DashboardUseCase) period(in dto.DashboardRequest) (time.Time, time.Time, error) {
	weekStart, weekEnd := weekOf(uc.now())
	inicio, fim := in.Inicio, in.Fim
	if inicio == "" {
		inicio = weekStart.Format(entity.DateLayout)
	}
	if fim == "" {
		fim = weekEnd.Format(entity.DateLayout)
	}
	from, to, err := entity.ParseRange(inicio, fim)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return from, to, nil
}

// weekOf devuelve el domingo y el sábado de la semana de t.
func weekOf(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// recentActivities las n visitas más recientes por data y hora, descendente.
func recentActivities(visits []*entity.Visit, n int) []dto.AtividadeDTO {
	sorted := make([]*entity.Visit, len(visits))
	copy(sorted, visits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Data.Equal(sorted[j].Data) {
			return sorted[i].Data.After(sorted[j].Data)
		}
		return sorted[i].Hora > sorted[j].Hora
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]dto.AtividadeDTO, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, dto.AtividadeDTO{
			ID:         v.ID,
			Nome:       v.DisplayName(),
			Data:       v.Data.Format(entity.DateLayout),
			Hora:       v.Hora,
			Confirmado: v.Confirmado,
		})
	}
	return out
}
