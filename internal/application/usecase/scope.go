package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

// AccessPolicy interruptores de la política de alcance (ACCESS_*).
type AccessPolicy struct {
	// EnforceReportingChain: el representante pedido por un coordenador debe reportarle.
	EnforceReportingChain bool
	// ScopeWrites: confirmar, anotar y editar potencial usan el alcance de lectura.
	ScopeWrites bool
}

// ScopeResolver resuelve el alcance de cada petición según la política configurada.
type ScopeResolver struct {
	users  repository.UserRepository
	policy AccessPolicy
}

// NewScopeResolver construye el resolver. users solo se consulta con EnforceReportingChain.
func NewScopeResolver(users repository.UserRepository, policy AccessPolicy) *ScopeResolver {
	return &ScopeResolver{users: users, policy: policy}
}

// Read alcance de los listados (clientes, visitas, dashboard).
func (r *ScopeResolver) Read(ctx context.Context, id entity.Identity, target string) (access.Scope, error) {
	s, err := access.Resolve(id, target)
	if err != nil {
		return access.Scope{}, err
	}
	if err := r.checkChain(ctx, id, s); err != nil {
		return access.Scope{}, err
	}
	return s, nil
}

// Write alcance de las escrituras sobre filas existentes, identificadas por su id.
func (r *ScopeResolver) Write(id entity.Identity) (access.Scope, error) {
	s, err := access.Resolve(id, "")
	if err != nil {
		return access.Scope{}, err
	}
	if !r.policy.ScopeWrites {
		return access.All(), nil
	}
	return s, nil
}

// Owner representante dueño de una visita nueva o de la cartera a agendar.
func (r *ScopeResolver) Owner(ctx context.Context, id entity.Identity, requested string) (string, error) {
	owner, err := access.VisitOwner(id, requested)
	if err != nil {
		return "", fmt.Errorf("%w: codusuario é obrigatório", err)
	}
	if err := r.checkChain(ctx, id, access.Owner(owner)); err != nil {
		return "", err
	}
	return owner, nil
}

func (r *ScopeResolver) checkChain(ctx context.Context, id entity.Identity, s access.Scope) error {
	if !r.policy.EnforceReportingChain || !access.NamesOtherRepresentative(id, s) {
		return nil
	}
	target, err := r.users.GetByCode(ctx, s.Code)
	if err != nil {
		return fmt.Errorf("verificar cadena de reporte: %w", err)
	}
	if target == nil || !access.Team(id.CodUsuario).Allows(target.CodUsuario, target.Perfil, target.CoordenadorID) {
		return domain.ErrForbidden
	}
	return nil
}
