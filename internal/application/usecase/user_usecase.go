package usecase

import (
	"context"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListRepresentatives representantes visibles para coordenador (su equipo) o diretor (todos).
// Un representante recibe ErrForbidden.
func (uc *UserUseCase) ListRepresentatives(ctx context.Context, id entity.Identity) ([]dto.RepresentanteResponse, error) {
	scope, err := access.Representatives(id)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.ListRepresentatives(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RepresentanteResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.RepresentanteResponse{CodUsuario: u.CodUsuario, Nome: u.Nome})
	}
	return out, nil
}
