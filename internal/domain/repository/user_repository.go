package repository

import (
	"context"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para agr_usuarios.
// Los usuarios se crean fuera de la API (seed o carga externa).
type UserRepository interface {
	// FindByLogin devuelve los usuarios cuyo UPPER(nome) coincide con el login ya normalizado.
	FindByLogin(ctx context.Context, loginUpper string) ([]*entity.User, error)
	// GetByCode devuelve nil, nil si no existe.
	GetByCode(ctx context.Context, codUsuario string) (*entity.User, error)
	// ListRepresentatives lista representantes dentro del alcance, ordenados por nome.
	ListRepresentatives(ctx context.Context, scope access.Scope) ([]*entity.User, error)
	UpdatePasswordHash(ctx context.Context, codUsuario, hash string) error
	// Create se usa en la carga inicial.
	Create(ctx context.Context, user *entity.User) error
}
