package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre agr_usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `codusuario, nome, perfil, COALESCE(coordenador_id, ''), COALESCE(senha, '')`

// FindByLogin compara contra UPPER(nome); la senha se verifica fuera de la consulta.
// Filas con un perfil fuera del conjunto conocido se descartan.
func (r *UserRepo) FindByLogin(ctx context.Context, loginUpper string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM agr_usuarios WHERE UPPER(nome) = $1`
	rows, err := r.q.Query(ctx, query, loginUpper)
	if err != nil {
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			if errors.Is(err, errUnknownRole) {
				continue
			}
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByCode obtiene un usuario por codusuario; nil, nil si no existe.
func (r *UserRepo) GetByCode(ctx context.Context, cod string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM agr_usuarios WHERE codusuario = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, cod))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by code: %w", err)
	}
	return u, nil
}

// ListRepresentatives representantes del alcance ordenados por nome.
func (r *UserRepo) ListRepresentatives(ctx context.Context, scope access.Scope) ([]*entity.User, error) {
	pred, args, err := ownerPredicate(scope, "codusuario", 2)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM agr_usuarios
		WHERE perfil = $1 AND ` + pred + `
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, append([]any{string(entity.RoleRepresentante)}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list representatives: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan representative: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdatePasswordHash reescribe agr_usuarios.senha (migración de esquema en el login).
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, cod, hash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE agr_usuarios SET senha = $1 WHERE codusuario = $2`, hash, cod)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Create persiste un usuario (carga inicial).
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO agr_usuarios (codusuario, nome, perfil, coordenador_id, senha)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(ctx, query, u.CodUsuario, u.Nome, string(u.Perfil), u.CoordenadorID, u.PasswordHash)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: coordenador %s inexistente", domain.ErrInvalidInput, u.CoordenadorID)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

var errUnknownRole = errors.New("perfil desconocido")

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u      entity.User
		perfil string
	)
	if err := row.Scan(&u.CodUsuario, &u.Nome, &perfil, &u.CoordenadorID, &u.PasswordHash); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(perfil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errUnknownRole, perfil)
	}
	u.Perfil = role
	return &u, nil
}
