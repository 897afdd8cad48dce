package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación de VisitRepository sobre agr_visitas.
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador de persistencia para visitas.
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// selectVisits columnas de la visita con los nombres de cliente y representante.
const selectVisits = `
	SELECT v.id, v.data, to_char(v.hora, 'HH24:MI'),
	       COALESCE(v.id_cliente, ''), COALESCE(v.nome_cliente_temp, ''), COALESCE(v.telefone_temp, ''),
	       COALESCE(v.observacao, ''), v.codusuario, v.confirmado, v.data_confirmacao,
	       COALESCE(c.nome, ''), COALESCE(u.nome, '')
	FROM agr_visitas v
	LEFT JOIN agr_clientes c ON c.id_cliente = v.id_cliente
	LEFT JOIN agr_usuarios u ON u.codusuario = v.codusuario`

// Create inserta la visita sin confirmar y relee la fila con los campos de join.
func (r *VisitRepo) Create(ctx context.Context, v *entity.Visit) error {
	query := `
		INSERT INTO agr_visitas (data, hora, id_cliente, nome_cliente_temp, telefone_temp, observacao, codusuario, confirmado)
		VALUES ($1::date, $2::time, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, FALSE)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		v.Data.Format(entity.DateLayout), v.Hora,
		v.Cliente.IDCliente, v.Cliente.NomeTemp, v.Cliente.TelefoneTemp,
		v.Observacao, v.CodUsuario,
	).Scan(&id)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: cliente ou representante inexistente", domain.ErrInvalidInput)
		case isCheckViolation(err):
			return fmt.Errorf("%w: informe id_cliente ou nome_cliente_temp", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert visit: %w", err)
	}

	created, err := scanVisit(r.q.QueryRow(ctx, selectVisits+` WHERE v.id = $1`, id))
	if err != nil {
		return fmt.Errorf("reload visit %d: %w", id, err)
	}
	*v = *created
	return nil
}

// List visitas del alcance con data en [From, To], ordenadas por data y hora.
func (r *VisitRepo) List(ctx context.Context, f repository.VisitFilter) ([]*entity.Visit, error) {
	pred, args, err := ownerPredicate(f.Scope, "v.codusuario", 3)
	if err != nil {
		return nil, err
	}
	query := selectVisits + `
		WHERE v.data BETWEEN $1::date AND $2::date AND ` + pred + `
		ORDER BY v.data, v.hora`
	args = append([]any{f.From.Format(entity.DateLayout), f.To.Format(entity.DateLayout)}, args...)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Confirm sella data_confirmacao con la hora del servidor de base de datos.
func (r *VisitRepo) Confirm(ctx context.Context, scope access.Scope, id int64) (bool, error) {
	if !validVisitID(id) {
		return false, nil
	}
	pred, args, err := ownerPredicate(scope, "v.codusuario", 2)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE agr_visitas v SET confirmado = TRUE, data_confirmacao = CURRENT_TIMESTAMP
		WHERE v.id = $1 AND ` + pred
	tag, err := r.q.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return false, fmt.Errorf("confirm visit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateNote reemplaza la observação.
func (r *VisitRepo) UpdateNote(ctx context.Context, scope access.Scope, id int64, observacao string) (bool, error) {
	if !validVisitID(id) {
		return false, nil
	}
	pred, args, err := ownerPredicate(scope, "v.codusuario", 3)
	if err != nil {
		return false, err
	}
	query := `UPDATE agr_visitas v SET observacao = $1 WHERE v.id = $2 AND ` + pred
	tag, err := r.q.Exec(ctx, query, append([]any{observacao, id}, args...)...)
	if err != nil {
		return false, fmt.Errorf("update visit note: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// validVisitID agr_visitas.id es SERIAL (int4); fuera de rango no hay fila posible.
func validVisitID(id int64) bool {
	return id > 0 && id <= math.MaxInt32
}

func scanVisit(row pgx.Row) (*entity.Visit, error) {
	var v entity.Visit
	err := row.Scan(
		&v.ID, &v.Data, &v.Hora,
		&v.Cliente.IDCliente, &v.Cliente.NomeTemp, &v.Cliente.TelefoneTemp,
		&v.Observacao, &v.CodUsuario, &v.Confirmado, &v.DataConfirmacao,
		&v.NomeCliente, &v.NomeRepresentante,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
