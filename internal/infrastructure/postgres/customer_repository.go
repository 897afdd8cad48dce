package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre agr_clientes,
// agr_cliente_grupo y agr_grupos.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerGroupJoin = `
	FROM agr_clientes c
	LEFT JOIN agr_cliente_grupo cg ON cg.id_cliente = c.id_cliente
	LEFT JOIN agr_grupos g ON g.id_grupo = cg.id_grupo`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// customerWhere arma el WHERE común a listado y conteo.
func customerWhere(f repository.CustomerFilter) (string, []any, error) {
	pred, args, err := ownerPredicate(f.Scope, "c.cod_representante", 1)
	if err != nil {
		return "", nil, err
	}
	where := " WHERE " + pred
	if f.Search != "" {
		args = append(args, likeEscaper.Replace(f.Search))
		where += fmt.Sprintf(" AND c.nome ILIKE '%%' || $%d || '%%'", len(args))
	}
	return where, args, nil
}

// ListWithGroups filas cliente/grupo del alcance.
func (r *CustomerRepo) ListWithGroups(ctx context.Context, f repository.CustomerFilter) ([]entity.CustomerGroupRow, error) {
	where, args, err := customerWhere(f)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT c.id_cliente, c.nome, c.telefone, cg.id_grupo, g.nome, cg.potencial_compra, cg.valor_comprado` +
		customerGroupJoin + where + `
		ORDER BY c.nome, cg.id_grupo`
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	out := make([]entity.CustomerGroupRow, 0)
	for rows.Next() {
		var row entity.CustomerGroupRow
		if err := rows.Scan(
			&row.IDCliente, &row.NomeCliente, &row.Telefone, &row.IDGrupo, &row.NomeGrupo,
			&row.PotencialCompra, &row.ValorComprado,
		); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountWithGroups total de filas del mismo join (para la variante paginada).
func (r *CustomerRepo) CountWithGroups(ctx context.Context, f repository.CustomerFilter) (int, error) {
	where, args, err := customerWhere(f)
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+customerGroupJoin+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// ListByRepresentative clientes de un representante ordenados por nome.
func (r *CustomerRepo) ListByRepresentative(ctx context.Context, cod string) ([]*entity.Customer, error) {
	query := `
		SELECT id_cliente, nome, COALESCE(telefone, ''), cod_representante
		FROM agr_clientes WHERE cod_representante = $1
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, cod)
	if err != nil {
		return nil, fmt.Errorf("list customers by representative: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Nome, &c.Telefone, &c.CodRepresentante); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// UpdatePotential un único UPDATE; el cliente debe entrar en el alcance.
func (r *CustomerRepo) UpdatePotential(ctx context.Context, scope access.Scope, idCliente, idGrupo string, valor decimal.Decimal) (bool, error) {
	pred, args, err := ownerPredicate(scope, "c.cod_representante", 4)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE agr_cliente_grupo cg SET potencial_compra = $1
		WHERE cg.id_cliente = $2 AND cg.id_grupo = $3
		  AND EXISTS (SELECT 1 FROM agr_clientes c WHERE c.id_cliente = cg.id_cliente AND ` + pred + `)`
	tag, err := r.q.Exec(ctx, query, append([]any{valor, idCliente, idGrupo}, args...)...)
	if err != nil {
		if isCheckViolation(err) {
			return false, fmt.Errorf("%w: potencial_compra fora do intervalo", domain.ErrInvalidInput)
		}
		return false, fmt.Errorf("update potencial: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Totals cantidad de clientes distintos y sumas de potencial y comprado del alcance.
func (r *CustomerRepo) Totals(ctx context.Context, scope access.Scope) (repository.CustomerTotals, error) {
	pred, args, err := ownerPredicate(scope, "c.cod_representante", 1)
	if err != nil {
		return repository.CustomerTotals{}, err
	}
	query := `
		SELECT COUNT(DISTINCT c.id_cliente),
		       COALESCE(SUM(cg.potencial_compra), 0),
		       COALESCE(SUM(cg.valor_comprado), 0)
		FROM agr_clientes c
		LEFT JOIN agr_cliente_grupo cg ON cg.id_cliente = c.id_cliente
		WHERE ` + pred
	var t repository.CustomerTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Customers, &t.PotencialTotal, &t.ValorComprado); err != nil {
		return repository.CustomerTotals{}, fmt.Errorf("customer totals: %w", err)
	}
	return t, nil
}

// CreateGroup inserta o renombra un grupo.
func (r *CustomerRepo) CreateGroup(ctx context.Context, g *entity.Group) error {
	query := `
		INSERT INTO agr_grupos (id_grupo, nome) VALUES ($1, $2)
		ON CONFLICT (id_grupo) DO UPDATE SET nome = EXCLUDED.nome`
	if _, err := r.q.Exec(ctx, query, g.ID, g.Nome); err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO agr_clientes (id_cliente, nome, telefone, cod_representante)
		VALUES ($1, $2, NULLIF($3, ''), $4)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nome, c.Telefone, c.CodRepresentante)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: representante %s inexistente", domain.ErrInvalidInput, c.CodRepresentante)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// LinkGroup vincula cliente y grupo; si ya existe reemplaza potencial y comprado.
func (r *CustomerRepo) LinkGroup(ctx context.Context, idCliente, idGrupo string, potencial, comprado decimal.Decimal) error {
	query := `
		INSERT INTO agr_cliente_grupo (id_cliente, id_grupo, potencial_compra, valor_comprado)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_cliente, id_grupo)
		DO UPDATE SET potencial_compra = EXCLUDED.potencial_compra, valor_comprado = EXCLUDED.valor_comprado`
	_, err := r.q.Exec(ctx, query, idCliente, idGrupo, potencial, comprado)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: cliente %s ou grupo %s inexistente", domain.ErrInvalidInput, idCliente, idGrupo)
		case isCheckViolation(err):
			return fmt.Errorf("%w: potencial_compra negativo", domain.ErrInvalidInput)
		}
		return fmt.Errorf("link customer group: %w", err)
	}
	return nil
}
