package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// CustomerFilter filtros del listado de clientes por grupo.
type CustomerFilter struct {
	Scope  access.Scope
	Search string // contiene, sin distinguir mayúsculas, sobre el nome del cliente
	Limit  int    // 0 = sin paginación
	Offset int
}

// CustomerTotals agregados del dashboard sobre los clientes del alcance.
type CustomerTotals struct {
	Customers      int
	PotencialTotal decimal.Decimal
	ValorComprado  decimal.Decimal
}

// CustomerRepository define el puerto de persistencia para clientes y potenciales.
type CustomerRepository interface {
	// ListWithGroups filas cliente ⟕ grupo ordenadas por nome del cliente y id_grupo.
	ListWithGroups(ctx context.Context, f CustomerFilter) ([]entity.CustomerGroupRow, error)
	// CountWithGroups total de filas del mismo join filtrado (ignora Limit/Offset).
	CountWithGroups(ctx context.Context, f CustomerFilter) (int, error)
	// ListByRepresentative clientes de un representante, ordenados por nome.
	ListByRepresentative(ctx context.Context, codRepresentante string) ([]*entity.Customer, error)
	// UpdatePotential actualiza la fila (cliente, grupo) si el cliente entra en el alcance.
	// Devuelve false si ninguna fila fue actualizada.
	UpdatePotential(ctx context.Context, scope access.Scope, idCliente, idGrupo string, valor decimal.Decimal) (bool, error)
	Totals(ctx context.Context, scope access.Scope) (CustomerTotals, error)

	// Carga inicial.
	CreateGroup(ctx context.Context, g *entity.Group) error
	Create(ctx context.Context, c *entity.Customer) error
	LinkGroup(ctx context.Context, idCliente, idGrupo string, potencial, comprado decimal.Decimal) error
}
