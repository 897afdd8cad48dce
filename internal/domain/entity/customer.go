package entity

import "github.com/shopspring/decimal"

// Customer cliente de un representante (agr_clientes).
type Customer struct {
	ID               string
	Nome             string
	Telefone         string
	CodRepresentante string
}

// Group grupo de productos (agr_grupos), dato de referencia estático.
type Group struct {
	ID   string
	Nome string
}

// CustomerGroupRow fila del join cliente ⟕ cliente_grupo ⟕ grupo.
// Los campos de grupo son nil cuando el cliente aún no tiene grupos vinculados.
type CustomerGroupRow struct {
	IDCliente       string
	NomeCliente     string
	Telefone        *string
	IDGrupo         *string
	NomeGrupo       *string
	PotencialCompra decimal.NullDecimal
	ValorComprado   decimal.NullDecimal
}
