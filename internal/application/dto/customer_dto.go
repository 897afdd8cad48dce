package dto

import "github.com/shopspring/decimal"

// ClienteGrupoResponse fila de /clientes (un cliente por grupo vinculado).
type ClienteGrupoResponse struct {
	IDCliente       string              `json:"id_cliente"`
	NomeCliente     string              `json:"nome_cliente"`
	Telefone        *string             `json:"telefone"`
	IDGrupo         *string             `json:"id_grupo"`
	NomeGrupo       *string             `json:"nome_grupo"`
	PotencialCompra decimal.NullDecimal `json:"potencial_compra"`
	ValorComprado   decimal.NullDecimal `json:"valor_comprado"`
}

// ClienteGrupoPage variante paginada de /clientes.
type ClienteGrupoPage struct {
	Dados []ClienteGrupoResponse `json:"dados"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// CustomerListRequest filtros de /clientes.
type CustomerListRequest struct {
	CodUsuario string
	Busca      string
	Page       *PageRequest // nil = sin paginación
}

// UpdatePotentialRequest cuerpo de PUT /clientes/:id_cliente/grupos/:id_grupo.
type UpdatePotentialRequest struct {
	PotencialCompra *decimal.Decimal `json:"potencial_compra"`
}

// ClienteResumoResponse elemento de /visitas/clientes/representante.
type ClienteResumoResponse struct {
	IDCliente string `json:"id_cliente"`
	Nome      string `json:"nome"`
}
