package dto

import "time"

// CreateVisitRequest cuerpo de POST /visitas.
type CreateVisitRequest struct {
	Data            string `json:"data"`
	Hora            string `json:"hora"`
	IDCliente       string `json:"id_cliente"`
	NomeClienteTemp string `json:"nome_cliente_temp"`
	TelefoneTemp    string `json:"telefone_temp"`
	Observacao      string `json:"observacao"`
	CodUsuario      string `json:"codusuario"`
}

// UpdateNoteRequest cuerpo de PUT /visitas/:id/observacao.
type UpdateNoteRequest struct {
	Observacao *string `json:"observacao"`
}

// VisitListRequest filtros de /visitas (fechas AAAA-MM-DD, inclusivas).
type VisitListRequest struct {
	Inicio     string
	Fim        string
	CodUsuario string
}

// VisitaResponse fila de /visitas con nombres de cliente y representante.
type VisitaResponse struct {
	ID                int64      `json:"id"`
	Data              string     `json:"data"`
	Hora              string     `json:"hora"`
	IDCliente         *string    `json:"id_cliente"`
	NomeClienteTemp   *string    `json:"nome_cliente_temp"`
	TelefoneTemp      *string    `json:"telefone_temp"`
	Observacao        string     `json:"observacao"`
	CodUsuario        string     `json:"codusuario"`
	Confirmado        bool       `json:"confirmado"`
	DataConfirmacao   *time.Time `json:"data_confirmacao"`
	NomeCliente       *string    `json:"nome_cliente"`
	NomeRepresentante *string    `json:"nome_representante"`
	NomeExibicao      string     `json:"nome_exibicao"`
}
