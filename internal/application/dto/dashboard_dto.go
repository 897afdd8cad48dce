package dto

import "github.com/shopspring/decimal"

// DashboardRequest filtros de /dashboard/resumo; sin fechas se usa la semana en curso.
type DashboardRequest struct {
	Inicio     string
	Fim        string
	CodUsuario string
}

// AtividadeDTO visita reciente del dashboard.
type AtividadeDTO struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Data       string `json:"data"`
	Hora       string `json:"hora"`
	Confirmado bool   `json:"confirmado"`
}

// DashboardResumoDTO agregados de clientes y visitas del alcance.
type DashboardResumoDTO struct {
	Inicio             string          `json:"inicio"`
	Fim                string          `json:"fim"`
	QtdClientes        int             `json:"qtd_clientes"`
	PotencialTotal     decimal.Decimal `json:"potencial_total"`
	ValorCompradoTotal decimal.Decimal `json:"valor_comprado_total"`
	VisitasConfirmadas int             `json:"visitas_confirmadas"`
	VisitasPendentes   int             `json:"visitas_pendentes"`
	AtividadesRecentes []AtividadeDTO  `json:"atividades_recentes"`
}
