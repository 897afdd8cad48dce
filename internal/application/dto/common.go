package dto

import "math"

// Valores por defecto de paginación en /clientes.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 500
)

// PageRequest paginación por página (page >= 1, limit > 0).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto a page/limit fuera de rango.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	// (Page-1)*Limit no debe desbordar int.
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
}

// Offset desplazamiento SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse cuerpo de las escrituras sin contenido propio.
type SuccessResponse struct {
	Sucesso bool `json:"sucesso"`
}
