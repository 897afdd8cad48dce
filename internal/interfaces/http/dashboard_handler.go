package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/agendarep-api/internal/application/analytics"
	"github.com/jhoicas/agendarep-api/internal/application/dto"
)

// DashboardHandler maneja el resumen de la carteira y de la agenda.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	err errorWriter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, ew errorWriter) *DashboardHandler {
	return &DashboardHandler{uc: uc, err: ew}
}

// GetSummary godoc
// @Summary      Resumo do dashboard
// @Description  Sin inicio/fim se usa la semana en curso (domingo a sábado).
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        inicio      query  string  false  "AAAA-MM-DD"
// @Param        fim         query  string  false  "AAAA-MM-DD"
// @Param        codusuario  query  string  false  "representante (coordenador/diretor)"
// @Success      200  {object}  dto.DashboardResumoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/resumo [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	out, err := h.uc.GetSummary(c.Context(), id, dto.DashboardRequest{
		Inicio:     c.Query("inicio"),
		Fim:        c.Query("fim"),
		CodUsuario: c.Query("codusuario"),
	})
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(out)
}
