package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/internal/application/usecase"
)

// UserHandler maneja /usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	err errorWriter
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, ew errorWriter) *UserHandler {
	return &UserHandler{uc: uc, err: ew}
}

// ListRepresentatives godoc
// @Summary      Representantes visibles
// @Description  Equipo del coordenador o todos los representantes para el diretor.
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.RepresentanteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /usuarios/representantes [get]
func (h *UserHandler) ListRepresentatives(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	out, err := h.uc.ListRepresentatives(c.Context(), id)
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(out)
}
