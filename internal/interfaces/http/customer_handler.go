package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
)

// CustomerHandler maneja /clientes y el combo de clientes para agendamento.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	err errorWriter
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, ew errorWriter) *CustomerHandler {
	return &CustomerHandler{uc: uc, err: ew}
}

// List godoc
// @Summary      Clientes con sus grupos
// @Description  Un elemento por par cliente/grupo del alcance del usuario. Con page o limit la respuesta es {dados,total,page,limit}.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        codusuario  query  string  false  "representante (coordenador/diretor)"
// @Param        busca       query  string  false  "trecho do nome"
// @Param        page        query  int     false  "página (desde 1)"
// @Param        limit       query  int     false  "tamanho da página (máx. 500)"
// @Success      200  {array}   dto.ClienteGrupoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	in := dto.CustomerListRequest{
		CodUsuario: c.Query("codusuario"),
		Busca:      c.Query("busca"),
	}
	if c.Query("page") != "" || c.Query("limit") != "" {
		var p dto.PageRequest
		if err := c.QueryParser(&p); err != nil {
			return validation(c, "page e limit devem ser inteiros")
		}
		in.Page = &p
	}
	out, err := h.uc.List(c.Context(), id, in)
	if err != nil {
		return h.err.fail(c, err)
	}
	if in.Page == nil {
		return c.JSON(out.Dados)
	}
	return c.JSON(out)
}

// UpdatePotential godoc
// @Summary      Atualizar potencial de compra
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id_cliente  path  string                      true  "cliente"
// @Param        id_grupo    path  string                      true  "grupo"
// @Param        body        body  dto.UpdatePotentialRequest  true  "potencial_compra"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id_cliente}/grupos/{id_grupo} [put]
func (h *CustomerHandler) UpdatePotential(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	var in dto.UpdatePotentialRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SetPotential(c.Context(), id, c.Params("id_cliente"), c.Params("id_grupo"), in); err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Sucesso: true})
}

// ListForScheduling godoc
// @Summary      Clientes de um representante
// @Description  id_cliente e nome para o formulário de agendamento.
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        codusuario  query  string  false  "representante (coordenador/diretor)"
// @Success      200  {array}   dto.ClienteResumoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /visitas/clientes/representante [get]
func (h *CustomerHandler) ListForScheduling(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	out, err := h.uc.ListForScheduling(c.Context(), id, c.Query("codusuario"))
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(out)
}
