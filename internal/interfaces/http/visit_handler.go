package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
)

// VisitHandler maneja /visitas y el relatório em PDF.
type VisitHandler struct {
	uc     *usecase.VisitUseCase
	report *usecase.ReportUseCase
	err    errorWriter
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *usecase.VisitUseCase, report *usecase.ReportUseCase, ew errorWriter) *VisitHandler {
	return &VisitHandler{uc: uc, report: report, err: ew}
}

func listRequest(c *fiber.Ctx) dto.VisitListRequest {
	return dto.VisitListRequest{
		Inicio:     c.Query("inicio"),
		Fim:        c.Query("fim"),
		CodUsuario: c.Query("codusuario"),
	}
}

// List godoc
// @Summary      Visitas do período
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        inicio      query  string  true   "AAAA-MM-DD"
// @Param        fim         query  string  true   "AAAA-MM-DD"
// @Param        codusuario  query  string  false  "representante (coordenador/diretor)"
// @Success      200  {array}   dto.VisitaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /visitas [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	out, err := h.uc.List(c.Context(), id, listRequest(c))
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agendar visita
// @Description  id_cliente o nome_cliente_temp (exactamente uno). El representante ignora codusuario.
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVisitRequest  true  "visita"
// @Success      201  {object}  dto.VisitaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /visitas [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), id, in)
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Confirm godoc
// @Summary      Confirmar visita
// @Tags         visitas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "visita"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /visitas/{id}/confirmar [put]
func (h *VisitHandler) Confirm(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	visitID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || visitID <= 0 {
		return validation(c, "id de visita inválido")
	}
	if err := h.uc.Confirm(c.Context(), id, visitID); err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Sucesso: true})
}

// UpdateNote godoc
// @Summary      Atualizar observação
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "visita"
// @Param        body  body  dto.UpdateNoteRequest  true  "observacao"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /visitas/{id}/observacao [put]
func (h *VisitHandler) UpdateNote(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	visitID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || visitID <= 0 {
		return validation(c, "id de visita inválido")
	}
	var in dto.UpdateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateNote(c.Context(), id, visitID, in); err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Sucesso: true})
}

// Report godoc
// @Summary      Agenda em PDF
// @Tags         visitas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        inicio      query  string  true   "AAAA-MM-DD"
// @Param        fim         query  string  true   "AAAA-MM-DD"
// @Param        codusuario  query  string  false  "representante (coordenador/diretor)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /visitas/relatorio [get]
func (h *VisitHandler) Report(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	pdf, filename, err := h.report.AgendaPDF(c.Context(), id, listRequest(c))
	if err != nil {
		return h.err.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
