package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/internal/application/auth"
	"github.com/jhoicas/agendarep-api/internal/application/dto"
)

// AuthHandler maneja login y verificação de token.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	err errorWriter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, ew errorWriter) *AuthHandler {
	return &AuthHandler{uc: uc, err: ew}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "login, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Login == "" || in.Senha == "" {
		return validation(c, "login e senha são obrigatórios")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return h.err.fail(c, err)
	}
	return c.JSON(out)
}

// VerifyToken godoc
// @Summary      Verificar token
// @Description  Devuelve la identidad embebida en el token vigente.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VerifyTokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/verificar-token [get]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	id, ok := GetIdentity(c)
	if !ok {
		return missingIdentity(c)
	}
	return c.JSON(dto.VerifyTokenResponse{Valido: true, Usuario: auth.ToUsuarioResponse(id)})
}
