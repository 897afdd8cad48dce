package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// RequireRole devuelve un middleware Fiber que deja pasar solo los perfiles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalIdentity).
//
// Comportamiento:
//   - 401 Unauthorized → no hay identidad en el contexto.
//   - 403 Forbidden    → el perfil del token no está en la lista.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := GetIdentity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "identidade não encontrada no contexto",
			})
		}
		for _, r := range roles {
			if id.Perfil == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "perfil '" + string(id.Perfil) + "' sem acesso a este recurso",
		})
	}
}
