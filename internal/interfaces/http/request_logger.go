package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agendarep-api/pkg/logger"
)

// LocalRequestID clave donde el middleware requestid deja el id de la petición.
const LocalRequestID = "requestid"

// RequestLogger registra una línea por petición con zerolog.
// Errores 5xx en nivel error, 4xx en warn, el resto en info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev = ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Interface("request_id", c.Locals(LocalRequestID))
		if id, ok := GetIdentity(c); ok {
			ev = ev.Str("codusuario", id.CodUsuario).Str("perfil", string(id.Perfil))
		}
		ev.Msg("http")
		return err
	}
}
