package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/pkg/logger"
)

func failWith(t *testing.T, ew errorWriter, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return ew.fail(c, err) })
	resp, e := app.Test(httptest.NewRequest(nethttp.MethodGet, "/", nil), -1)
	require.NoError(t, e)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorWriter_MapeoDeSentinelas(t *testing.T) {
	ew := newErrorWriter(nil, false)
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: data obrigatória", domain.ErrInvalidInput), nethttp.StatusBadRequest, "VALIDATION"},
		{domain.ErrInvalidCredentials, nethttp.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrInvalidToken, nethttp.StatusUnauthorized, "INVALID_TOKEN"},
		{domain.ErrForbidden, nethttp.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("visita 9: %w", domain.ErrNotFound), nethttp.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, nethttp.StatusConflict, "DUPLICATE"},
	}
	for _, tc := range cases {
		status, body := failWith(t, ew, tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, body.Code, tc.err.Error())
	}
}

func TestErrorWriter_ValidacionConservaElMensaje(t *testing.T) {
	_, body := failWith(t, newErrorWriter(nil, false), fmt.Errorf("%w: hora inválida", domain.ErrInvalidInput))
	assert.Contains(t, body.Message, "hora inválida")
}

func TestErrorWriter_InternoOcultoOExpuesto(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "info")
	boom := errors.New("conexão recusada")

	status, body := failWith(t, newErrorWriter(log, false), boom)
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "recusada")
	assert.Contains(t, buf.String(), "conexão recusada", "el error interno siempre se registra")

	_, body = failWith(t, newErrorWriter(log, true), boom)
	assert.Equal(t, "conexão recusada", body.Message)
}
