package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/agendarep-api/internal/application/analytics"
	"github.com/jhoicas/agendarep-api/internal/application/auth"
	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
	"github.com/jhoicas/agendarep-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/agendarep-api/internal/interfaces/http"
	"github.com/jhoicas/agendarep-api/internal/testutil/memstore"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación completa sobre memstore
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	scheme := password.Scheme{UppercasePassword: true}
	s := memstore.Demo(scheme)
	scopes := usecase.NewScopeResolver(s.UserRepo(), usecase.AccessPolicy{ScopeWrites: true})

	visitUC := usecase.NewVisitUseCase(s.VisitRepo(), scopes)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(s.UserRepo(), scheme, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, nil),
		CustomerUC:  usecase.NewCustomerUseCase(s.CustomerRepo(), scopes),
		VisitUC:     visitUC,
		UserUC:      usecase.NewUserUseCase(s.UserRepo()),
		ReportUC:    usecase.NewReportUseCase(visitUC, pdf.NewMarotoAgendaGenerator()),
		DashboardUC: appanalytics.NewDashboardUseCase(s.CustomerRepo(), s.VisitRepo(), scopes),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login devuelve el token del usuario demo.
func login(t *testing.T, app *fiber.App, nome string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/auth/login", "", dto.LoginRequest{Login: nome, Senha: memstore.DemoPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.True(t, out.Sucesso)
	return out.Token
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func TestAPI_LoginYVerificarToken(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/auth/login", "", dto.LoginRequest{Login: "r1", Senha: memstore.DemoPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login no distingue mayúsculas")
	var out dto.LoginResponse
	decode(t, resp, &out)
	assert.Equal(t, "1001", out.Usuario.CodUsuario)
	assert.Equal(t, "representante", out.Usuario.Perfil)
	assert.Equal(t, "2001", out.Usuario.CoordenadorID)

	resp = call(t, app, http.MethodGet, "/auth/verificar-token", out.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var v dto.VerifyTokenResponse
	decode(t, resp, &v)
	assert.True(t, v.Valido)
	assert.Equal(t, "1001", v.Usuario.CodUsuario)
}

func TestAPI_LoginSenhaErrada(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodPost, "/auth/login", "", dto.LoginRequest{Login: "R1", Senha: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "INVALID_CREDENTIALS", e.Code)

	resp = call(t, app, http.MethodPost, "/auth/login", "", dto.LoginRequest{Login: "R1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)
	for _, path := range []string{"/clientes", "/visitas?inicio=2024-07-01&fim=2024-07-07", "/usuarios/representantes", "/dashboard/resumo", "/auth/verificar-token"} {
		resp := call(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func TestAPI_ActualizarPotencialYListar(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")

	resp := call(t, app, http.MethodPut, "/clientes/C1/grupos/G1", tok, map[string]any{"potencial_compra": 2500})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok dto.SuccessResponse
	decode(t, resp, &ok)
	assert.True(t, ok.Sucesso)

	resp = call(t, app, http.MethodGet, "/clientes", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.ClienteGrupoResponse
	decode(t, resp, &rows)
	require.Len(t, rows, 1, "R1 solo ve su carteira")
	assert.Equal(t, "C1", rows[0].IDCliente)
	require.True(t, rows[0].PotencialCompra.Valid)
	assert.True(t, rows[0].PotencialCompra.Decimal.Equal(decimal.NewFromInt(2500)))
}

func TestAPI_ActualizarPotencialFueraDelAlcance(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")

	resp := call(t, app, http.MethodPut, "/clientes/C9/grupos/G1", tok, map[string]any{"potencial_compra": 10})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/clientes/C1/grupos/G1", tok, map[string]any{"potencial_compra": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ClientesPaginados(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "D1")

	resp := call(t, app, http.MethodGet, "/clientes?page=1&limit=2", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.ClienteGrupoPage
	decode(t, resp, &page)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Dados, 2)
}

// ── Visitas ───────────────────────────────────────────────────────────────────

func TestAPI_CoordenadorNoVeOtroEquipo(t *testing.T) {
	app := buildAPI(t)
	r1, r9, cdr1 := login(t, app, "R1"), login(t, app, "R9"), login(t, app, "Cdr1")

	resp := call(t, app, http.MethodPost, "/visitas", r1, dto.CreateVisitRequest{Data: "2024-07-02", Hora: "09:00", IDCliente: "C1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = call(t, app, http.MethodPost, "/visitas", r9, dto.CreateVisitRequest{Data: "2024-07-03", Hora: "10:00", IDCliente: "C9"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/visitas?inicio=2024-07-01&fim=2024-07-07", cdr1, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.VisitaResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "1001", list[0].CodUsuario)

	resp = call(t, app, http.MethodGet, "/visitas?inicio=2024-07-01&fim=2024-07-07&codusuario=1009", cdr1, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = nil
	decode(t, resp, &list)
	assert.Len(t, list, 1, "sin cadena de reporte el codusuario pedido se respeta")
}

func TestAPI_ConfirmarYObservacao(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")

	resp := call(t, app, http.MethodPost, "/visitas", tok, dto.CreateVisitRequest{Data: "2024-07-02", Hora: "09:00", NomeClienteTemp: "Prospect", TelefoneTemp: "5555"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.VisitaResponse
	decode(t, resp, &created)
	assert.Equal(t, "Prospect", created.NomeExibicao)

	path := "/visitas/" + strconv.FormatInt(created.ID, 10)
	resp = call(t, app, http.MethodPut, path+"/confirmar", tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = call(t, app, http.MethodPut, path+"/observacao", tok, map[string]any{"observacao": "retornar"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/visitas?inicio=2024-07-02&fim=2024-07-02", tok, nil)
	var list []dto.VisitaResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Confirmado)
	assert.NotNil(t, list[0].DataConfirmacao)
	assert.Equal(t, "retornar", list[0].Observacao)

	resp = call(t, app, http.MethodPut, "/visitas/abc/confirmar", tok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = call(t, app, http.MethodPut, "/visitas/999/confirmar", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = call(t, app, http.MethodPut, "/visitas/9999999999/confirmar", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "id fuera de int4 es visita inexistente")
	resp = call(t, app, http.MethodPut, "/visitas/9999999999/observacao", tok, map[string]any{"observacao": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_VisitasRangoInvalido(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")

	resp := call(t, app, http.MethodGet, "/visitas?inicio=2024-07-07&fim=2024-07-01", tok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/visitas", tok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ClientesParaAgendamento(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")

	resp := call(t, app, http.MethodGet, "/visitas/clientes/representante", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.ClienteResumoResponse
	decode(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, dto.ClienteResumoResponse{IDCliente: "C1", Nome: "Cliente Um"}, out[0])
}

func TestAPI_RelatorioPDF(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "R1")
	call(t, app, http.MethodPost, "/visitas", tok, dto.CreateVisitRequest{Data: "2024-07-02", Hora: "09:00", IDCliente: "C1"})

	resp := call(t, app, http.MethodGet, "/visitas/relatorio?inicio=2024-07-01&fim=2024-07-07", tok, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "agenda_2024-07-01_2024-07-07.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ── Usuarios y dashboard ─────────────────────────────────────────────────────

func TestAPI_Representantes(t *testing.T) {
	app := buildAPI(t)

	resp := call(t, app, http.MethodGet, "/usuarios/representantes", login(t, app, "Cdr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reps []dto.RepresentanteResponse
	decode(t, resp, &reps)
	assert.Equal(t, []dto.RepresentanteResponse{{CodUsuario: "1001", Nome: "R1"}, {CodUsuario: "1002", Nome: "R2"}}, reps)

	resp = call(t, app, http.MethodGet, "/usuarios/representantes", login(t, app, "R1"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_DashboardResumo(t *testing.T) {
	app := buildAPI(t)
	tok := login(t, app, "D1")

	resp := call(t, app, http.MethodGet, "/dashboard/resumo?inicio=2024-07-01&fim=2024-07-07", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DashboardResumoDTO
	decode(t, resp, &out)
	assert.Equal(t, 3, out.QtdClientes)
	assert.True(t, out.PotencialTotal.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "2024-07-01", out.Inicio)
}
