package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/internal/application/auth"
	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/agendarep-api/pkg/jwt"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

const testSecret = "test-secret-key-for-unit-tests"

// stubUserRepo guarda usuarios en memoria indexados por codusuario.
type stubUserRepo struct {
	users      []*entity.User
	findErr    error
	updatedFor string
	updatedTo  string
}

func (s *stubUserRepo) FindByLogin(_ context.Context, loginUpper string) ([]*entity.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []*entity.User
	for _, u := range s.users {
		if strings.ToUpper(u.Nome) == loginUpper {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUserRepo) GetByCode(_ context.Context, cod string) (*entity.User, error) {
	for _, u := range s.users {
		if u.CodUsuario == cod {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ListRepresentatives(context.Context, access.Scope) ([]*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdatePasswordHash(_ context.Context, cod, hash string) error {
	s.updatedFor, s.updatedTo = cod, hash
	return nil
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.users = append(s.users, u)
	return nil
}

func newUseCase(t *testing.T, repo *stubUserRepo, scheme password.Scheme) *auth.AuthUseCase {
	t.Helper()
	return auth.NewAuthUseCase(repo, scheme, auth.JWTConfig{Secret: testSecret, ExpMinutes: 1440, Issuer: "test"}, nil)
}

func seededRepo(scheme password.Scheme) *stubUserRepo {
	return &stubUserRepo{users: []*entity.User{
		{CodUsuario: "1001", Nome: "R1", Perfil: entity.RoleRepresentante, CoordenadorID: "2001", PasswordHash: scheme.Digest("R1", "senha123")},
		{CodUsuario: "2001", Nome: "Cdr1", Perfil: entity.RoleCoordenador, PasswordHash: scheme.Digest("Cdr1", "coord")},
	}}
}

func TestLogin_CredencialesCorrectas_EmiteTokenConPerfil(t *testing.T) {
	scheme := password.Scheme{UppercasePassword: true}
	uc := newUseCase(t, seededRepo(scheme), scheme)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Login: "r1", Senha: "senha123"})
	require.NoError(t, err)

	assert.True(t, out.Sucesso)
	assert.Equal(t, "1001", out.Usuario.CodUsuario)
	assert.Equal(t, "representante", out.Usuario.Perfil)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "representante", claims.Perfil, "el perfil decodificado coincide con el guardado")
	assert.Equal(t, "2001", claims.CoordenadorID)
}

func TestLogin_SenhaErrada_InvalidCredentials(t *testing.T) {
	scheme := password.Scheme{UppercasePassword: true}
	uc := newUseCase(t, seededRepo(scheme), scheme)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Login: "R1", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, out, "no se emite token")
}

func TestLogin_UsuarioInexistente_InvalidCredentials(t *testing.T) {
	scheme := password.Scheme{UppercasePassword: true}
	uc := newUseCase(t, seededRepo(scheme), scheme)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "nadie", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CamposVacios_InvalidInput(t *testing.T) {
	uc := newUseCase(t, &stubUserRepo{}, password.Scheme{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "R1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ErrorDeRepositorio_SePropaga(t *testing.T) {
	boom := errors.New("db caída")
	uc := newUseCase(t, &stubUserRepo{findErr: boom}, password.Scheme{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "R1", Senha: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestLogin_VarianteAlternativa_MigraHash(t *testing.T) {
	raw := password.Scheme{UppercasePassword: false}
	repo := seededRepo(raw)
	scheme := password.Scheme{UppercasePassword: true, AcceptAlternateDigest: true}
	uc := newUseCase(t, repo, scheme)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "R1", Senha: "senha123"})
	require.NoError(t, err)

	assert.Equal(t, "1001", repo.updatedFor)
	assert.Equal(t, scheme.Digest("R1", "senha123"), repo.updatedTo)
}

func TestVerify(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Subject{CodUsuario: "3001", Nome: "D1", Perfil: "diretor"}, "test", 60)
	require.NoError(t, err)

	id, err := auth.Verify(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDiretor, id.Perfil)

	_, err = auth.Verify(testSecret, "basura")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	tok, err = pkgjwt.Generate(testSecret, pkgjwt.Subject{CodUsuario: "9", Perfil: "admin"}, "test", 60)
	require.NoError(t, err)
	_, err = auth.Verify(testSecret, tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "un perfil desconocido invalida el token")
}
