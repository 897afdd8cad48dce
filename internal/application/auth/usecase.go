package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
	"github.com/jhoicas/agendarep-api/pkg/jwt"
	"github.com/jhoicas/agendarep-api/pkg/logger"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y verificación de token.
// Es stateless: no persiste sesiones, solo (eventualmente) el re-hash de la senha.
type AuthUseCase struct {
	userRepo repository.UserRepository
	scheme   password.Scheme
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, scheme password.Scheme, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, scheme: scheme, jwtCfg: jwtCfg, log: log}
}

// Login verifica login/senha, emite el JWT y retorna token + usuario.
// Login inexistente y senha errada devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	loginUpper := password.NormalizeLogin(in.Login)
	candidates, err := uc.userRepo.FindByLogin(ctx, loginUpper)
	if err != nil {
		return nil, err
	}
	for _, u := range candidates {
		res := uc.scheme.Verify(u.PasswordHash, loginUpper, in.Senha)
		if !res.OK {
			continue
		}
		if res.NeedsRehash {
			uc.rehash(ctx, u, loginUpper, in.Senha)
		}
		return uc.issue(u)
	}
	return nil, domain.ErrInvalidCredentials
}

// rehash migra la senha al esquema de escritura actual. Un fallo no impide el login.
func (uc *AuthUseCase) rehash(ctx context.Context, u *entity.User, loginUpper, senha string) {
	h, err := uc.scheme.Hash(loginUpper, senha)
	if err == nil {
		err = uc.userRepo.UpdatePasswordHash(ctx, u.CodUsuario, h)
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("codusuario", u.CodUsuario).Msg("re-hash de senha falló")
		return
	}
	uc.log.Info().Str("codusuario", u.CodUsuario).Msg("senha migrada al esquema actual")
}

func (uc *AuthUseCase) issue(u *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		CodUsuario:    u.CodUsuario,
		Nome:          u.Nome,
		Perfil:        string(u.Perfil),
		CoordenadorID: u.CoordenadorID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{
		Sucesso: true,
		Token:   token,
		Usuario: ToUsuarioResponse(u.Identity()),
	}, nil
}

// Verify valida el token y devuelve la identidad embebida.
// Cualquier fallo (firma, expiración, formato, perfil desconocido) es ErrInvalidToken.
func Verify(secret, token string) (entity.Identity, error) {
	claims, err := jwt.Parse(secret, token)
	if err != nil {
		return entity.Identity{}, domain.ErrInvalidToken
	}
	role, err := entity.ParseRole(claims.Perfil)
	if err != nil || claims.CodUsuario == "" {
		return entity.Identity{}, domain.ErrInvalidToken
	}
	return entity.Identity{
		CodUsuario:    claims.CodUsuario,
		Nome:          claims.Nome,
		Perfil:        role,
		CoordenadorID: claims.CoordenadorID,
	}, nil
}

// ToUsuarioResponse proyección pública de la identidad.
func ToUsuarioResponse(id entity.Identity) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		CodUsuario:    id.CodUsuario,
		Nome:          id.Nome,
		Perfil:        string(id.Perfil),
		CoordenadorID: id.CoordenadorID,
	}
}
