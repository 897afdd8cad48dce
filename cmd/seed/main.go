// seed carga una organización de ejemplo (diretor, coordenadores, representantes,
// clientes y grupos) en una base recién migrada.
//
// Uso: go run ./cmd/seed [senha]
// La senha por defecto de todos los usuarios es "senha123".
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agendarep-api/internal/migrate"
	"github.com/jhoicas/agendarep-api/pkg/config"
	"github.com/jhoicas/agendarep-api/pkg/logger"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

var (
	users = []*entity.User{
		{CodUsuario: "3001", Nome: "DIRETOR", Perfil: entity.RoleDiretor},
		{CodUsuario: "2001", Nome: "COORD NORTE", Perfil: entity.RoleCoordenador},
		{CodUsuario: "2002", Nome: "COORD SUL", Perfil: entity.RoleCoordenador},
		{CodUsuario: "1001", Nome: "ANA", Perfil: entity.RoleRepresentante, CoordenadorID: "2001"},
		{CodUsuario: "1002", Nome: "BRUNO", Perfil: entity.RoleRepresentante, CoordenadorID: "2001"},
		{CodUsuario: "1003", Nome: "CARLA", Perfil: entity.RoleRepresentante, CoordenadorID: "2002"},
	}
	groups = []*entity.Group{
		{ID: "LB", Nome: "Linha Branca"},
		{ID: "EP", Nome: "Eletroportáteis"},
	}
	customers = []*entity.Customer{
		{ID: "C001", Nome: "Mercado Central", Telefone: "1133330001", CodRepresentante: "1001"},
		{ID: "C002", Nome: "Loja do Bairro", Telefone: "1133330002", CodRepresentante: "1001"},
		{ID: "C003", Nome: "Casa & Lar", Telefone: "1133330003", CodRepresentante: "1002"},
		{ID: "C004", Nome: "Magazine Sul", Telefone: "5133330004", CodRepresentante: "1003"},
	}
)

func main() {
	senha := "senha123"
	if len(os.Args) > 1 {
		senha = os.Args[1]
	}
	cfg := config.LoadUnvalidated()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := migrate.Up(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}

	scheme := password.Scheme{
		UppercasePassword: cfg.Auth.UppercasePassword,
		UpgradeToBcrypt:   cfg.Auth.UpgradeToBcrypt,
	}
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	// Coordenadores y diretor primero: los representantes referencian coordenador_id.
	for _, u := range users {
		if u.PasswordHash, err = scheme.Hash(u.Nome, senha); err != nil {
			log.Fatal().Err(err).Msg("hash de senha")
		}
		skipDuplicate(log, userRepo.Create(ctx, u), "usuario", u.CodUsuario)
	}
	for _, g := range groups {
		if err := customerRepo.CreateGroup(ctx, g); err != nil {
			log.Fatal().Err(err).Str("id_grupo", g.ID).Msg("grupo")
		}
	}
	for i, c := range customers {
		skipDuplicate(log, customerRepo.Create(ctx, c), "cliente", c.ID)
		for j, g := range groups {
			potencial := decimal.NewFromInt(int64(5000 * (i + j + 1)))
			comprado := potencial.Div(decimal.NewFromInt(4)).Round(2)
			if err := customerRepo.LinkGroup(ctx, c.ID, g.ID, potencial, comprado); err != nil {
				log.Fatal().Err(err).Str("id_cliente", c.ID).Str("id_grupo", g.ID).Msg("vínculo cliente/grupo")
			}
		}
	}
	log.Info().
		Int("usuarios", len(users)).
		Int("clientes", len(customers)).
		Int("grupos", len(groups)).
		Msg("seed completado")
}

func skipDuplicate(log *logger.Logger, err error, kind, id string) {
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrDuplicate):
		log.Warn().Str(kind, id).Msg("ya existe; se mantiene")
	default:
		log.Fatal().Err(err).Str(kind, id).Msg("seed " + kind)
	}
}
