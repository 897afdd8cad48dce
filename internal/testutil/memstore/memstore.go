// Package memstore implementa los puertos de repositorio en memoria para tests.
// Aplica el mismo alcance que los adaptadores Postgres usando access.Scope.Allows.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

type link struct {
	idCliente string
	idGrupo   string
	potencial decimal.Decimal
	comprado  decimal.Decimal
}

// Store estado compartido por los tres repositorios.
type Store struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	customers map[string]*entity.Customer
	groups    map[string]*entity.Group
	links     []*link
	visits    []*entity.Visit
	nextID    int64

	// Now reloj usado al confirmar visitas.
	Now func() time.Time
}

// New devuelve un Store vacío.
func New() *Store {
	return &Store{
		users:     map[string]*entity.User{},
		customers: map[string]*entity.Customer{},
		groups:    map[string]*entity.Group{},
		Now:       time.Now,
	}
}

// DemoPassword senha de todos los usuarios de Demo.
const DemoPassword = "senha123"

// Demo organización de ejemplo:
//
//	D1 (3001) diretor
//	Cdr1 (2001) coordenador de R1 (1001) y R2 (1002)
//	Cdr9 (2009) coordenador de R9 (1009)
//
// Clientes C1 (R1), C2 (R2) y C9 (R9), cada uno con el grupo G1 y potencial 1000.
func Demo(scheme password.Scheme) *Store {
	s := New()
	ctx := context.Background()
	users := []*entity.User{
		{CodUsuario: "3001", Nome: "D1", Perfil: entity.RoleDiretor},
		{CodUsuario: "2001", Nome: "Cdr1", Perfil: entity.RoleCoordenador},
		{CodUsuario: "2009", Nome: "Cdr9", Perfil: entity.RoleCoordenador},
		{CodUsuario: "1001", Nome: "R1", Perfil: entity.RoleRepresentante, CoordenadorID: "2001"},
		{CodUsuario: "1002", Nome: "R2", Perfil: entity.RoleRepresentante, CoordenadorID: "2001"},
		{CodUsuario: "1009", Nome: "R9", Perfil: entity.RoleRepresentante, CoordenadorID: "2009"},
	}
	for _, u := range users {
		u.PasswordHash = scheme.Digest(u.Nome, DemoPassword)
		_ = s.UserRepo().Create(ctx, u)
	}
	cr := s.CustomerRepo()
	_ = cr.CreateGroup(ctx, &entity.Group{ID: "G1", Nome: "Linha Branca"})
	_ = cr.CreateGroup(ctx, &entity.Group{ID: "G2", Nome: "Eletroportáteis"})
	for _, c := range []*entity.Customer{
		{ID: "C1", Nome: "Cliente Um", Telefone: "1111", CodRepresentante: "1001"},
		{ID: "C2", Nome: "Cliente Dois", Telefone: "2222", CodRepresentante: "1002"},
		{ID: "C9", Nome: "Cliente Nove", Telefone: "9999", CodRepresentante: "1009"},
	} {
		_ = cr.Create(ctx, c)
		_ = cr.LinkGroup(ctx, c.ID, "G1", decimal.NewFromInt(1000), decimal.NewFromInt(250))
	}
	return s
}

// UserRepo repositorio de usuarios.
func (s *Store) UserRepo() *UserRepo { return &UserRepo{s} }

// CustomerRepo repositorio de clientes.
func (s *Store) CustomerRepo() *CustomerRepo { return &CustomerRepo{s} }

// VisitRepo repositorio de visitas.
func (s *Store) VisitRepo() *VisitRepo { return &VisitRepo{s} }

// allows: s.mu ya tomado.
func (s *Store) allows(scope access.Scope, codRepresentante string) bool {
	var (
		perfil entity.Role
		coord  string
	)
	if u, ok := s.users[codRepresentante]; ok {
		perfil, coord = u.Perfil, u.CoordenadorID
	}
	return scope.Allows(codRepresentante, perfil, coord)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) FindByLogin(_ context.Context, loginUpper string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if password.NormalizeLogin(u.Nome) == loginUpper {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepo) GetByCode(_ context.Context, cod string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[cod]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) ListRepresentatives(_ context.Context, scope access.Scope) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.Perfil == entity.RoleRepresentante && scope.Allows(u.CodUsuario, u.Perfil, u.CoordenadorID) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *UserRepo) UpdatePasswordHash(_ context.Context, cod, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[cod]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.CodUsuario]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.s.users[u.CodUsuario] = &cp
	return nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRepo implementa repository.CustomerRepository.
type CustomerRepo struct{ s *Store }

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// rows filas del join ordenadas por nome del cliente e id_grupo; s.mu ya tomado.
func (r *CustomerRepo) rows(f repository.CustomerFilter) []entity.CustomerGroupRow {
	var customers []*entity.Customer
	search := strings.ToLower(f.Search)
	for _, c := range r.s.customers {
		if !r.s.allows(f.Scope, c.CodRepresentante) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Nome), search) {
			continue
		}
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Nome < customers[j].Nome })

	var out []entity.CustomerGroupRow
	for _, c := range customers {
		tel := c.Telefone
		var links []*link
		for _, l := range r.s.links {
			if l.idCliente == c.ID {
				links = append(links, l)
			}
		}
		sort.Slice(links, func(i, j int) bool { return links[i].idGrupo < links[j].idGrupo })
		if len(links) == 0 {
			out = append(out, entity.CustomerGroupRow{IDCliente: c.ID, NomeCliente: c.Nome, Telefone: &tel})
			continue
		}
		for _, l := range links {
			idGrupo := l.idGrupo
			var nomeGrupo *string
			if g, ok := r.s.groups[l.idGrupo]; ok {
				n := g.Nome
				nomeGrupo = &n
			}
			out = append(out, entity.CustomerGroupRow{
				IDCliente:       c.ID,
				NomeCliente:     c.Nome,
				Telefone:        &tel,
				IDGrupo:         &idGrupo,
				NomeGrupo:       nomeGrupo,
				PotencialCompra: decimal.NewNullDecimal(l.potencial),
				ValorComprado:   decimal.NewNullDecimal(l.comprado),
			})
		}
	}
	return out
}

func (r *CustomerRepo) ListWithGroups(_ context.Context, f repository.CustomerFilter) ([]entity.CustomerGroupRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := r.rows(f)
	if f.Limit <= 0 {
		return rows, nil
	}
	if f.Offset >= len(rows) {
		return []entity.CustomerGroupRow{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[f.Offset:end], nil
}

func (r *CustomerRepo) CountWithGroups(_ context.Context, f repository.CustomerFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.rows(f)), nil
}

func (r *CustomerRepo) ListByRepresentative(_ context.Context, cod string) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if c.CodRepresentante == cod {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *CustomerRepo) UpdatePotential(_ context.Context, scope access.Scope, idCliente, idGrupo string, valor decimal.Decimal) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[idCliente]
	if !ok || !r.s.allows(scope, c.CodRepresentante) {
		return false, nil
	}
	for _, l := range r.s.links {
		if l.idCliente == idCliente && l.idGrupo == idGrupo {
			l.potencial = valor
			return true, nil
		}
	}
	return false, nil
}

func (r *CustomerRepo) Totals(_ context.Context, scope access.Scope) (repository.CustomerTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t := repository.CustomerTotals{PotencialTotal: decimal.Zero, ValorComprado: decimal.Zero}
	for _, c := range r.s.customers {
		if !r.s.allows(scope, c.CodRepresentante) {
			continue
		}
		t.Customers++
		for _, l := range r.s.links {
			if l.idCliente == c.ID {
				t.PotencialTotal = t.PotencialTotal.Add(l.potencial)
				t.ValorComprado = t.ValorComprado.Add(l.comprado)
			}
		}
	}
	return t, nil
}

func (r *CustomerRepo) CreateGroup(_ context.Context, g *entity.Group) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *g
	r.s.groups[g.ID] = &cp
	return nil
}

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[c.CodRepresentante]; !ok {
		return domain.ErrInvalidInput
	}
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepo) LinkGroup(_ context.Context, idCliente, idGrupo string, potencial, comprado decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[idCliente]; !ok {
		return domain.ErrInvalidInput
	}
	if _, ok := r.s.groups[idGrupo]; !ok {
		return domain.ErrInvalidInput
	}
	r.s.links = append(r.s.links, &link{idCliente: idCliente, idGrupo: idGrupo, potencial: potencial, comprado: comprado})
	return nil
}

// ── Visitas ───────────────────────────────────────────────────────────────────

// VisitRepo implementa repository.VisitRepository.
type VisitRepo struct{ s *Store }

var _ repository.VisitRepository = (*VisitRepo)(nil)

// display completa los campos de join; s.mu ya tomado.
func (r *VisitRepo) display(v *entity.Visit) *entity.Visit {
	cp := *v
	cp.NomeCliente, cp.NomeRepresentante = "", ""
	if c, ok := r.s.customers[v.Cliente.IDCliente]; ok && v.Cliente.IDCliente != "" {
		cp.NomeCliente = c.Nome
	}
	if u, ok := r.s.users[v.CodUsuario]; ok {
		cp.NomeRepresentante = u.Nome
	}
	return &cp
}

func (r *VisitRepo) Create(_ context.Context, v *entity.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[v.CodUsuario]; !ok {
		return domain.ErrInvalidInput
	}
	if id := v.Cliente.IDCliente; id != "" {
		if _, ok := r.s.customers[id]; !ok {
			return domain.ErrInvalidInput
		}
	}
	r.s.nextID++
	v.ID = r.s.nextID
	v.Confirmado = false
	v.DataConfirmacao = nil
	stored := *v
	r.s.visits = append(r.s.visits, &stored)
	*v = *r.display(&stored)
	return nil
}

func (r *VisitRepo) List(_ context.Context, f repository.VisitFilter) ([]*entity.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Visit
	for _, v := range r.s.visits {
		if v.Data.Before(f.From) || v.Data.After(f.To) {
			continue
		}
		if !r.s.allows(f.Scope, v.CodUsuario) {
			continue
		}
		out = append(out, r.display(v))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.Before(out[j].Data)
		}
		return out[i].Hora < out[j].Hora
	})
	return out, nil
}

func (r *VisitRepo) find(scope access.Scope, id int64) *entity.Visit {
	for _, v := range r.s.visits {
		if v.ID == id && r.s.allows(scope, v.CodUsuario) {
			return v
		}
	}
	return nil
}

func (r *VisitRepo) Confirm(_ context.Context, scope access.Scope, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := r.find(scope, id)
	if v == nil {
		return false, nil
	}
	now := r.s.Now()
	v.Confirmado = true
	v.DataConfirmacao = &now
	return true, nil
}

func (r *VisitRepo) UpdateNote(_ context.Context, scope access.Scope, id int64, observacao string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := r.find(scope, id)
	if v == nil {
		return false, nil
	}
	v.Observacao = observacao
	return true, nil
}
