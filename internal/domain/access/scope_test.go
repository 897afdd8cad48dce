package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/access"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

var (
	rep   = entity.Identity{CodUsuario: "1001", Nome: "R1", Perfil: entity.RoleRepresentante, CoordenadorID: "2001"}
	coord = entity.Identity{CodUsuario: "2001", Nome: "Cdr1", Perfil: entity.RoleCoordenador}
	dir   = entity.Identity{CodUsuario: "3001", Nome: "D1", Perfil: entity.RoleDiretor}
)

func TestResolve_TablaDeAlcance(t *testing.T) {
	cases := []struct {
		name   string
		id     entity.Identity
		target string
		want   access.Scope
	}{
		{"representante sin target", rep, "", access.Owner("1001")},
		{"representante ignora target", rep, "1009", access.Owner("1001")},
		{"coordenador con target", coord, "1009", access.Owner("1009")},
		{"coordenador sin target", coord, "", access.Team("2001")},
		{"coordenador target en blanco", coord, "  ", access.Team("2001")},
		{"diretor con target", dir, "1001", access.Owner("1001")},
		{"diretor sin target", dir, "", access.All()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := access.Resolve(tc.id, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_PerfilDesconocido_Forbidden(t *testing.T) {
	_, err := access.Resolve(entity.Identity{CodUsuario: "9", Perfil: "admin"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRepresentatives(t *testing.T) {
	s, err := access.Representatives(coord)
	require.NoError(t, err)
	assert.Equal(t, access.Team("2001"), s)

	s, err = access.Representatives(dir)
	require.NoError(t, err)
	assert.Equal(t, access.All(), s)

	_, err = access.Representatives(rep)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVisitOwner(t *testing.T) {
	owner, err := access.VisitOwner(rep, "1009")
	require.NoError(t, err)
	assert.Equal(t, "1001", owner, "un representante siempre agenda para sí mismo")

	owner, err = access.VisitOwner(coord, "1001")
	require.NoError(t, err)
	assert.Equal(t, "1001", owner)

	owner, err = access.VisitOwner(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "3001", owner)

	_, err = access.VisitOwner(entity.Identity{Perfil: entity.RoleDiretor}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScope_Allows(t *testing.T) {
	rep := entity.RoleRepresentante
	assert.True(t, access.Owner("1001").Allows("1001", rep, "2001"))
	assert.False(t, access.Owner("1001").Allows("1009", rep, "2001"))
	assert.True(t, access.Team("2001").Allows("1001", rep, "2001"))
	assert.False(t, access.Team("2001").Allows("1009", rep, "2009"))
	assert.False(t, access.Team("2001").Allows("1009", rep, ""))
	assert.False(t, access.Team("2001").Allows("2005", entity.RoleCoordenador, "2001"), "el equipo solo incluye representantes")
	assert.True(t, access.All().Allows("1009", "", ""))
	assert.False(t, access.Scope{}.Allows("1001", rep, "2001"))
}

func TestNamesOtherRepresentative(t *testing.T) {
	assert.True(t, access.NamesOtherRepresentative(coord, access.Owner("1009")))
	assert.False(t, access.NamesOtherRepresentative(coord, access.Team("2001")))
	assert.False(t, access.NamesOtherRepresentative(dir, access.Owner("1009")))
}
