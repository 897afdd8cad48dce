package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
)

func TestOwnerPredicate(t *testing.T) {
	cases := []struct {
		name     string
		scope    access.Scope
		wantSQL  string
		wantArgs []any
	}{
		{"owner", access.Owner("1001"), "c.cod_representante = $3", []any{"1001"}},
		{"team", access.Team("2001"), "c.cod_representante IN (SELECT codusuario FROM agr_usuarios WHERE coordenador_id = $3 AND perfil = 'representante')", []any{"2001"}},
		{"all", access.All(), "TRUE", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := ownerPredicate(tc.scope, "c.cod_representante", 3)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}

	_, _, err := ownerPredicate(access.Scope{}, "c.cod_representante", 1)
	assert.Error(t, err, "el alcance cero nunca se traduce a TRUE")
}
