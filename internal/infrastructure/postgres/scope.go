package postgres

import (
	"fmt"

	"github.com/jhoicas/agendarep-api/internal/domain/access"
)

// ownerPredicate traduce un alcance a un predicado SQL sobre la columna del
// representante dueño. argPos es la posición del placeholder que se usaría.
// Devuelve el predicado y los argumentos que consume (cero o uno).
func ownerPredicate(s access.Scope, column string, argPos int) (string, []any, error) {
	switch s.Kind {
	case access.KindOwner:
		return fmt.Sprintf("%s = $%d", column, argPos), []any{s.Code}, nil
	case access.KindTeam:
		return fmt.Sprintf("%s IN (SELECT codusuario FROM agr_usuarios WHERE coordenador_id = $%d AND perfil = 'representante')", column, argPos), []any{s.Code}, nil
	case access.KindAll:
		return "TRUE", nil, nil
	default:
		return "", nil, fmt.Errorf("alcance inválido: %s", s.Kind)
	}
}
