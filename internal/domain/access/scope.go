// Package access concentra la política de alcance por perfil.
//
// Toda consulta sobre filas que pertenecen a un representante (clientes, visitas)
// obtiene su Scope de Resolve; los adaptadores de persistencia solo lo traducen.
//
//	perfil         | codusuario pedido | alcance
//	representante  | ignorado          | Owner(propio)
//	coordenador    | sí                | Owner(pedido)
//	coordenador    | no                | Team(propio)
//	diretor        | sí                | Owner(pedido)
//	diretor        | no                | All
package access

import (
	"strings"

	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// Kind tipo de alcance.
type Kind int

const (
	// KindOwner filas de un único representante (Code).
	KindOwner Kind = iota + 1
	// KindTeam filas de los usuarios con perfil representante cuyo coordenador_id = Code.
	KindTeam
	// KindAll sin restricción.
	KindAll
)

func (k Kind) String() string {
	switch k {
	case KindOwner:
		return "owner"
	case KindTeam:
		return "team"
	case KindAll:
		return "all"
	default:
		return "invalid"
	}
}

// Scope predicado sobre el representante dueño de una fila.
type Scope struct {
	Kind Kind
	Code string
}

// Owner alcance de un representante.
func Owner(codRepresentante string) Scope { return Scope{Kind: KindOwner, Code: codRepresentante} }

// Team alcance del equipo de un coordenador.
func Team(codCoordenador string) Scope { return Scope{Kind: KindTeam, Code: codCoordenador} }

// All alcance sin restricción.
func All() Scope { return Scope{Kind: KindAll} }

// Allows indica si una fila del dueño dado (perfil y coordenador) entra en el alcance.
func (s Scope) Allows(codRepresentante string, perfil entity.Role, coordenadorID string) bool {
	switch s.Kind {
	case KindOwner:
		return codRepresentante == s.Code
	case KindTeam:
		return perfil == entity.RoleRepresentante && coordenadorID != "" && coordenadorID == s.Code
	case KindAll:
		return true
	default:
		return false
	}
}

// Resolve aplica la tabla de alcance al perfil de la identidad y al representante pedido.
// No verifica que el representante pedido pertenezca al equipo del coordenador.
func Resolve(id entity.Identity, target string) (Scope, error) {
	target = strings.TrimSpace(target)
	switch id.Perfil {
	case entity.RoleRepresentante:
		if id.CodUsuario == "" {
			return Scope{}, domain.ErrUnauthorized
		}
		return Owner(id.CodUsuario), nil
	case entity.RoleCoordenador:
		if target != "" {
			return Owner(target), nil
		}
		return Team(id.CodUsuario), nil
	case entity.RoleDiretor:
		if target != "" {
			return Owner(target), nil
		}
		return All(), nil
	default:
		return Scope{}, domain.ErrForbidden
	}
}

// Representatives alcance del listado de representantes (/usuarios/representantes).
func Representatives(id entity.Identity) (Scope, error) {
	switch id.Perfil {
	case entity.RoleCoordenador:
		return Team(id.CodUsuario), nil
	case entity.RoleDiretor:
		return All(), nil
	default:
		return Scope{}, domain.ErrForbidden
	}
}

// VisitOwner representante dueño de una visita nueva (o cuya cartera se consulta para agendar).
// Coordenador y diretor pueden actuar en nombre de un representante indicándolo.
func VisitOwner(id entity.Identity, requested string) (string, error) {
	owner := id.CodUsuario
	if requested = strings.TrimSpace(requested); requested != "" && id.Perfil.IsManagement() {
		owner = requested
	}
	if owner == "" {
		return "", domain.ErrInvalidInput
	}
	return owner, nil
}

// NamesOtherRepresentative indica si el alcance apunta a un representante distinto
// del que hace la petición (caso sujeto a la verificación de cadena de reporte).
func NamesOtherRepresentative(id entity.Identity, s Scope) bool {
	return id.Perfil == entity.RoleCoordenador && s.Kind == KindOwner && s.Code != id.CodUsuario
}
