package entity

import "fmt"

// Role perfil de un usuario; conjunto cerrado.
type Role string

// Perfiles válidos (valores persistidos en agr_usuarios.perfil).
const (
	RoleRepresentante Role = "representante"
	RoleCoordenador   Role = "coordenador"
	RoleDiretor       Role = "diretor"
)

// ParseRole valida un perfil leído de la DB o de un token.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleRepresentante, RoleCoordenador, RoleDiretor:
		return r, nil
	default:
		return "", fmt.Errorf("perfil desconocido: %q", s)
	}
}

// IsManagement indica si el perfil puede actuar sobre datos de otros representantes.
func (r Role) IsManagement() bool {
	return r == RoleCoordenador || r == RoleDiretor
}

// User representa un registro de agr_usuarios.
type User struct {
	CodUsuario    string
	Nome          string
	Perfil        Role
	CoordenadorID string // vacío si no aplica; solo significativo para representantes
	PasswordHash  string // agr_usuarios.senha (md5 heredado o bcrypt)
}

// Identity identidad autenticada de la petición (decodificada del token).
type Identity struct {
	CodUsuario    string
	Nome          string
	Perfil        Role
	CoordenadorID string
}

// Identity devuelve la identidad que se embebe en el token al emitirlo.
func (u *User) Identity() Identity {
	return Identity{
		CodUsuario:    u.CodUsuario,
		Nome:          u.Nome,
		Perfil:        u.Perfil,
		CoordenadorID: u.CoordenadorID,
	}
}
