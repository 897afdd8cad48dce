package dto

// LoginRequest entrada del login.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// UsuarioResponse identidad devuelta en login y verificação (sin senha).
type UsuarioResponse struct {
	CodUsuario    string `json:"codusuario"`
	Nome          string `json:"nome"`
	Perfil        string `json:"perfil"`
	CoordenadorID string `json:"coordenador_id,omitempty"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Sucesso bool            `json:"sucesso"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// VerifyTokenResponse salida de /auth/verificar-token.
type VerifyTokenResponse struct {
	Valido  bool            `json:"valido"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RepresentanteResponse elemento de /usuarios/representantes.
type RepresentanteResponse struct {
	CodUsuario string `json:"codusuario"`
	Nome       string `json:"nome"`
}
