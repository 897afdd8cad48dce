// Package password implementa la verificación de contraseñas de agr_usuarios.
//
// El esquema heredado guarda md5_hex(UPPER(login) + senha). Existen datos con dos
// variantes de senha (en mayúsculas o tal cual); Scheme fija cuál es la canónica y
// permite migrar la otra, o ambas a bcrypt, en el primer login correcto.
package password

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scheme reglas de hash y verificación.
type Scheme struct {
	// UppercasePassword: la variante canónica pasa la senha a mayúsculas antes del digest.
	UppercasePassword bool
	// AcceptAlternateDigest acepta la variante no canónica (y pide re-hash).
	AcceptAlternateDigest bool
	// UpgradeToBcrypt: los hashes MD5 válidos se reescriben con bcrypt.
	UpgradeToBcrypt bool
	// BcryptCost costo de bcrypt; 0 = bcrypt.DefaultCost.
	BcryptCost int
}

// Result resultado de Verify.
type Result struct {
	OK          bool
	NeedsRehash bool // el hash guardado no está en el esquema de escritura actual
}

// NormalizeLogin pasa el login a mayúsculas con reglas Unicode completas (ß -> SS).
func NormalizeLogin(login string) string {
	return toUpper(login)
}

// Un cases.Caser tiene estado; se crea uno por llamada.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Digest calcula el digest canónico md5_hex(UPPER(login) + senha').
func (s Scheme) Digest(login, senha string) string {
	return md5Hex(NormalizeLogin(login) + s.passwordMaterial(senha, s.UppercasePassword))
}

func (s Scheme) alternateDigest(login, senha string) string {
	return md5Hex(NormalizeLogin(login) + s.passwordMaterial(senha, !s.UppercasePassword))
}

func (s Scheme) passwordMaterial(senha string, upper bool) string {
	if upper {
		return toUpper(senha)
	}
	return senha
}

// Hash produce el valor a persistir en agr_usuarios.senha para una senha nueva o migrada.
func (s Scheme) Hash(login, senha string) (string, error) {
	if !s.UpgradeToBcrypt {
		return s.Digest(login, senha), nil
	}
	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(s.passwordMaterial(senha, s.UppercasePassword)), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la senha con el hash guardado.
func (s Scheme) Verify(stored, login, senha string) Result {
	if isBcrypt(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(s.passwordMaterial(senha, s.UppercasePassword)))
		return Result{OK: err == nil}
	}
	if equalDigest(stored, s.Digest(login, senha)) {
		return Result{OK: true, NeedsRehash: s.UpgradeToBcrypt}
	}
	if s.AcceptAlternateDigest && equalDigest(stored, s.alternateDigest(login, senha)) {
		return Result{OK: true, NeedsRehash: true}
	}
	return Result{}
}

func isBcrypt(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

func equalDigest(stored, computed string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(computed)) == 1
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
