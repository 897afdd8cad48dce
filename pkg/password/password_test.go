package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agendarep-api/pkg/password"
)

// Vectores md5 calculados fuera de la aplicación.
const (
	digestUpper = "22401feb6428b6adba2b470147e5d2f6" // md5("R1SENHA123")
	digestRaw   = "72c323cddbcb04029b29b9b48175611e" // md5("R1senha123")
)

func TestNormalizeLogin_Unicode(t *testing.T) {
	assert.Equal(t, "JOÃO", password.NormalizeLogin("joão"))
	assert.Equal(t, "STRASSE", password.NormalizeLogin("straße"))
}

func TestDigest_VarianteCanonica(t *testing.T) {
	upper := password.Scheme{UppercasePassword: true}
	raw := password.Scheme{UppercasePassword: false}

	assert.Equal(t, digestUpper, upper.Digest("r1", "senha123"))
	assert.Equal(t, digestRaw, raw.Digest("r1", "senha123"))
}

func TestVerify_DigestCanonico(t *testing.T) {
	s := password.Scheme{UppercasePassword: true}

	res := s.Verify(digestUpper, "R1", "SeNhA123")
	assert.True(t, res.OK, "la senha no distingue mayúsculas en la variante canónica")
	assert.False(t, res.NeedsRehash)

	assert.False(t, s.Verify(digestUpper, "R1", "otra").OK)
	assert.False(t, s.Verify(digestRaw, "R1", "senha123").OK,
		"la variante alternativa no se acepta si no está habilitada")
}

func TestVerify_DigestEnMayusculasHex(t *testing.T) {
	s := password.Scheme{UppercasePassword: true}
	assert.True(t, s.Verify(strings.ToUpper(digestUpper), "r1", "senha123").OK)
}

func TestVerify_VarianteAlternativa_PideRehash(t *testing.T) {
	s := password.Scheme{UppercasePassword: true, AcceptAlternateDigest: true}

	res := s.Verify(digestRaw, "R1", "senha123")
	assert.True(t, res.OK)
	assert.True(t, res.NeedsRehash)

	h, err := s.Hash("R1", "senha123")
	require.NoError(t, err)
	assert.Equal(t, digestUpper, h, "el re-hash converge a la variante canónica")
}

func TestBcrypt_UpgradeYVerify(t *testing.T) {
	s := password.Scheme{UppercasePassword: true, UpgradeToBcrypt: true, BcryptCost: 4}

	res := s.Verify(digestUpper, "R1", "senha123")
	require.True(t, res.OK)
	assert.True(t, res.NeedsRehash, "un MD5 válido se migra a bcrypt")

	h, err := s.Hash("R1", "senha123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$2"))

	res = s.Verify(h, "R1", "SENHA123")
	assert.True(t, res.OK)
	assert.False(t, res.NeedsRehash)
	assert.False(t, s.Verify(h, "R1", "errada").OK)
}
