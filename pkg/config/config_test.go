package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 1440, cfg.JWT.Expiration, "el token dura un día por defecto")
	assert.Equal(t, 8501, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8501", cfg.HTTP.Addr())
	assert.True(t, cfg.Auth.UppercasePassword)
	assert.False(t, cfg.Auth.AcceptRawPasswordDigest)
	assert.False(t, cfg.Access.EnforceReportingChain)
	assert.True(t, cfg.Access.ScopeWrites)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("JWT_EXPIRATION_MINUTES", "30")
	t.Setenv("ACCESS_ENFORCE_REPORTING_CHAIN", "true")
	t.Setenv("AUTH_UPPERCASE_PASSWORD", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 30, cfg.JWT.Expiration)
	assert.True(t, cfg.Access.EnforceReportingChain)
	assert.False(t, cfg.Auth.UppercasePassword)
}

func TestLoad_SinSecret_RetornaError(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "agenda", Password: "p@ss", DBName: "agendarep", SSLMode: "disable"}
	assert.Equal(t, "postgres://agenda:p%40ss@db:5432/agendarep?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
