package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	yamlConfig := "DB_HOST: yaml-host\nDB_NAME: frescoguard\nJWT_SECRET: from-yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlConfig), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_USER=dotenv-user\n"), 0o600))
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("APP_ENV", "production")

	LoadConfig()
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_USER")
		config = Config{}
	})

	assert.Equal(t, "env-host", GetConfig("DB_HOST"))
	assert.Equal(t, "dotenv-user", GetConfig("DB_USER"))
	assert.Equal(t, "from-yaml", GetConfig("JWT_SECRET"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "frescoguard_session", GetConfig("COOKIE_NAME"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
	assert.True(t, IsProduction())
	assert.False(t, GetConfigBool("IS_PROD"))
	assert.NoError(t, ValidateConfig())
}

func TestValidateConfigReportsMissingKeys(t *testing.T) {
	config = Config{DBHost: "localhost"}
	t.Cleanup(func() { config = Config{} })

	err := ValidateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.NotContains(t, err.Error(), "DB_HOST")
}
