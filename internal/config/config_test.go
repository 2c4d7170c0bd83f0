package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{content.PathEnv, EmailEnv, AddrEnv, PortEnv, LogEnv} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Empty(t, cfg.ContentPath)
	assert.Empty(t, cfg.Email)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_PortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(PortEnv, "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_AddrWinsOverPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(PortEnv, "9090")
	t.Setenv(AddrEnv, "127.0.0.1:7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestLoad_InvalidEmail(t *testing.T) {
	clearEnv(t)
	t.Setenv(EmailEnv, "not-an-email")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EmailEnv)
}

func TestLoadDotenv_DoesNotOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOLIO_EMAIL=dotenv@example.com\nFOLIO_LOG=/tmp/folio.log\n"), 0644))
	t.Setenv(LogEnv, "/already/set.log")
	// godotenv only fills variables that are absent, not ones set to "".
	os.Unsetenv(EmailEnv)

	require.NoError(t, LoadDotenv(envFile))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv@example.com", cfg.Email)
	assert.Equal(t, "/already/set.log", cfg.LogFile)
}

func TestLoadDotenv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestConfig_PortfolioEmailOverride(t *testing.T) {
	clearEnv(t)
	cfg := &Config{Email: "override@example.com", Addr: DefaultAddr}

	p, err := cfg.Portfolio()
	require.NoError(t, err)
	assert.Equal(t, "override@example.com", p.Email)
}
