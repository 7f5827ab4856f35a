package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PROPOSTA_CONFIG_PATH", "PROPOSTA_SERVER_HOST", "PROPOSTA_SERVER_PORT",
		"PROPOSTA_TRANSPORT_MODE", "PROPOSTA_LOG_LEVEL", "PROPOSTA_LOG_FORMAT",
		"PROPOSTA_LOG_PATH", "API_KEY", "GEMINI_API_KEY", "PROPOSTA_GEMINI_MODEL",
		"PROPOSTA_GEMINI_BASE_URL", "PROPOSTA_GEMINI_TIMEOUT", "PROPOSTA_PRINT_DELAY",
		"PROPOSTA_TAX_RATE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	require.Equal(t, 500*time.Millisecond, cfg.Print.Delay)
	require.Equal(t, float64(0), cfg.Pricing.TaxRate)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "proposta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
gemini:
  api_key: from-file
  model: gemini-2.0-flash
print:
  delay: 1s
pricing:
  tax_rate: 0.05
`), 0o600))

	t.Setenv("PROPOSTA_CONFIG_PATH", path)
	t.Setenv("PROPOSTA_SERVER_PORT", "7070")
	t.Setenv("API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "legacy", cfg.Gemini.APIKey)
	require.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	require.Equal(t, time.Second, cfg.Print.Delay)
	require.Equal(t, 0.05, cfg.Pricing.TaxRate)

	t.Setenv("GEMINI_API_KEY", "preferred")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "preferred", cfg.Gemini.APIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")

	t.Setenv("PROPOSTA_SERVER_PORT", "abc")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("PROPOSTA_SERVER_PORT", "")
	t.Setenv("PROPOSTA_TRANSPORT_MODE", "grpc")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("PROPOSTA_TRANSPORT_MODE", "")
	t.Setenv("PROPOSTA_TAX_RATE", "-0.1")
	_, err = Load()
	require.Error(t, err)
}
