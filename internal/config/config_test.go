package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GRPC_ADDR", "API_TOKEN", "PROGRAM_ID", "LOG_LEVEL", "ENV"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, DefaultProgramID, cfg.ProgramID.String())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("PROGRAM_ID", "11111111111111111111111111111111")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, "11111111111111111111111111111111", cfg.ProgramID.String())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_FromDotEnvFile(t *testing.T) {
	t.Setenv("API_TOKEN", "")
	t.Setenv("GRPC_ADDR", "")
	// Unset so the file value is picked up
	require.NoError(t, os.Unsetenv("API_TOKEN"))
	require.NoError(t, os.Unsetenv("GRPC_ADDR"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_TOKEN=from-file\nGRPC_ADDR=:7070\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIToken)
	assert.Equal(t, ":7070", cfg.GRPCAddr)
}

func TestLoad_InvalidProgramID(t *testing.T) {
	t.Setenv("PROGRAM_ID", "not-base58!")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.ErrorContains(t, err, "invalid PROGRAM_ID")
}
