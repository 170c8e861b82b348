package inits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("CLIENT_ID", "test-client-id")
	t.Setenv("CLIENT_SECRET", "test-client-secret")
	t.Setenv("DATA_DIR", "/tmp/problems")
}

func TestConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Config()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.System.Listen)
	assert.Equal(t, "db.sqlite3", cfg.System.DBPath)
	assert.Equal(t, "/tmp/problems", cfg.System.DataDir)
	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, "test-secret", cfg.Security.SecretKey)
	assert.Equal(t, "test-client-id", cfg.Security.ClientID)
	assert.Equal(t, "test-client-secret", cfg.Security.ClientSecret)
}

func TestConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LISTEN", ":9000")
	t.Setenv("DB_PATH", "/var/lib/app/db.sqlite3")

	cfg, err := Config()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.System.Listen)
	assert.Equal(t, "/var/lib/app/db.sqlite3", cfg.System.DBPath)
}

func TestConfigMode(t *testing.T) {
	tests := []struct {
		mode     string
		wantProd bool
	}{
		{mode: "production", wantProd: true},
		{mode: "Prod", wantProd: true},
		{mode: "p", wantProd: true},
		{mode: "dev", wantProd: false},
		{mode: "", wantProd: false},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("MODE", tt.mode)

			cfg, err := Config()
			require.NoError(t, err)
			assert.Equal(t, tt.wantProd, cfg.System.IsProd)
		})
	}
}

func TestConfigMissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "")

	// required 变量为空时直接报错，不允许半配置启动
	_, err := Config()
	assert.Error(t, err)
}
