package config

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_DIR", "DASHBOARD_ADDR", "SIGN", "ADMIN_LOGIN", "ADMIN_PASSWORD_HASH", "MONGODB_CONNSTRING", "MONGODB_DATABASE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(log.New(io.Discard, "", 0))
	require.NoError(t, err)

	assert.Equal(t, DEFAULT_DATA_DIR, cfg.DataDir)
	assert.Equal(t, DEFAULT_DASHBOARD_ADDR, cfg.DashboardAddr)
	assert.Equal(t, DEFAULT_ADMIN_LOGIN, cfg.AdminLogin)
	assert.Equal(t, DEFAULT_MONGO_DATABASE, cfg.MongoDatabase)
	assert.Empty(t, cfg.MongoConnString)
	assert.NotEmpty(t, cfg.SignKey)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte("admin")))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/fbs")
	t.Setenv("SIGN", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "hash")

	cfg, err := Load(log.New(io.Discard, "", 0))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fbs", cfg.DataDir)
	assert.Equal(t, "secret", cfg.SignKey)
	assert.Equal(t, "hash", cfg.AdminPasswordHash)

	_, err = GetSecret("FBS_SURELY_UNSET_KEY")
	assert.Error(t, err)
}
