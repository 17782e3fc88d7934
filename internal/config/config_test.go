package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_PORT", "SESSION_STORE", "GIN_MODE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "tasks.db", cfg.DBPath)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_PORT", "")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MySQLDefaultPort(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverMySQL)
	t.Setenv("DB_PORT", "")

	assert.Equal(t, "3306", Load().DBPort)
}
