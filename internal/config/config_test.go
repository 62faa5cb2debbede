package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Admission.Backend)
	assert.Equal(t, 60, cfg.Admission.Limit)
	assert.Equal(t, time.Minute, cfg.Admission.Window)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Server.TrustedProxies)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTHENTIQA_ADMISSION_BACKEND", "REDIS")
	t.Setenv("AUTHENTIQA_ADMISSION_LIMIT", "5")
	t.Setenv("AUTHENTIQA_ADMISSION_WINDOW", "10s")
	t.Setenv("AUTHENTIQA_CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	t.Setenv("AUTHENTIQA_SERVER_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Admission.Backend)
	assert.Equal(t, 5, cfg.Admission.Limit)
	assert.Equal(t, 10*time.Second, cfg.Admission.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Server.TrustedProxies)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_UnknownAdmissionBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTHENTIQA_ADMISSION_BACKEND", "memcached")

	_, err := config.Load()

	assert.Error(t, err)
}
