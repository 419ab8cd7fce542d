package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.BaseURL())
	assert.Equal(t, StorageLocal, cfg.Storage.Type)
	assert.True(t, cfg.Export.SaveToServer)
}

func TestApplyEnv_BackendURL(t *testing.T) {
	t.Run("built from parts", func(t *testing.T) {
		cfg := Default()
		cfg.applyEnv(envMap(map[string]string{
			"API_PROTOCOL": "https",
			"API_HOST":     "api.barbearia.local",
			"API_PORT":     "8443",
		}))
		assert.Equal(t, "https://api.barbearia.local:8443/api", cfg.Backend.BaseURL())
	})

	t.Run("explicit url wins", func(t *testing.T) {
		cfg := Default()
		cfg.applyEnv(envMap(map[string]string{
			"API_BASE_URL": "http://backend:8080/api",
			"API_HOST":     "ignored",
		}))
		assert.Equal(t, "http://backend:8080/api", cfg.Backend.BaseURL())
	})
}

func TestApplyEnv_S3Aliases(t *testing.T) {
	cfg := Default()
	cfg.applyEnv(envMap(map[string]string{
		"ACESS_KEY_S3":       "AKIA",
		"ACESS_SECRET_KEY":   "secret",
		"S3_REGION":          "sa-east-1",
		"S3_BUCKET_NAME":     "barber-docs",
		"AWS_S3_ENDPOINT":    "https://objects.example.com",
		"AWS_S3_BUCKET":      "",
		"S3_BUCKET_ENDPOINT": "  ",
	}))

	assert.Equal(t, "AKIA", cfg.S3.AccessKeyID)
	assert.Equal(t, "secret", cfg.S3.SecretAccessKey)
	assert.Equal(t, "sa-east-1", cfg.S3.Region)
	assert.Equal(t, "barber-docs", cfg.S3.Bucket)
	assert.Equal(t, "https://objects.example.com", cfg.S3.Endpoint)
	// ключи заданы, STORAGE_TYPE нет
	assert.Equal(t, StorageS3, cfg.Storage.Type)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_ExplicitStorageTypeWins(t *testing.T) {
	cfg := Default()
	cfg.applyEnv(envMap(map[string]string{
		"STORAGE_TYPE":          "LOCAL",
		"AWS_ACCESS_KEY_ID":     "AKIA",
		"AWS_SECRET_ACCESS_KEY": "secret",
	}))

	assert.Equal(t, StorageLocal, cfg.Storage.Type)
}

func TestApplyEnv_SaveToServer(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"false", false},
		{"true", true},
		{"0", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := Default()
			cfg.applyEnv(envMap(map[string]string{"SAVE_TO_SERVER": tt.value}))
			assert.Equal(t, tt.want, cfg.Export.SaveToServer)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"unknown storage", func(c *Config) { c.Storage.Type = "ftp" }},
		{"s3 without bucket", func(c *Config) { c.Storage.Type = StorageS3 }},
		{"bad timezone", func(c *Config) { c.Workflow.Timezone = "Mars/Olympus" }},
		{"zero submit timeout", func(c *Config) { c.Workflow.SubmitTimeout = 0 }},
		{"tracing without endpoint", func(c *Config) { c.Tracing.Enabled = true }},
		{"rate limit without burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyEnv_InvalidPortFailsValidation(t *testing.T) {
	cfg := Default()
	cfg.applyEnv(envMap(map[string]string{"PORT": "abc"}))

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoad_FromFile(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_TYPE", "STORAGE_PATH", "API_BASE_URL", "LOG_LEVEL",
		"AWS_ACCESS_KEY_ID", "ACESS_KEY_S3", "AWS_SECRET_ACCESS_KEY", "ACESS_SECRET_KEY"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
http_port = 8081

[logs]
level = "debug"

[backend]
url = "http://backend:8080/api"
timeout = 5

[storage]
path = "/var/lib/barber/uploads"

[workflow]
lookup_policy = "abort"
timezone = "America/Sao_Paulo"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://backend:8080/api", cfg.Backend.BaseURL())
	assert.Equal(t, 5, cfg.Backend.Timeout)
	assert.Equal(t, "/var/lib/barber/uploads", cfg.Storage.Path)
	assert.Equal(t, "abort", cfg.Workflow.LookupPolicy)
	// не заданные в файле значения остаются по умолчанию
	assert.Equal(t, 30, cfg.Workflow.SubmitTimeout)

	loc, err := cfg.Workflow.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_TYPE", "AWS_ACCESS_KEY_ID", "ACESS_KEY_S3"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.HTTPPort)
}

func TestLoad_ProxyURLFollowsPort(t *testing.T) {
	for _, key := range []string{"STORAGE_TYPE", "AWS_ACCESS_KEY_ID", "ACESS_KEY_S3", "STORAGE_PROXY_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8081")

	cfg, err := Load("../../config.toml")

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "http://localhost:8081", cfg.Storage.ProxyURL)
}

func TestLoad_ProxyURLFromEnv(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_TYPE", "AWS_ACCESS_KEY_ID", "ACESS_KEY_S3"} {
		t.Setenv(key, "")
	}
	t.Setenv("STORAGE_PROXY_URL", "http://storage-proxy:3000")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, "http://storage-proxy:3000", cfg.Storage.ProxyURL)
}

func TestStorageConfig_ResolveProxyURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000", StorageConfig{}.ResolveProxyURL(3000))
	assert.Equal(t, "https://docs.example.com", StorageConfig{ProxyURL: "https://docs.example.com"}.ResolveProxyURL(3000))
}
