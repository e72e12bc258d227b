package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: reportsys
  log:
    level: debug
http:
  port: 8080
auth:
  jwtKey: yaml-secret
  jwtIssuer: http://reportsys.local
  jwtExpireDays: 7
hashing:
  student: bcrypt
  bcryptCost: 4
`

func writeConfig(t *testing.T, name, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	writeConfig(t, "unit", testYAML)
	t.Setenv("AUTH_JWTKEY", "env-secret")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "reportsys", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "env-secret", cfg.Auth.JwtKey)
	assert.Equal(t, "http://reportsys.local", cfg.Auth.JwtIssuer)
	assert.Equal(t, 7, cfg.Auth.JwtExpireDays)
	require.NotNil(t, cfg.Hashing)
	assert.Equal(t, 4, cfg.Hashing.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{JwtKey: "k", JwtIssuer: "iss"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultJWTExpireDays, cfg.Auth.JwtExpireDays)
	assert.Equal(t, SchemeBcrypt, cfg.Hashing.Student)
	assert.Equal(t, SchemeArgon2id, cfg.Hashing.Teacher)
	assert.Equal(t, SchemePBKDF2, cfg.Hashing.Admin)
	require.NotNil(t, cfg.Migrate)
	assert.False(t, cfg.Migrate.AutoMigrate)
}

func TestApplyDefaults_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{name: "missing auth", cfg: &Config{}, wantErr: "auth.jwtKey"},
		{name: "blank key", cfg: &Config{Auth: &AuthConfig{JwtKey: "  ", JwtIssuer: "iss"}}, wantErr: "auth.jwtKey"},
		{name: "blank issuer", cfg: &Config{Auth: &AuthConfig{JwtKey: "k"}}, wantErr: "auth.jwtIssuer"},
		{
			name:    "unknown scheme",
			cfg:     &Config{Auth: &AuthConfig{JwtKey: "k", JwtIssuer: "iss"}, Hashing: &HashingConfig{Admin: "md5"}},
			wantErr: "unknown hashing scheme: md5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.applyDefaults()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
