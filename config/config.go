package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultJWTExpireDays      = 15
)

// Hashing scheme names accepted in the hashing section.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
	SchemePBKDF2   = "pbkdf2"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate controls schema management of the account partitions on start.
	Migrate *MigrateConfig `json:"migrate" yaml:"migrate"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Hashing *HashingConfig `json:"hashing" yaml:"hashing"`
}

// AuthConfig holds token issuance settings.
type AuthConfig struct {
	JwtKey        string `json:"jwtKey" yaml:"jwtKey"`
	JwtIssuer     string `json:"jwtIssuer" yaml:"jwtIssuer"`
	JwtExpireDays int    `json:"jwtExpireDays" yaml:"jwtExpireDays"`
}

// HashingConfig selects the password scheme of each account partition.
type HashingConfig struct {
	Student string `json:"student" yaml:"student"`
	Teacher string `json:"teacher" yaml:"teacher"`
	Admin   string `json:"admin" yaml:"admin"`

	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	Argon2     *Argon2Config `json:"argon2" yaml:"argon2"`
	PBKDF2     *PBKDF2Config `json:"pbkdf2" yaml:"pbkdf2"`
}

// Argon2Config holds argon2id cost parameters.
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"`
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// PBKDF2Config holds PBKDF2-HMAC-SHA256 parameters.
type PBKDF2Config struct {
	Iterations int `json:"iterations" yaml:"iterations"`
	SaltLength int `json:"saltLength" yaml:"saltLength"`
	KeyLength  int `json:"keyLength" yaml:"keyLength"`
}

// MigrateConfig toggles GORM auto-migration.
type MigrateConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects a config that cannot issue tokens.
func (cfg *Config) applyDefaults() error {
	if cfg.Auth == nil || strings.TrimSpace(cfg.Auth.JwtKey) == "" {
		return errors.New("auth.jwtKey must be provided")
	}
	if strings.TrimSpace(cfg.Auth.JwtIssuer) == "" {
		return errors.New("auth.jwtIssuer must be provided")
	}
	if cfg.Auth.JwtExpireDays <= 0 {
		cfg.Auth.JwtExpireDays = defaultJWTExpireDays
	}

	if cfg.Hashing == nil {
		cfg.Hashing = &HashingConfig{}
	}
	if cfg.Hashing.Student == "" {
		cfg.Hashing.Student = SchemeBcrypt
	}
	if cfg.Hashing.Teacher == "" {
		cfg.Hashing.Teacher = SchemeArgon2id
	}
	if cfg.Hashing.Admin == "" {
		cfg.Hashing.Admin = SchemePBKDF2
	}
	for _, scheme := range []string{cfg.Hashing.Student, cfg.Hashing.Teacher, cfg.Hashing.Admin} {
		switch scheme {
		case SchemeBcrypt, SchemeArgon2id, SchemePBKDF2:
		default:
			return errors.Errorf("unknown hashing scheme: %s", scheme)
		}
	}

	if cfg.Migrate == nil {
		cfg.Migrate = &MigrateConfig{}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
