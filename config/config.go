package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"tracenfind/internal/domain/constants"

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

	defaultDedupWindow         = 10 * time.Second
	defaultLookBackLimit       = 10
	defaultPollInterval        = 2 * time.Second
	defaultReconnectBackoff    = 5 * time.Second
	defaultMaxReconnectBackoff = 30 * time.Second
	defaultRealtimeBuffer      = 16
	defaultHeartbeatInterval   = 25 * time.Second
	defaultSQLitePath          = "tracenfind.db"
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

	// Store selects the backing document store
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Pipeline tunes event detection and deduplication
	Pipeline *PipelineConfig `json:"pipeline" yaml:"pipeline"`

	// Watch lists the users whose streams this process follows
	Watch *WatchConfig `json:"watch" yaml:"watch"`

	// Realtime configures the SSE fan-out
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Claim configures the optional cross-process signature claim store
	Claim *ClaimConfig `json:"claim" yaml:"claim"`

	// Redis connection used by the redis claim provider
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects and tunes the document store
type StoreConfig struct {
	// Provider: "firestore", "sqlite" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// SQLite database file (sqlite provider)
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// Poll interval used to emulate watches on relational stores
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// FirebaseConfig defines Firebase configuration for Firestore and push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PipelineConfig tunes the event pipeline
type PipelineConfig struct {
	// Window within which equal signatures are one event
	DedupWindow time.Duration `json:"dedupWindow" yaml:"dedupWindow"`

	// Number of recent notifications inspected before a write
	LookBackLimit int `json:"lookBackLimit" yaml:"lookBackLimit"`

	// Include the device ID in the dedup signature
	SignatureIncludesEntity bool `json:"signatureIncludesEntity" yaml:"signatureIncludesEntity"`

	// Marker that flags a SIM status as critical
	CriticalSimMarker string `json:"criticalSimMarker" yaml:"criticalSimMarker"`
}

// WatchConfig defines the users followed by the watcher delivery
type WatchConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	UserIDs []string `json:"userIds" yaml:"userIds"`

	// Reconnect backoff after a failed watch, doubled up to the max
	ReconnectBackoff    time.Duration `json:"reconnectBackoff" yaml:"reconnectBackoff"`
	MaxReconnectBackoff time.Duration `json:"maxReconnectBackoff" yaml:"maxReconnectBackoff"`
}

// RealtimeConfig defines the SSE hub configuration
type RealtimeConfig struct {
	// Buffered frames per subscriber before frames are dropped
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`

	// Interval between SSE keep-alive comments
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
}

// ClaimConfig selects the signature claim store
type ClaimConfig struct {
	// Provider: "none", "memory" or "redis"
	Provider string `json:"provider" yaml:"provider"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings the pipeline cannot honour.
func validate(cfg *Config) error {
	if w := cfg.Pipeline.DedupWindow; w > 0 && w < time.Millisecond {
		return errors.Errorf("pipeline.dedupWindow %s is below the 1ms event time resolution", w)
	}

	return nil
}

// applyDefaults fills every optional section so callers never nil-check.
func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = constants.StoreProviderSQLite
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = defaultSQLitePath
	}
	if cfg.Store.PollInterval <= 0 {
		cfg.Store.PollInterval = defaultPollInterval
	}

	if cfg.Pipeline == nil {
		cfg.Pipeline = &PipelineConfig{}
	}
	if cfg.Pipeline.DedupWindow <= 0 {
		cfg.Pipeline.DedupWindow = defaultDedupWindow
	}
	if cfg.Pipeline.LookBackLimit <= 0 {
		cfg.Pipeline.LookBackLimit = defaultLookBackLimit
	}

	if cfg.Watch == nil {
		cfg.Watch = &WatchConfig{}
	}
	if cfg.Watch.ReconnectBackoff <= 0 {
		cfg.Watch.ReconnectBackoff = defaultReconnectBackoff
	}
	if cfg.Watch.MaxReconnectBackoff < cfg.Watch.ReconnectBackoff {
		cfg.Watch.MaxReconnectBackoff = max(defaultMaxReconnectBackoff, cfg.Watch.ReconnectBackoff)
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	if cfg.Realtime.BufferSize <= 0 {
		cfg.Realtime.BufferSize = defaultRealtimeBuffer
	}
	if cfg.Realtime.HeartbeatInterval <= 0 {
		cfg.Realtime.HeartbeatInterval = defaultHeartbeatInterval
	}

	if cfg.Claim == nil {
		cfg.Claim = &ClaimConfig{}
	}
	if cfg.Claim.Provider == "" {
		cfg.Claim.Provider = constants.ClaimProviderNone
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = constants.PubSubProviderNoop
	}
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
