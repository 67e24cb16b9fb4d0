package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Gazetteer  GazetteerConfig  `yaml:"gazetteer" mapstructure:"gazetteer"`
	Resolver   ResolverConfig   `yaml:"resolver" mapstructure:"resolver"`
	Boundaries BoundariesConfig `yaml:"boundaries" mapstructure:"boundaries"`
	Classify   ClassifyConfig   `yaml:"classify" mapstructure:"classify"`
	Provider   ProviderConfig   `yaml:"provider" mapstructure:"provider"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// GazetteerConfig configures the curated location tables.
type GazetteerConfig struct {
	// Path points at a YAML gazetteer file. Empty means the builtin table.
	Path string `yaml:"path" mapstructure:"path"`
}

// ResolverConfig configures the resolution cascade.
type ResolverConfig struct {
	// DefaultRegion is [minLon, minLat, maxLon, maxLat]; empty keeps the
	// builtin Chennai default.
	DefaultRegion []float64 `yaml:"default_region" mapstructure:"default_region"`
}

// BoundariesConfig configures the remote administrative-boundary tier.
type BoundariesConfig struct {
	// BaseURL of the boundary service; empty disables the tier.
	BaseURL          string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs      int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit        float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	BreakerThreshold int     `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	BreakerCooldown  int     `yaml:"breaker_cooldown_secs" mapstructure:"breaker_cooldown_secs"`
}

// ClassifyConfig configures the classification engine.
type ClassifyConfig struct {
	// Workers bounds row parallelism; 0 means one per CPU.
	Workers int `yaml:"workers" mapstructure:"workers"`
	// RulesPath points at a YAML rule-table override file; empty keeps the
	// built-in tables.
	RulesPath string `yaml:"rules_path" mapstructure:"rules_path"`
}

// ProviderConfig configures raster layer acquisition.
type ProviderConfig struct {
	// Kind selects the backend; "synthetic" is the only built-in.
	Kind     string `yaml:"kind" mapstructure:"kind"`
	GridSize int    `yaml:"grid_size" mapstructure:"grid_size"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TERRALENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("classify.workers", 0)
	v.SetDefault("provider.kind", "synthetic")
	v.SetDefault("provider.grid_size", 64)
	v.SetDefault("boundaries.timeout_secs", 10)
	v.SetDefault("boundaries.rate_limit", 10)
	v.SetDefault("boundaries.breaker_threshold", 5)
	v.SetDefault("boundaries.breaker_cooldown_secs", 30)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
