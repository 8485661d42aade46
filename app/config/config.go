// Package config loads runtime settings from defaults, an optional YAML file
// and FOLIO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FOLIO_SERVER_ADDR.
const EnvPrefix = "FOLIO"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Content ContentConfig `mapstructure:"content"`
	Search  SearchConfig  `mapstructure:"search"`
	Site    SiteConfig    `mapstructure:"site"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig selects the badger directory. An empty Path keeps the store in
// memory; a non-empty Snapshot is restored instead of seeding from content.
type StoreConfig struct {
	Path     string `mapstructure:"path"`
	Snapshot string `mapstructure:"snapshot"`
}

// ContentConfig points at a content directory on disk. Empty means the
// content compiled into the binary.
type ContentConfig struct {
	Dir string `mapstructure:"dir"`
}

type SearchConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type SiteConfig struct {
	Title  string `mapstructure:"title" validate:"required"`
	Author string `mapstructure:"author" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.path", "")
	v.SetDefault("store.snapshot", "")
	v.SetDefault("content.dir", "")
	v.SetDefault("search.delay", 300*time.Millisecond)
	v.SetDefault("site.title", "Portfolio")
	v.SetDefault("site.author", "Your Name")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any) into v and decodes it. An explicit file
// must exist; without one, folio.yaml in the working directory is optional.
// The returned path is the file actually used, or "" when none was read.
func Load(v *viper.Viper, file string) (*Config, string, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// Validate checks the listen address, the timeouts and the enumerated fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed on '%s' validation", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("invalid config: server.addr %q: %w", c.Server.Addr, err)
	}

	durations := []struct {
		key string
		d   time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.idle_timeout", c.Server.IdleTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"search.delay", c.Search.Delay},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("invalid config: %s must be positive, got %s", d.key, d.d)
		}
	}
	return nil
}
