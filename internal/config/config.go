// Package config carga la configuración del servicio: valores por defecto,
// archivo YAML opcional y, por último, overrides por variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Env      string `yaml:"app_env"`   // dev | prod
		LogLevel string `yaml:"log_level"` // debug | info | warn | error
		Version  string `yaml:"version"`
	} `yaml:"app"`

	Server struct {
		Addr               string        `yaml:"addr"`
		Port               int           `yaml:"port"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
		ReadTimeout        time.Duration `yaml:"read_timeout"`
		WriteTimeout       time.Duration `yaml:"write_timeout"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Storage struct {
		Driver            string        `yaml:"driver"` // postgres | sqlite; vacío: se infiere del DSN
		DSN               string        `yaml:"dsn"`
		MaxOpenConns      int           `yaml:"max_open_conns"`
		MaxIdleConns      int           `yaml:"max_idle_conns"`
		ConnMaxLifetime   time.Duration `yaml:"conn_max_lifetime"`
		ConnectTimeout    time.Duration `yaml:"connect_timeout"`
		PingTimeout       time.Duration `yaml:"ping_timeout"`
		ReconnectInterval time.Duration `yaml:"reconnect_interval"`
		ProbeTTL          time.Duration `yaml:"probe_ttl"`
		Seed              bool          `yaml:"seed"`
	} `yaml:"storage"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	Rate struct {
		Enabled     bool          `yaml:"enabled"`
		MaxRequests int           `yaml:"max_requests"`
		Window      time.Duration `yaml:"window"`
	} `yaml:"rate"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Default retorna la configuración por defecto.
func Default() *Config {
	var c Config
	c.App.Env = "dev"
	c.App.LogLevel = "info"

	c.Server.Port = 3000
	c.Server.CORSAllowedOrigins = []string{"*"}
	c.Server.ReadTimeout = 15 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second

	c.Storage.MaxOpenConns = 10
	c.Storage.MaxIdleConns = 2
	c.Storage.ConnMaxLifetime = 30 * time.Minute
	c.Storage.ConnectTimeout = 5 * time.Second
	c.Storage.PingTimeout = 2 * time.Second
	c.Storage.ReconnectInterval = 10 * time.Second
	c.Storage.Seed = true

	c.Cache.Kind = "memory"
	c.Cache.Redis.Addr = "localhost:6379"
	c.Cache.Redis.Prefix = "gesclient"

	c.Rate.MaxRequests = 120
	c.Rate.Window = time.Minute

	c.Metrics.Enabled = true
	return &c
}

// Load aplica, en orden: defaults, archivo YAML (si path != "") y variables de entorno.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	c.applyEnvOverrides()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// IsDev indica si el servicio corre en modo desarrollo.
func (c *Config) IsDev() bool {
	return c.App.Env == "" || c.App.Env == "dev" || c.App.Env == "development"
}

// ListenAddr retorna SERVER_ADDR si está definido, si no ":PORT".
func (c *Config) ListenAddr() string {
	if c.Server.Addr != "" {
		return c.Server.Addr
	}
	return ":" + strconv.Itoa(c.Server.Port)
}

// Validate verifica los valores críticos.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Errorf("config: invalid port %d", c.Server.Port))
	}
	switch c.Storage.Driver {
	case "", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("config: unsupported storage driver %q", c.Storage.Driver))
	}
	switch c.Cache.Kind {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("config: unsupported cache kind %q", c.Cache.Kind))
	}
	if c.Rate.Enabled && (c.Rate.MaxRequests <= 0 || c.Rate.Window <= 0) {
		errs = append(errs, errors.New("config: rate limiting needs max_requests > 0 and window > 0"))
	}
	return errors.Join(errs...)
}

func (c *Config) applyEnvOverrides() {
	// APP
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.App.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvStr("SERVICE_VERSION"); ok {
		c.App.Version = v
	}

	// SERVER
	if v, ok := getEnvInt("PORT"); ok {
		c.Server.Port = v
	}
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}

	// STORAGE (DATABASE_URL tiene prioridad sobre el alias STORAGE_DSN)
	if v, ok := getEnvStr("STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvStr("DATABASE_URL"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvStr("STORAGE_DRIVER"); ok {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := getEnvInt("STORAGE_MAX_OPEN_CONNS"); ok {
		c.Storage.MaxOpenConns = v
	}
	if v, ok := getEnvInt("STORAGE_MAX_IDLE_CONNS"); ok {
		c.Storage.MaxIdleConns = v
	}
	if v, ok := getEnvDur("STORAGE_CONNECT_TIMEOUT"); ok {
		c.Storage.ConnectTimeout = v
	}
	if v, ok := getEnvDur("STORAGE_PING_TIMEOUT"); ok {
		c.Storage.PingTimeout = v
	}
	if v, ok := getEnvDur("STORAGE_RECONNECT_INTERVAL"); ok {
		c.Storage.ReconnectInterval = v
	}
	if v, ok := getEnvDur("STORAGE_PROBE_TTL"); ok {
		c.Storage.ProbeTTL = v
	}
	if v, ok := getEnvBool("STORAGE_SEED"); ok {
		c.Storage.Seed = v
	}

	// CACHE
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = strings.ToLower(v)
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvStr("REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}

	// RATE
	if v, ok := getEnvBool("RATE_ENABLED"); ok {
		c.Rate.Enabled = v
	}
	if v, ok := getEnvInt("RATE_MAX_REQUESTS"); ok {
		c.Rate.MaxRequests = v
	}
	if v, ok := getEnvDur("RATE_WINDOW"); ok {
		c.Rate.Window = v
	}

	// METRICS
	if v, ok := getEnvBool("METRICS_ENABLED"); ok {
		c.Metrics.Enabled = v
	}
}

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}
func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}
func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
func getEnvDur(key string) (time.Duration, bool) {
	if s, ok := getEnvStr(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return 0, false
}
func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}
