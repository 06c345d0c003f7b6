// Package config carga la configuración del servicio desde YAML con
// overrides por variables de entorno (prefijo DASH_).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
		// Mode selecciona las implementaciones de los colaboradores:
		// "live" (postgres/redis/fs) u "offline" (fixtures en memoria).
		// Se decide una sola vez en el wiring, no con ifs sueltos.
		Mode string `yaml:"mode"`
	} `yaml:"app"`

	Server struct {
		Addr string `yaml:"addr"`
		// PublicBaseURL es la base de las URLs públicas de objetos
		// servidos por /media (ej: https://app.queuecx.com).
		PublicBaseURL string `yaml:"public_base_url"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		Postgres struct {
			DSN             string `yaml:"dsn"`
			MaxConns        int    `yaml:"max_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"postgres"`
		Objects struct {
			// Dir es la raíz del object store en disco.
			Dir string `yaml:"dir"`
		} `yaml:"objects"`
	} `yaml:"storage"`

	Cache struct {
		// Kind: "memory" | "redis"
		Kind  string `yaml:"kind"`
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
	} `yaml:"cache"`

	Auth struct {
		// SessionSecret firma los JWT de sesión (HS256).
		SessionSecret string `yaml:"session_secret"`
		SessionTTL    string `yaml:"session_ttl"`
	} `yaml:"auth"`

	Email struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		User    string `yaml:"user"`
		Pass    string `yaml:"pass"`
		From    string `yaml:"from"`
	} `yaml:"email"`
}

// Load lee el YAML en path (opcional: path vacío usa solo defaults+env)
// y aplica defaults y overrides de entorno.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	// Overrides por entorno
	applyEnv(&c)

	// Defaults sanos
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.Mode == "" {
		c.App.Mode = "offline"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.PublicBaseURL == "" {
		c.Server.PublicBaseURL = "http://localhost:8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Memory.DefaultTTL == "" {
		c.Cache.Memory.DefaultTTL = "2m"
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "dash:"
	}
	if c.Storage.Objects.Dir == "" {
		c.Storage.Objects.Dir = "./data/objects"
	}
	if c.Storage.Postgres.MaxConns == 0 {
		c.Storage.Postgres.MaxConns = 5
	}
	if c.Auth.SessionTTL == "" {
		c.Auth.SessionTTL = "168h" // 7d
	}
	if c.Email.Port == 0 {
		c.Email.Port = 587
	}
	return &c, nil
}

// SessionTTL parsea Auth.SessionTTL con fallback a 7 días.
func (c *Config) SessionTTL() time.Duration {
	if d, err := time.ParseDuration(c.Auth.SessionTTL); err == nil && d > 0 {
		return d
	}
	return 168 * time.Hour
}

// MemoryTTL parsea Cache.Memory.DefaultTTL con fallback a 2 minutos.
func (c *Config) MemoryTTL() time.Duration {
	if d, err := time.ParseDuration(c.Cache.Memory.DefaultTTL); err == nil && d > 0 {
		return d
	}
	return 2 * time.Minute
}

func applyEnv(c *Config) {
	setStr(&c.App.Env, "DASH_ENV")
	setStr(&c.App.Mode, "DASH_MODE")
	setStr(&c.Server.Addr, "DASH_ADDR")
	setStr(&c.Server.PublicBaseURL, "DASH_PUBLIC_BASE_URL")
	setStr(&c.Log.Level, "DASH_LOG_LEVEL")
	setStr(&c.Storage.Postgres.DSN, "DASH_PG_DSN")
	setInt(&c.Storage.Postgres.MaxConns, "DASH_PG_MAX_CONNS")
	setStr(&c.Storage.Objects.Dir, "DASH_OBJECTS_DIR")
	setStr(&c.Cache.Kind, "DASH_CACHE_KIND")
	setStr(&c.Cache.Redis.Addr, "DASH_REDIS_ADDR")
	setInt(&c.Cache.Redis.DB, "DASH_REDIS_DB")
	setStr(&c.Auth.SessionSecret, "DASH_SESSION_SECRET")
	setStr(&c.Auth.SessionTTL, "DASH_SESSION_TTL")
	setStr(&c.Email.Host, "DASH_SMTP_HOST")
	setInt(&c.Email.Port, "DASH_SMTP_PORT")
	setStr(&c.Email.User, "DASH_SMTP_USER")
	setStr(&c.Email.Pass, "DASH_SMTP_PASS")
	setStr(&c.Email.From, "DASH_SMTP_FROM")
	if v := os.Getenv("DASH_SMTP_ENABLED"); v != "" {
		c.Email.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
}

func setStr(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
