package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Feed     FeedConfig     `yaml:"feed"`
	Media    MediaConfig    `yaml:"media"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds session and login settings.
type AuthConfig struct {
	SessionSecret      string        `yaml:"session_secret"        env:"AUTH_SESSION_SECRET"        env-required:"true"`
	SessionIssuer      string        `yaml:"session_issuer"        env:"AUTH_SESSION_ISSUER"        env-default:"yatube"`
	SessionTTL         time.Duration `yaml:"session_ttl"           env:"AUTH_SESSION_TTL"           env-default:"336h"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"      env:"AUTH_CLEANUP_INTERVAL"      env-default:"1h"`
	PasswordHashCost   int           `yaml:"password_hash_cost"    env:"AUTH_PASSWORD_HASH_COST"    env-default:"12"`
	CookieName         string        `yaml:"cookie_name"           env:"AUTH_COOKIE_NAME"           env-default:"sessionid"`
	CookieSecure       bool          `yaml:"cookie_secure"         env:"AUTH_COOKIE_SECURE"         env-default:"false"`
	LoginPath          string        `yaml:"login_path"            env:"AUTH_LOGIN_PATH"            env-default:"/auth/login/"`
	LoginRatePerMinute int           `yaml:"login_rate_per_minute" env:"AUTH_LOGIN_RATE_PER_MINUTE" env-default:"20"`
}

// FeedConfig holds pagination and index cache settings.
type FeedConfig struct {
	PageSize       int           `yaml:"page_size"        env:"FEED_PAGE_SIZE"        env-default:"10"`
	IndexCacheTTL  time.Duration `yaml:"index_cache_ttl"  env:"FEED_INDEX_CACHE_TTL"  env-default:"20s"`
	IndexCacheSize int           `yaml:"index_cache_size" env:"FEED_INDEX_CACHE_SIZE" env-default:"64"`
}

// MediaConfig holds image upload settings.
type MediaConfig struct {
	Dir            string `yaml:"dir"              env:"MEDIA_DIR"              env-default:"./media"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
