package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	CRM       CRMConfig       `yaml:"crm"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
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

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"crm"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"12h"`
	PasswordHashCost  int           `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
	MinPasswordLength int           `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH" env-default:"8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"300"`
	AuthPerMinute     int           `yaml:"auth_per_minute"     env:"RATE_LIMIT_AUTH_RPM" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// RedisConfig holds the profile cache connection. An empty Addr disables it.
type RedisConfig struct {
	Addr       string        `yaml:"addr"        env:"REDIS_ADDR"`
	Password   string        `yaml:"password"    env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db"          env:"REDIS_DB"          env-default:"0"`
	ProfileTTL time.Duration `yaml:"profile_ttl" env:"REDIS_PROFILE_TTL" env-default:"5m"`
	KeyPrefix  string        `yaml:"key_prefix"  env:"REDIS_KEY_PREFIX"  env-default:"crm:"`
}

// Enabled reports whether a redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// StorageConfig holds the document object store settings.
type StorageConfig struct {
	BaseURL        string        `yaml:"base_url"         env:"STORAGE_BASE_URL"         env-required:"true"`
	Bucket         string        `yaml:"bucket"           env:"STORAGE_BUCKET"           env-default:"documents"`
	ServiceKey     string        `yaml:"service_key"      env:"STORAGE_SERVICE_KEY"`
	SignedURLTTL   time.Duration `yaml:"signed_url_ttl"   env:"STORAGE_SIGNED_URL_TTL"   env-default:"1h"`
	Timeout        time.Duration `yaml:"timeout"          env:"STORAGE_TIMEOUT"          env-default:"30s"`
	RetryCount     int           `yaml:"retry_count"      env:"STORAGE_RETRY_COUNT"      env-default:"2"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"20971520"`
}

// CRMConfig holds business defaults.
type CRMConfig struct {
	DefaultListLimit   int `yaml:"default_list_limit"   env:"CRM_DEFAULT_LIST_LIMIT"   env-default:"50"`
	MaxListLimit       int `yaml:"max_list_limit"       env:"CRM_MAX_LIST_LIMIT"       env-default:"500"`
	AuditListLimit     int `yaml:"audit_list_limit"     env:"CRM_AUDIT_LIST_LIMIT"     env-default:"100"`
	RecentActivityDays int `yaml:"recent_activity_days" env:"CRM_RECENT_ACTIVITY_DAYS" env-default:"7"`
	ExportMaxRows      int `yaml:"export_max_rows"      env:"CRM_EXPORT_MAX_ROWS"      env-default:"10000"`
}

// ClampLimit applies the default and maximum list limits.
func (c CRMConfig) ClampLimit(limit int) int {
	if limit <= 0 {
		return c.DefaultListLimit
	}
	if limit > c.MaxListLimit {
		return c.MaxListLimit
	}
	return limit
}
