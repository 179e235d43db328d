package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Applications ApplicationsConfig `yaml:"applications"`
	Dispatch     DispatchConfig     `yaml:"dispatch"`
	Email        EmailConfig        `yaml:"email"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
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
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`

	// ApplicationName is reported to PostgreSQL so sessions of the API and
	// of the dispatch command can be told apart in pg_stat_activity.
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"recruitment-api"`
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds access-token verification settings. Tokens are issued by
// the marketplace's session service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"recruitment"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the public API. Zero
// requests per minute turns the limiter off.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// ApplicationsConfig holds application-lifecycle settings.
type ApplicationsConfig struct {
	CoverNoteMaxLength int `yaml:"cover_note_max_length" env:"APPLICATIONS_COVER_NOTE_MAX_LENGTH" env-default:"300"`
}

// DispatchConfig holds the scheduled notification dispatcher settings.
type DispatchConfig struct {
	Workers           int           `yaml:"workers"            env:"DISPATCH_WORKERS"             env-default:"4"`
	SearchTimeout     time.Duration `yaml:"search_timeout"     env:"DISPATCH_SEARCH_TIMEOUT"      env-default:"30s"`
	RunTimeout        time.Duration `yaml:"run_timeout"        env:"DISPATCH_RUN_TIMEOUT"         env-default:"30m"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval" env:"DISPATCH_HEARTBEAT_INTERVAL"  env-default:"720h"`
	TriggerTokenHash  string        `yaml:"trigger_token_hash" env:"DISPATCH_TRIGGER_TOKEN_HASH"`
	AppBaseURL        string        `yaml:"app_base_url"       env:"DISPATCH_APP_BASE_URL"        env-default:"http://localhost:3000"`
}

// TriggerEnabled reports whether the HTTP dispatch trigger is exposed.
func (c DispatchConfig) TriggerEnabled() bool {
	return c.TriggerTokenHash != ""
}

// EmailConfig holds outgoing mail settings.
type EmailConfig struct {
	SMTPHost       string        `yaml:"smtp_host"        env:"EMAIL_SMTP_HOST"`
	SMTPPort       int           `yaml:"smtp_port"        env:"EMAIL_SMTP_PORT"        env-default:"587"`
	Username       string        `yaml:"username"         env:"EMAIL_USERNAME"`
	Password       string        `yaml:"password"         env:"EMAIL_PASSWORD"`
	From           string        `yaml:"from"             env:"EMAIL_FROM"             env-default:"no-reply@localhost"`
	FromName       string        `yaml:"from_name"        env:"EMAIL_FROM_NAME"        env-default:"Recruitment"`
	MaxRetries     uint          `yaml:"max_retries"      env:"EMAIL_MAX_RETRIES"      env-default:"3"`
	InitialBackoff time.Duration `yaml:"initial_backoff"  env:"EMAIL_INITIAL_BACKOFF"  env-default:"500ms"`
	MaxBackoff     time.Duration `yaml:"max_backoff"      env:"EMAIL_MAX_BACKOFF"      env-default:"10s"`
	RatePerSecond  float64       `yaml:"rate_per_second"  env:"EMAIL_RATE_PER_SECOND"  env-default:"5"`
	SendTimeout    time.Duration `yaml:"send_timeout"     env:"EMAIL_SEND_TIMEOUT"     env-default:"15s"`
	DryRun         bool          `yaml:"dry_run"          env:"EMAIL_DRY_RUN"          env-default:"false"`
}
