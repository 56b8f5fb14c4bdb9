package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultTrackingNumberAttempts = 5
	defaultAuthTokenTTL           = 12 * time.Hour
	defaultLogMaxSizeMB           = 100
)

type (
	Tasks struct {
		LedgerAuditInterval   time.Duration // 0 отключает фоновую сверку
		LedgerAuditAutoResync bool
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		JWTSecret string
		JWTIssuer string
		TokenTTL  time.Duration
	}

	Tracking struct {
		NumberPrefix   string
		NumberAttempts int
	}

	Log struct {
		Level      string
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Auth     Auth
		Tracking Tracking
		Log      Log
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadLog читает только настройки логгера, их нужно знать до загрузки остального конфига.
func LoadLog() (Log, error) {
	maxSize, err := osGetInt("LOG_MAX_SIZE_MB")
	if err != nil {
		return Log{}, fmt.Errorf("loading log config: %w", err)
	}
	if maxSize == 0 {
		maxSize = defaultLogMaxSizeMB
	}

	maxBackups, err := osGetInt("LOG_MAX_BACKUPS")
	if err != nil {
		return Log{}, fmt.Errorf("loading log config: %w", err)
	}

	maxAge, err := osGetInt("LOG_MAX_AGE_DAYS")
	if err != nil {
		return Log{}, fmt.Errorf("loading log config: %w", err)
	}

	return Log{
		Level:      os.Getenv("LOG_LEVEL"),
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}

// LoadDatabase нужен утилитам (миграции, ledger-admin), которым не нужен HTTP конфиг.
func LoadDatabase() (*Database, error) {
	db := loadDatabase()
	if err := validateDatabase(&db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

// LoadAdmin для ledger-admin: HTTP настройки не проверяются.
func LoadAdmin() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("validation: %w", errors.New("AUTH_JWT_SECRET is required"))
	}
	return cfg, nil
}

func loadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadFromEnv() (*Config, error) {
	auditInterval, err := osGetEnvDuration("LEDGER_AUDIT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	auditAutoResync, err := osGetBool("LEDGER_AUDIT_AUTO_RESYNC")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("HTTP_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("RATE_LIMITER_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("RATE_LIMITER_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if tokenTTL == 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	attempts, err := osGetInt("TRACKING_NUMBER_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if attempts == 0 {
		attempts = defaultTrackingNumberAttempts
	}

	logCfg, err := LoadLog()
	if err != nil {
		return nil, err
	}

	return &Config{
		Tasks: Tasks{
			LedgerAuditInterval:   auditInterval,
			LedgerAuditAutoResync: auditAutoResync,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: loadDatabase(),
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),
			TokenTTL:  tokenTTL,
		},
		Tracking: Tracking{
			NumberPrefix:   os.Getenv("TRACKING_NUMBER_PREFIX"),
			NumberAttempts: attempts,
		},
		Log: logCfg,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("HTTP_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("RATE_LIMITER_QPS is required")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("RATE_LIMITER_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Tracking.NumberAttempts < 0 {
		return errors.New("TRACKING_NUMBER_ATTEMPTS must be positive")
	}
	if cfg.Tasks.LedgerAuditInterval < 0 {
		return errors.New("LEDGER_AUDIT_INTERVAL must not be negative")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
