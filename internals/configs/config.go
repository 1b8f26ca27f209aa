package configs

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"altroway_backend/internals/helpers/logger"
)

var (
	AppEnv                 string
	Port                   string
	JWTSecret              string
	AccessTokenTTL         time.Duration
	AdminAPIGuard          bool
	StorageDriver          string
	DocumentsPrefix        string
	SeedOnStart            bool
	DocumentExpiryInterval time.Duration
	AllowedOrigins         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	log := logger.L()
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("no .env file found, using system environment")
		} else {
			log.Info(".env file loaded")
		}
	} else {
		log.Info("running on Railway, using system environment")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	Port = GetEnv("PORT", "3000")
	JWTSecret = GetEnv("JWT_SECRET")
	AccessTokenTTL = time.Duration(GetEnvInt("ACCESS_TOKEN_TTL_MINUTES", 60)) * time.Minute
	AdminAPIGuard = GetEnvBool("ADMIN_API_GUARD", false)
	StorageDriver = strings.ToLower(GetEnv("STORAGE_DRIVER", "oss"))
	DocumentsPrefix = strings.Trim(GetEnv("DOCUMENTS_PREFIX", "documents"), "/")
	SeedOnStart = GetEnvBool("SEED_ON_START", false)
	DocumentExpiryInterval = time.Duration(GetEnvInt("DOCUMENT_EXPIRY_INTERVAL_MINUTES", 1440)) * time.Minute
	AllowedOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000, http://localhost:5173")

	if JWTSecret == "" {
		log.Error("JWT_SECRET is not set")
	} else {
		log.Info("JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// PostgresDSN builds the Supabase/Postgres DSN from DB_* variables.
func PostgresDSN() string {
	if url := GetEnv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=altroway&options=-c statement_timeout=3000",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "postgres"),
		GetEnv("DB_SSLMODE", "require"),
	)
}

// =======================
// GORM LOGGER
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	log           *logger.Logger
}

func NewGormLogger(log *logger.Logger) gormLogger.Interface {
	level := gormLogger.Warn
	if AppEnv == "development" {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
		log:           log.With("component", "gorm"),
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		l.log.Error("query failed", "file", file, "err", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log.Warn("slow query", "file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.LogLevel >= gormLogger.Info:
		l.log.Debug("query", "file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
