package config

import (
	"encoding/base64"
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"       validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"       validate:"required"`
	Gin         GinConfig         `yaml:"gin"          validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"     validate:"required"`
	Restaurant  RestaurantConfig  `yaml:"restaurant"   validate:"required"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"    validate:"required"`
	Session     SessionConfig     `yaml:"session"      validate:"required"`
	SecurityLog SecurityLogConfig `yaml:"security_log" validate:"required"`
	Mailer      MailerConfig      `yaml:"mailer"`
	Telegram    TelegramConfig    `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"tablebooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RestaurantConfig struct {
	// MaxGuestsPerSlot caps the total guest count a single (date, time) slot
	// may accept across non-cancelled reservations.
	MaxGuestsPerSlot int `yaml:"max_guests_per_slot" env:"MAX_GUESTS_PER_SLOT" env-default:"40" validate:"min=1"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"  env:"SCHEDULER_INTERVAL"  env-default:"1m"  validate:"required,gt=0"`
	// Lookahead is the reminder horizon: confirmed reservations whose date
	// falls within it are due a reminder.
	Lookahead time.Duration `yaml:"lookahead" env:"SCHEDULER_LOOKAHEAD" env-default:"48h" validate:"required,gt=0"`
}

type SessionConfig struct {
	HashKey  string        `yaml:"hash_key"  env:"SESSION_HASH_KEY"  validate:"required"`
	BlockKey string        `yaml:"block_key" env:"SESSION_BLOCK_KEY" validate:"required"`
	MaxAge   time.Duration `yaml:"max_age"   env:"SESSION_MAX_AGE"   env-default:"336h" validate:"gt=0"`
}

func (s *SessionConfig) DecodeHashKey() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.HashKey)
}

func (s *SessionConfig) DecodeBlockKey() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.BlockKey)
}

type SecurityLogConfig struct {
	MaxEntries int `yaml:"max_entries" env:"SECURITY_LOG_MAX_ENTRIES" env-default:"1000" validate:"min=1"`
}

type MailerConfig struct {
	APIKey    string `yaml:"api_key"    env:"MAILERSEND_API_KEY" env-default:""`
	FromName  string `yaml:"from_name"  env:"MAILER_FROM_NAME"   env-default:"TableBooker"`
	FromEmail string `yaml:"from_email" env:"MAILER_FROM_EMAIL"  env-default:""`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	StaffChatID int64  `yaml:"staff_chat_id" env:"TELEGRAM_STAFF_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
