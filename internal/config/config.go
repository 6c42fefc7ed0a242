// Package config loads the immutable process configuration.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed into constructors.
type Config struct {
	App       App
	Postgres  Postgres
	Redis     Redis
	JWT       JWT
	Kafka     Kafka
	Mail      Mail
	Minio     Minio
	RateLimit RateLimit
}

type App struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
	BaseURL  string `env:"APP_BASE_URL" env-default:"http://localhost:8080/"`
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"APP_TRUST_PROXY" env-default:"false"`
}

type Postgres struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

type Redis struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// Addr returns host:port.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWT struct {
	SecretKey  string        `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
	Algorithm  string        `env:"JWT_ALGORITHM" env-default:"HS256"`
	AccessExp  time.Duration `env:"JWT_ACCESS_EXP" env-default:"15m"`
	RefreshExp time.Duration `env:"JWT_REFRESH_EXP" env-default:"168h"`
	EmailExp   time.Duration `env:"JWT_EMAIL_EXP" env-default:"24h"`
}

type Kafka struct {
	Brokers       []string `env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	MailTopic     string   `env:"KAFKA_MAIL_TOPIC" env-default:"contacts.mail.verification"`
	MailGroupID   string   `env:"KAFKA_MAIL_GROUP_ID" env-default:"contacts-mail-worker"`
	WorkerEnabled bool     `env:"KAFKA_MAIL_WORKER_ENABLED" env-default:"true"`
}

type Mail struct {
	Server   string `env:"MAIL_SERVER" env-default:"localhost"`
	Port     int    `env:"MAIL_PORT" env-default:"465"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
	From     string `env:"MAIL_FROM" env-default:"noreply@localhost"`
	FromName string `env:"MAIL_FROM_NAME" env-default:"Address Book"`
	SSL      bool   `env:"MAIL_SSL_TLS" env-default:"true"`
}

type Minio struct {
	Endpoint  string `env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"avatars"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	PublicURL string `env:"MINIO_PUBLIC_URL" env-default:"http://localhost:9000"`
}

type RateLimit struct {
	AuthLimit      int           `env:"RATE_LIMIT_AUTH_LIMIT" env-default:"20"`
	AuthWindow     time.Duration `env:"RATE_LIMIT_AUTH_WINDOW" env-default:"60s"`
	ContactsLimit  int           `env:"RATE_LIMIT_CONTACTS_LIMIT" env-default:"5"`
	ContactsWindow time.Duration `env:"RATE_LIMIT_CONTACTS_WINDOW" env-default:"60s"`
	UsersLimit     int           `env:"RATE_LIMIT_USERS_LIMIT" env-default:"1"`
	UsersWindow    time.Duration `env:"RATE_LIMIT_USERS_WINDOW" env-default:"20s"`
}

// Load reads an optional env file into the process environment and
// then decodes the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}
