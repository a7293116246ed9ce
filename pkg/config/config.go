package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret       string        `env:"JWT_SECRET,required"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	SeedPassword string `env:"SEED_PASSWORD" envDefault:"changeme"`

	Kafka KafkaConfig

	Advisor AdvisorConfig

	Mailer MailerConfig

	PaymentReminderInterval time.Duration `env:"PAYMENT_REMINDER_INTERVAL" envDefault:"24h"`
}

type KafkaConfig struct {
	Enabled             bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	ConsumerID          string   `env:"KAFKA_CONSUMER_ID" envDefault:"chanmkt-api"`
	RequestEventsTopic  string   `env:"KAFKA_REQUEST_EVENTS_TOPIC" envDefault:"chanmkt.requests"`
	BillingEventsTopic  string   `env:"KAFKA_BILLING_EVENTS_TOPIC" envDefault:"chanmkt.billing"`
}

type AdvisorConfig struct {
	BaseURL       string        `env:"ADVISOR_BASE_URL"`
	APIKey        string        `env:"ADVISOR_API_KEY"`
	Timeout       time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"20s"`
	RetryAttempts int           `env:"ADVISOR_RETRY_ATTEMPTS" envDefault:"2"`
}

type MailerConfig struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"CHANMKT"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
