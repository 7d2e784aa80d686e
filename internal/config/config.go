// пакет config собирает конфигурацию приложения из значений по умолчанию,
// флагов командной строки (через функциональные опции) и переменных окружения.
// переменные окружения имеют наивысший приоритет
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	// EnvServerAddress переменная окружения с адресом сервера
	EnvServerAddress = "SERVER_ADDRESS"
	// EnvLogLevel переменная окружения с уровнем логирования
	EnvLogLevel = "LOG_LEVEL"
	// EnvSecretKey переменная окружения с ключом подписи сессионных токенов
	EnvSecretKey = "SECRET_KEY"

	defaultAddress   = "localhost:8080"
	defaultLogLevel  = "info"
	defaultSecretKey = "musiclab-playlist"
	defaultTokenTTL  = 24 * time.Hour
)

// DefaultConfig конфигурация со значениями по умолчанию, используется в тестах и примерах
var DefaultConfig = Config{
	address:   defaultAddress,
	logLevel:  defaultLogLevel,
	secretKey: defaultSecretKey,
	tokenTTL:  defaultTokenTTL,
}

// Config итоговая конфигурация приложения. поля закрыты - снаружи доступны только методы чтения
type Config struct {
	address   string
	logLevel  string
	secretKey string
	tokenTTL  time.Duration
}

// Address адрес, на котором слушает сервер
func (c Config) Address() string {
	return c.address
}

// LogLevel текстовый уровень логирования (debug, info, warn, error)
func (c Config) LogLevel() string {
	return c.logLevel
}

// SecretKey ключ подписи сессионных JWT токенов
func (c Config) SecretKey() string {
	return c.secretKey
}

// TokenTTL время жизни сессионного токена
func (c Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

// environ промежуточная структура для разбора переменных окружения пакетом env
type environ struct {
	Address   string `env:"SERVER_ADDRESS"`
	LogLevel  string `env:"LOG_LEVEL"`
	SecretKey string `env:"SECRET_KEY"`
}

// ConfigParam функциональная опция для установки отдельного значения конфигурации
type ConfigParam func(c *Config)

// ConfigAddress устанавливает адрес сервера
func ConfigAddress(address string) ConfigParam {
	return func(c *Config) {
		c.address = address
	}
}

// ConfigLogLevel устанавливает уровень логирования
func ConfigLogLevel(logLevel string) ConfigParam {
	return func(c *Config) {
		c.logLevel = logLevel
	}
}

// ConfigSecretKey устанавливает ключ подписи сессионных токенов
func ConfigSecretKey(secretKey string) ConfigParam {
	return func(c *Config) {
		c.secretKey = secretKey
	}
}

// ParseConfig собирает конфигурацию: значения по умолчанию, затем опции params (обычно из флагов),
// затем переменные окружения
func ParseConfig(log *slog.Logger, params ...ConfigParam) (Config, error) {
	cfg := DefaultConfig
	for _, p := range params {
		p(&cfg)
	}

	ec := environ{}
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("разбор переменных окружения. %w", err)
	}
	if ec.Address != "" {
		log.Debug("адрес сервера взят из переменной окружения", slog.String("переменная", EnvServerAddress))
		cfg.address = ec.Address
	}
	if ec.LogLevel != "" {
		cfg.logLevel = ec.LogLevel
	}
	if ec.SecretKey != "" {
		cfg.secretKey = ec.SecretKey
	}
	return cfg, nil
}
