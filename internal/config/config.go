package config

import (
	"fmt"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	App    AppConfig    `yaml:"app"    validate:"required"`
	Logger LoggerConfig `yaml:"logger" validate:"required"`
	UI     UIConfig     `yaml:"ui"`
}

type AppConfig struct {
	Mode string `yaml:"mode" env:"APP_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn" validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level string onto logger.Level from wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "info":
		return logger.InfoLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.WarnLevel
	}
}

// LogEngine maps the configured engine string onto logger.Engine from wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type UIConfig struct {
	// Timezone is the IANA zone used to display and interpret the
	// form's minute-precision date/time field. Canonical storage
	// stays UTC regardless.
	Timezone string `yaml:"timezone" env:"UI_TIMEZONE" env-default:"UTC" validate:"required"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
