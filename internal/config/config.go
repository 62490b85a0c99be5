// Package config provides configuration management for the application.
package config

import (
	"log"
	"time"

	"github.com/hibare/GoCommon/v2/pkg/env"
	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/jjankovic/site/internal/constants"
)

// LoggerConfig defines logging configuration parameters.
type LoggerConfig struct {
	Level string
	Mode  string
}

// ServerConfig defines server configuration parameters.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	APITokens    []string
}

// HTTPClientConfig defines HTTP client configuration parameters.
type HTTPClientConfig struct {
	Timeout time.Duration
}

// FaviconConfig defines where the source icon comes from.
// An empty Source means the embedded icon is used.
type FaviconConfig struct {
	Source  string
	Workers int
}

// Config represents the complete application configuration.
type Config struct {
	Logger     LoggerConfig
	Server     ServerConfig
	HTTPClient HTTPClientConfig
	Favicon    FaviconConfig
}

// Current holds the active application configuration.
var Current *Config

// Load initializes and loads the application configuration.
func Load() {
	env.Load()

	Current = &Config{
		Logger: LoggerConfig{
			Level: env.MustString("SITE_LOG_LEVEL", commonLogger.DefaultLoggerLevel),
			Mode:  env.MustString("SITE_LOG_MODE", commonLogger.DefaultLoggerMode),
		},
		Server: ServerConfig{
			Port:         env.MustInt("SITE_LISTEN_PORT", constants.DefaultListenPort),
			ReadTimeout:  env.MustDuration("SITE_SERVER_READ_TIMEOUT", constants.DefaultServerReadTimeout),
			WriteTimeout: env.MustDuration("SITE_SERVER_WRITE_TIMEOUT", constants.DefaultServerWriteTimeout),
			IdleTimeout:  env.MustDuration("SITE_SERVER_IDLE_TIMEOUT", constants.DefaultServerIdleTimeout),
			APITokens:    env.MustStringSlice("SITE_API_TOKENS", []string{}),
		},
		HTTPClient: HTTPClientConfig{
			Timeout: env.MustDuration("SITE_HTTP_CLIENT_TIMEOUT", constants.DefaultHTTPClientTimeout),
		},
		Favicon: FaviconConfig{
			Source:  env.MustString("SITE_FAVICON_SOURCE", ""),
			Workers: env.MustInt("SITE_FAVICON_WORKERS", constants.DefaultFaviconWorkers),
		},
	}

	if !commonLogger.IsValidLogLevel(Current.Logger.Level) {
		log.Fatal("Error invalid logger level")
	}

	if !commonLogger.IsValidLogMode(Current.Logger.Mode) {
		log.Fatal("Error invalid logger mode")
	}

	if Current.Server.Port <= 0 || Current.Server.Port > 65535 {
		log.Fatal("Error invalid listen port")
	}

	if Current.Favicon.Workers < 1 {
		log.Fatal("Error favicon workers must be at least 1")
	}

	commonLogger.InitLogger(&Current.Logger.Level, &Current.Logger.Mode)
}
