package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service   *svcConfig
	AccessLog *accessLogConfig
}

type svcConfig struct {
	Address            string   `envconfig:"COVID19_ESTIMATOR_ADDRESS" default:":3000"`
	MetricsAddress     string   `envconfig:"COVID19_ESTIMATOR_METRICS_ADDRESS" default:":8080"`
	LogLevel           string   `envconfig:"COVID19_ESTIMATOR_LOG_LEVEL" default:"info"`
	CorsAllowedOrigins []string `envconfig:"COVID19_ESTIMATOR_CORS_ALLOWED_ORIGINS" default:"*"`
}

type accessLogConfig struct {
	Path            string        `envconfig:"COVID19_ESTIMATOR_ACCESS_LOG" default:"logs.txt"`
	MonitorInterval time.Duration `envconfig:"COVID19_ESTIMATOR_ACCESS_LOG_MONITOR_INTERVAL" default:"30s"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if cfg.AccessLog.MonitorInterval <= 0 {
		return nil, fmt.Errorf("COVID19_ESTIMATOR_ACCESS_LOG_MONITOR_INTERVAL must be positive, got %s", cfg.AccessLog.MonitorInterval)
	}
	return cfg, nil
}
