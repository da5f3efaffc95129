package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the ductsizer tool.
type Config struct {
	ProjectDir  string
	HistoryPath string
	Server      ServerConfig
	Report      ReportConfig
	Log         LogConfig
}

// ServerConfig holds the HTTP server settings used by `ductsizer serve`.
type ServerConfig struct {
	Addr string
}

// ReportConfig holds report generation settings.
type ReportConfig struct {
	Format    string
	OutputDir string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the given file, falling back to the
// DUCTSIZER_CONFIG_PATH environment variable and then to a ductsizer.yaml
// found on the search path. A missing config file is not an error; defaults
// and DUCTSIZER_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("project_dir", ".")
	v.SetDefault("history_path", "ductsizer_history.db")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("report.format", "text")
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if path == "" {
		path = os.Getenv("DUCTSIZER_CONFIG_PATH")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("ductsizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ductsizer")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("DUCTSIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		ProjectDir:  v.GetString("project_dir"),
		HistoryPath: v.GetString("history_path"),
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
		},
		Report: ReportConfig{
			Format:    v.GetString("report.format"),
			OutputDir: v.GetString("report.output_dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ProjectDir == "" {
		return fmt.Errorf("project_dir is required")
	}

	if cfg.HistoryPath == "" {
		return fmt.Errorf("history_path is required")
	}

	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	validFormats := map[string]bool{
		"text": true,
		"pdf":  true,
		"xlsx": true,
	}
	if !validFormats[strings.ToLower(cfg.Report.Format)] {
		return fmt.Errorf("invalid report format: %s (must be text, pdf, or xlsx)", cfg.Report.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
