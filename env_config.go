package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/orayew2002/folhaponto/config"
)

const envPrefix = "FOLHAPONTO_"

// envConfig holds overrides read from FOLHAPONTO_* variables.
type envConfig struct {
	ConfigPath string // FOLHAPONTO_CONFIG: config file path
	Year       string // FOLHAPONTO_YEAR: reference year
	Month      string // FOLHAPONTO_MONTH: reference month
	Source     string // FOLHAPONTO_SOURCE: workbook path, bypasses the pattern
	Template   string // FOLHAPONTO_TEMPLATE: blank form PDF
	OutputDir  string // FOLHAPONTO_OUTPUT_DIR: where filled forms go
}

// knownEnvVars lists valid FOLHAPONTO_* variables.
// Used to warn about typos.
var knownEnvVars = map[string]bool{
	"FOLHAPONTO_CONFIG":     true,
	"FOLHAPONTO_YEAR":       true,
	"FOLHAPONTO_MONTH":      true,
	"FOLHAPONTO_SOURCE":     true,
	"FOLHAPONTO_TEMPLATE":   true,
	"FOLHAPONTO_OUTPUT_DIR": true,
}

// loadDotEnv loads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func loadDotEnv(log zerolog.Logger) {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("ignoring .env")
	}
}

// loadEnvConfig reads the recognised FOLHAPONTO_* variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("FOLHAPONTO_CONFIG"),
		Year:       os.Getenv("FOLHAPONTO_YEAR"),
		Month:      os.Getenv("FOLHAPONTO_MONTH"),
		Source:     os.Getenv("FOLHAPONTO_SOURCE"),
		Template:   os.Getenv("FOLHAPONTO_TEMPLATE"),
		OutputDir:  os.Getenv("FOLHAPONTO_OUTPUT_DIR"),
	}
}

// warnUnknownEnvVars logs a warning for every unrecognised FOLHAPONTO_* variable.
func warnUnknownEnvVars(log zerolog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			log.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overlays set variables onto cfg. It runs after the config
// file is loaded and before flags, giving: flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) error {
	if env.Year != "" {
		y, err := strconv.Atoi(strings.TrimSpace(env.Year))
		if err != nil {
			return fmt.Errorf("%w: FOLHAPONTO_YEAR=%q is not a number", config.ErrConfigInvalid, env.Year)
		}
		cfg.Period.Year = y
	}
	if env.Month != "" {
		m, err := strconv.Atoi(strings.TrimSpace(env.Month))
		if err != nil {
			return fmt.Errorf("%w: FOLHAPONTO_MONTH=%q is not a number", config.ErrConfigInvalid, env.Month)
		}
		cfg.Period.Month = m
	}
	if env.Source != "" {
		cfg.Source.Path = env.Source
	}
	if env.Template != "" {
		cfg.Output.Template = env.Template
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	return nil
}

// resolveConfig loads the config file named by flag or env, falling back to
// folhaponto.yaml when present and to the defaults otherwise, then applies
// env overrides.
func resolveConfig(flagPath string, env *envConfig, log zerolog.Logger) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = env.ConfigPath
	}

	var cfg *config.Config
	switch {
	case path != "":
		c, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			c, err := config.LoadConfig(config.DefaultFileName)
			if err != nil {
				return nil, err
			}
			cfg = c
			path = config.DefaultFileName
		} else {
			cfg = config.DefaultConfig()
		}
	}
	if path != "" {
		log.Debug().Str("config", path).Msg("config loaded")
	}

	if err := applyEnvConfig(env, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
