package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/logger"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "STOCKROOM"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyDataFile  = "data_file"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultBackend   = types.BackendCSV
	defaultLogLevel  = "warn"
	defaultLogFormat = logger.FormatConsole
)

// settings is the fully resolved configuration for one command run.
type settings struct {
	configDir string
	storage   types.Config
	log       logger.Config
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml or config directory is not an error; defaults apply.
// backend, log_level and log_format can also be set through STOCKROOM_*
// environment variables.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyLogLevel, cfgKeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveSettings applies flag overrides on top of v and validates the
// storage selection.
func resolveSettings(v *viper.Viper, configDir string) (settings, error) {
	backend := v.GetString(cfgKeyBackend)
	if flags.backend != "" {
		backend = flags.backend
	}
	level := v.GetString(cfgKeyLogLevel)
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	s := settings{
		configDir: configDir,
		storage: types.Config{
			Backend:  strings.ToLower(strings.TrimSpace(backend)),
			DataDir:  dataDir,
			DataFile: v.GetString(cfgKeyDataFile),
		},
		log: logger.Config{
			Level:  level,
			Format: v.GetString(cfgKeyLogFormat),
		},
	}
	if err := s.storage.Validate(); err != nil {
		return settings{}, fmt.Errorf("backend %q: %w", backend, err)
	}
	return s, nil
}
