// Package configloader builds logger configurations from environment
// variables and YAML documents. Settings resolve in the usual order:
// environment overrides file contents, file contents override defaults.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/acomms-io/modemlog"
)

const defaultEnvPrefix = "MODEMLOG"

type rawConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Output string `mapstructure:"output" yaml:"output"`
	File   struct {
		Path       string `mapstructure:"path"        yaml:"path"`
		MaxBackups *int   `mapstructure:"max_backups" yaml:"max_backups"`
	} `mapstructure:"file" yaml:"file"`
	Color struct {
		Mode string `mapstructure:"mode" yaml:"mode"`
	} `mapstructure:"color" yaml:"color"`
}

// FromEnv loads configuration sourced from environment variables using the
// provided prefix. Environment keys are normalized by uppercasing and
// replacing dots with underscores, so "file.max_backups" under prefix
// "modem" reads MODEM_FILE_MAX_BACKUPS.
func FromEnv(prefix string) (*modemlog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, normalizePrefix(prefix))
	if err != nil {
		return nil, err
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*modemlog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromFile loads configuration from a YAML file and merges environment
// overrides using the default prefix.
func FromFile(path string) (*modemlog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, defaultEnvPrefix)
	if err != nil {
		return nil, err
	}

	viperInstance.SetConfigFile(path)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

func applyRaw(raw rawConfig) (*modemlog.Config, error) {
	cfg := modemlog.DefaultConfig()

	if raw.Level != "" {
		level, err := modemlog.ParseLevel(raw.Level)
		if err != nil {
			return nil, err
		}

		cfg.Level = level
	}

	if raw.Output != "" {
		writer, err := modemlog.ResolveOutput(raw.Output)
		if err != nil {
			return nil, err
		}

		cfg.Output = writer
	}

	if raw.File.Path != "" {
		cfg.FilePath = raw.File.Path
	}

	if raw.File.MaxBackups != nil {
		cfg.MaxBackups = *raw.File.MaxBackups
	}

	if raw.Color.Mode != "" {
		mode, err := modemlog.ParseColorMode(raw.Color.Mode)
		if err != nil {
			return nil, err
		}

		cfg.Color.Mode = mode
	}

	return &cfg, nil
}

// loadRawFromViper materializes bound-but-unset keys so Unmarshal sees
// values sourced from AutomaticEnv.
func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	for _, key := range allKeys() {
		if !viperInstance.IsSet(key) {
			continue
		}

		viperInstance.Set(key, viperInstance.Get(key))
	}

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	errorGroup := ewrap.NewErrorGroup()

	for _, key := range allKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultEnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}

func allKeys() []string {
	return []string{
		"level",
		"output",
		"file.path",
		"file.max_backups",
		"color.mode",
	}
}
