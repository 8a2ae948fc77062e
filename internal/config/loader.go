package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/giantswarm/wirecheck/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/wirecheck"
	configFileName = "config.yaml"
)

// osUserHomeDir is replaced in tests.
var osUserHomeDir = os.UserHomeDir

// GetUserConfigDir returns ~/.config/wirecheck.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// GetDefaultConfigPathOrPanic is GetUserConfigDir for flag defaults.
func GetDefaultConfigPathOrPanic() string {
	dir, err := GetUserConfigDir()
	if err != nil {
		panic(err)
	}
	return dir
}

// LoadConfig loads config.yaml from configPath on top of the defaults. A
// missing file is not an error. The result is validated.
func LoadConfig(configPath string) (WirecheckConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return WirecheckConfig{}, NewConfigurationError(configFilePath, ErrorTypeIO, err.Error())
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		cfgErr := NewConfigurationErrorWithDetails(configFilePath, ErrorTypeParse,
			"config.yaml is not valid YAML", err.Error(),
			[]string{"Check the indentation and the field names against the documented configuration"})
		cfgErr.LineNumber = lineOf(err)
		return WirecheckConfig{}, cfgErr
	}

	if errs := Validate(config); errs.HasErrors() {
		suggestions := make([]string, 0, len(errs))
		for _, e := range errs {
			suggestions = append(suggestions, fmt.Sprintf("fix %s (got %v)", e.Field, e.Value))
		}
		return WirecheckConfig{}, NewConfigurationErrorWithDetails(configFilePath, ErrorTypeValidation,
			"invalid configuration", errs.Error(), suggestions)
	}

	logging.Info("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// lineOf extracts the first line number reported by the YAML decoder.
func lineOf(err error) int {
	var typeErr *yaml.TypeError
	msg := err.Error()
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	var line int
	if i := strings.Index(msg, "line "); i >= 0 {
		_, _ = fmt.Sscanf(msg[i:], "line %d", &line)
	}
	return line
}
