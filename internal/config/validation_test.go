package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*WirecheckConfig)
		expected []string
	}{
		{
			name:   "defaults are valid",
			modify: func(*WirecheckConfig) {},
		},
		{
			name:     "unknown output",
			modify:   func(c *WirecheckConfig) { c.Validation.Output = "xml" },
			expected: []string{"validation.output"},
		},
		{
			name:     "negative max reports",
			modify:   func(c *WirecheckConfig) { c.Validation.MaxReports = -1 },
			expected: []string{"validation.maxReports"},
		},
		{
			name: "server",
			modify: func(c *WirecheckConfig) {
				c.Server.Host = " "
				c.Server.Port = 0
				c.Server.ShutdownTimeout = -time.Second
			},
			expected: []string{"server.host", "server.port", "server.shutdownTimeout"},
		},
		{
			name:     "log level",
			modify:   func(c *WirecheckConfig) { c.Logging.Level = "trace" },
			expected: []string{"logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.modify(&cfg)

			errs := Validate(cfg)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.expected, fields)
			assert.Equal(t, len(tt.expected) > 0, errs.HasErrors())
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add(nil)
	assert.False(t, errs.HasErrors())

	errs.Add(ValidationError{Field: "server.port", Message: "must be between 1 and 65535"})
	assert.Equal(t, "field 'server.port': must be between 1 and 65535", errs.Error())

	errs.Add(ValidationError{Message: "plain"})
	assert.Equal(t, "validation failed: field 'server.port': must be between 1 and 65535; plain", errs.Error())
}

func TestConfigurationError(t *testing.T) {
	ce := NewConfigurationErrorWithDetails("/etc/wirecheck/config.yaml", ErrorTypeParse,
		"config.yaml is not valid YAML", "yaml: line 2: did not find expected key", []string{"check indentation"})
	ce.LineNumber = 2

	assert.Equal(t, "[parse] config.yaml: config.yaml is not valid YAML: yaml: line 2: did not find expected key", ce.Error())

	detailed := ce.DetailedError()
	assert.Contains(t, detailed, "Configuration Error in config.yaml")
	assert.Contains(t, detailed, "  File: /etc/wirecheck/config.yaml")
	assert.Contains(t, detailed, "  Line: 2")
	assert.Contains(t, detailed, "    - check indentation")

	plain := NewConfigurationError("/tmp/config.yaml", ErrorTypeIO, "permission denied")
	assert.Equal(t, "[io] config.yaml: permission denied", plain.Error())
	assert.NotContains(t, plain.DetailedError(), "Line:")
}
