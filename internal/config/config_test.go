package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "task_manager.db", cfg.Database.Path)
	assert.Equal(t, "session.txt", cfg.Session.Path)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "database path override",
			envVars: map[string]string{
				"DATABASE_PATH": "/tmp/courses.db",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/courses.db", cfg.Database.Path)
			},
		},
		{
			name: "session path override",
			envVars: map[string]string{
				"SESSION_PATH": "/tmp/session.txt",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/session.txt", cfg.Session.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
