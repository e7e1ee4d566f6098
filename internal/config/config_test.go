package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	// Clear all config-related env vars
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Provider defaults
	assert.Equal(t, "mock", cfg.Provider.Name, "default provider")
	assert.Empty(t, cfg.Provider.KiwiAPIKey, "no kiwi key by default")
	assert.Empty(t, cfg.Provider.AmadeusClientID, "no amadeus id by default")
	assert.Empty(t, cfg.Provider.MockDataPath, "mock path defaults in the adapter")

	// Search defaults
	assert.Equal(t, "NOK", cfg.Search.Currency, "default currency")
	assert.Equal(t, "OSL", cfg.Search.Origin, "default origin")
	assert.Equal(t, "PER", cfg.Search.Destination, "default destination")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	// Set custom values
	setEnvVars(t, map[string]string{
		"SERVER_PORT":           "3000",
		"SERVER_READ_TIMEOUT":   "30s",
		"SERVER_WRITE_TIMEOUT":  "30s",
		"PROVIDER":              "kiwi",
		"KIWI_API_KEY":          "tequila-key",
		"AMADEUS_CLIENT_ID":     "amadeus-id",
		"AMADEUS_CLIENT_SECRET": "amadeus-secret",
		"MOCK_DATA_PATH":        "/tmp/flights.json",
		"DEFAULT_CURRENCY":      "EUR",
		"DEFAULT_ORIGIN":        "CPH",
		"DEFAULT_DESTINATION":   "SYD",
		"LOG_LEVEL":             "debug",
		"LOG_FORMAT":            "console",
		"APP_ENV":               "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "kiwi", cfg.Provider.Name)
	assert.Equal(t, "tequila-key", cfg.Provider.KiwiAPIKey)
	assert.Equal(t, "amadeus-id", cfg.Provider.AmadeusClientID)
	assert.Equal(t, "amadeus-secret", cfg.Provider.AmadeusClientSecret)
	assert.Equal(t, "/tmp/flights.json", cfg.Provider.MockDataPath)
	assert.Equal(t, "EUR", cfg.Search.Currency)
	assert.Equal(t, "CPH", cfg.Search.Origin)
	assert.Equal(t, "SYD", cfg.Search.Destination)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	// Only override port
	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "mock", cfg.Provider.Name, "default provider")
	assert.Equal(t, "NOK", cfg.Search.Currency, "default currency")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 80", "80", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_SearchDefaults tests route and currency validation.
func TestLoad_Validation_SearchDefaults(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"currency too short", "DEFAULT_CURRENCY", "NO", "DEFAULT_CURRENCY must be a 3-letter code"},
		{"currency too long", "DEFAULT_CURRENCY", "KRONER", "DEFAULT_CURRENCY must be a 3-letter code"},
		{"empty origin", "DEFAULT_ORIGIN", "", "DEFAULT_ORIGIN must not be empty"},
		{"empty destination", "DEFAULT_DESTINATION", "", "DEFAULT_DESTINATION must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_UnknownProviderAccepted tests that provider names are not
// validated at load time; the factory owns the fallback decision.
func TestLoad_UnknownProviderAccepted(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"PROVIDER": "teleporter"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "teleporter", cfg.Provider.Name)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid fatal", "fatal", true},
		// Note: empty string uses default value "info" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
		// Note: empty string uses default value "json" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
		// Note: empty string uses default value "development" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// TestConfig_IsProduction tests the IsProduction helper method.
func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", false},
		{"staging", false},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"PROVIDER",
		"KIWI_API_KEY",
		"KIWI_BASE_URL",
		"AMADEUS_CLIENT_ID",
		"AMADEUS_CLIENT_SECRET",
		"AMADEUS_BASE_URL",
		"SKYSCANNER_API_KEY",
		"MOCK_DATA_PATH",
		"DEFAULT_CURRENCY",
		"DEFAULT_ORIGIN",
		"DEFAULT_DESTINATION",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
