package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("BOT_TOKEN", "test_bot_token")
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("JWT_SECRET_KEY", "this_is_a_test_secret_key_with_32_chars_minimum")
	defer func() {
		os.Unsetenv("BOT_TOKEN")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("JWT_SECRET_KEY")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}

	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}

	if cfg.MinWithdrawTON != 0.5 {
		t.Errorf("MinWithdrawTON = %v, want 0.5", cfg.MinWithdrawTON)
	}

	if cfg.TapsPerTON != 1000 {
		t.Errorf("TapsPerTON = %v, want 1000", cfg.TapsPerTON)
	}

	if cfg.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, "en")
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing BOT_TOKEN",
			envVars: map[string]string{
				"DB_PASSWORD":    "password",
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing DB_PASSWORD",
			envVars: map[string]string{
				"BOT_TOKEN":      "token",
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing JWT_SECRET_KEY",
			envVars: map[string]string{
				"BOT_TOKEN":   "token",
				"DB_PASSWORD": "password",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error for missing required field, got nil")
			}
		})
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	cfg := &Config{
		BotToken:       "token",
		DBPassword:     "password",
		JWTSecret:      "short",
		MinWithdrawTON: 0.5,
		TapsPerTON:     1000,
	}

	err := cfg.Validate()
	if err == nil {
		t.Error("Validate() expected error for short JWT secret, got nil")
	}
}

func TestValidate_BadEconomyValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "Negative withdrawal threshold",
			cfg: &Config{
				BotToken:       "token",
				DBPassword:     "password",
				JWTSecret:      "this_is_a_test_secret_key_with_32_chars_minimum",
				MinWithdrawTON: -1,
				TapsPerTON:     1000,
			},
		},
		{
			name: "Zero taps divisor",
			cfg: &Config{
				BotToken:       "token",
				DBPassword:     "password",
				JWTSecret:      "this_is_a_test_secret_key_with_32_chars_minimum",
				MinWithdrawTON: 0.5,
				TapsPerTON:     0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid production config",
			cfg: &Config{
				AppEnv:         "production",
				DBSSLMode:      "require",
				JWTSecret:      "production_secret_key_different_from_default",
				SuperAdminTgID: 123456789,
			},
			shouldErr: false,
		},
		{
			name: "Development mode - no validation",
			cfg: &Config{
				AppEnv:    "development",
				DBSSLMode: "disable",
			},
			shouldErr: false,
		},
		{
			name: "Production without SSL",
			cfg: &Config{
				AppEnv:         "production",
				DBSSLMode:      "disable",
				JWTSecret:      "production_secret_key_different_from_default",
				SuperAdminTgID: 123456789,
			},
			shouldErr: true,
		},
		{
			name: "Production with default JWT secret",
			cfg: &Config{
				AppEnv:         "production",
				DBSSLMode:      "require",
				JWTSecret:      "your_jwt_secret_minimum_32_chars_here_change_this",
				SuperAdminTgID: 123456789,
			},
			shouldErr: true,
		},
		{
			name: "Production without super admin",
			cfg: &Config{
				AppEnv:         "production",
				DBSSLMode:      "require",
				JWTSecret:      "production_secret_key_different_from_default",
				SuperAdminTgID: 0,
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if tt.shouldErr && err == nil {
				t.Error("ValidateProductionSecurity() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateProductionSecurity() unexpected error = %v", err)
			}
		})
	}
}
