package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_RequiresSecret(t *testing.T) {
	c := &Config{Port: "5000", JWTSecret: ""}
	err := c.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConfig_Validate_ProductionStrictness(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{
			name:        "short secret rejected in production",
			cfg:         Config{Port: "5000", JWTSecret: "short", DBPassword: "strong-enough", Env: "production"},
			expectError: true,
		},
		{
			name:        "default db password rejected in production",
			cfg:         Config{Port: "5000", JWTSecret: "secure-secret-at-least-32-chars-long", DBPassword: "password", Env: "production"},
			expectError: true,
		},
		{
			name:        "valid production config",
			cfg:         Config{Port: "5000", JWTSecret: "secure-secret-at-least-32-chars-long", DBPassword: "strong-enough", DBSSLMode: "require", Env: "production"},
			expectError: false,
		},
		{
			name:        "short secret tolerated in development",
			cfg:         Config{Port: "5000", JWTSecret: "short", Env: "development"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_FailsFastWithoutSecret(t *testing.T) {
	defer viper.Reset()
	os.Unsetenv("JWT_SECRET")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	defer viper.Reset()

	// These keys have no file entry and no default; they must reach the
	// unmarshalled config from the environment alone.
	t.Setenv("JWT_SECRET", "a-perfectly-valid-signing-secret")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASS", "hunter2")
	t.Setenv("CONTACT_EMAIL", "owner@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-perfectly-valid-signing-secret", cfg.JWTSecret)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "owner@example.com", cfg.ContactEmail)
	assert.True(t, cfg.MailConfigured())
}

func TestConfig_MailConfigured(t *testing.T) {
	c := &Config{SMTPHost: "mail.example.com", SMTPUser: "bot@example.com"}
	assert.False(t, c.MailConfigured(), "missing password should disable mail")

	c.SMTPPass = "hunter2"
	assert.True(t, c.MailConfigured())
}
