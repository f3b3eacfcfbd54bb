package config

import (
	"testing"
	"time"

	"mathdrill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:7001", cfg.Server.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "math_learning.db", cfg.GetDSN())
	assert.Equal(t, domain.ProviderDeepSeek, cfg.DefaultProvider())
	assert.Equal(t, 300*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "deepseek-chat", cfg.AI.DeepSeek.Model)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Gemini.Model)
}

func TestLoadConfig_PlainEnvNames(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("DEEPSEEK_API_KEY", "d-key")
	t.Setenv("PROXY_URL", "socks5://127.0.0.1:1080")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.ProviderGemini, cfg.DefaultProvider())
	assert.Equal(t, "g-key", cfg.AI.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Gemini.Model)
	assert.Equal(t, "d-key", cfg.AI.DeepSeek.APIKey)
	assert.Equal(t, "socks5://127.0.0.1:1080", cfg.AI.ProxyURL)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadConfig_PrefixedEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("APP_AI_DEEPSEEK_API_KEY", "prefixed")
	t.Setenv("APP_DB_DRIVER", "oracle")
	t.Setenv("APP_DB_HOST", "db")
	t.Setenv("APP_DB_PORT", "1521")
	t.Setenv("APP_DB_USER", "u")
	t.Setenv("APP_DB_PASSWORD", "p")
	t.Setenv("APP_DB_NAME", "FREEPDB1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prefixed", cfg.AI.DeepSeek.APIKey)
	assert.Equal(t, "oracle://u:p@db:1521/FREEPDB1", cfg.GetDSN())
}

func TestLoadConfig_InvalidProvider(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("AI_PROVIDER", "openai")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ai.provider")
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DB: DBConfig{Driver: DriverSQLite},
			AI: AIConfig{Provider: "deepseek", Timeout: time.Minute},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("normalizes provider", func(t *testing.T) {
		cfg := base()
		cfg.AI.Provider = " GEMINI "
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "gemini", cfg.AI.Provider)
	})

	t.Run("empty provider", func(t *testing.T) {
		cfg := base()
		cfg.AI.Provider = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.DB.Driver = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := base()
		cfg.AI.Timeout = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_ProviderConfig(t *testing.T) {
	cfg := &Config{AI: AIConfig{
		Timeout:  5 * time.Second,
		DeepSeek: ProviderSettings{APIKey: "d", BaseURL: "https://d", Model: "deepseek-chat"},
		Gemini:   ProviderSettings{APIKey: "g", BaseURL: "https://g", Model: "gemini-2.5-pro"},
	}}

	ds, err := cfg.ProviderConfig(domain.ProviderDeepSeek)
	require.NoError(t, err)
	assert.Equal(t, "DEEPSEEK_API_KEY", ds.CredentialName)
	assert.Equal(t, "d", ds.APIKey)
	assert.Equal(t, 5*time.Second, ds.Timeout)

	gm, err := cfg.ProviderConfig(domain.ProviderGemini)
	require.NoError(t, err)
	assert.Equal(t, "GEMINI_API_KEY", gm.CredentialName)
	assert.Equal(t, "gemini-2.5-pro", gm.Model)

	_, err = cfg.ProviderConfig("openai")
	assert.Error(t, err)
}

func TestConfig_ParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 2*time.Minute, cfg.ParseTTLStringOrDefault("2m", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("soon", time.Hour))
}
