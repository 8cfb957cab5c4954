package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigurations(t *testing.T) {
	config1 := GetConfigurations()
	config2 := GetConfigurations()

	assert.Equal(t, config1, config2, "GetConfigurations should return the same configuration object every time it's called")
}

func TestGetConfigFromEnv(t *testing.T) {
	os.Setenv("PORTFOLIO0_LOG_LEVEL", "debug")
	os.Setenv("PORTFOLIO0_PORT", "8080")
	os.Setenv("PORTFOLIO0_DB_FILE_PATH", "/tmp/portfolio_test.db")
	os.Setenv("PORTFOLIO0_SITE_URL", "https://example.dev")
	os.Setenv("PORTFOLIO0_CACHE_TTL_SECONDS", "120")
	defer func() {
		os.Unsetenv("PORTFOLIO0_LOG_LEVEL")
		os.Unsetenv("PORTFOLIO0_PORT")
		os.Unsetenv("PORTFOLIO0_DB_FILE_PATH")
		os.Unsetenv("PORTFOLIO0_SITE_URL")
		os.Unsetenv("PORTFOLIO0_CACHE_TTL_SECONDS")
	}()

	config := getConfigFromEnv()

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "/tmp/portfolio_test.db", config.DBFilePath)
	assert.Equal(t, "https://example.dev", config.SiteURL)
	assert.Equal(t, uint64(120), config.CacheTTLSeconds)
}

func TestSetDefaults(t *testing.T) {
	config := PortfolioConfig{}
	setDefaults(&config)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "9121", config.Port)
	assert.Equal(t, "portfolio.db", config.DBFilePath)
	assert.Equal(t, "http://localhost:9121", config.SiteURL)
	assert.Equal(t, uint64(3600), config.CacheTTLSeconds)
}
