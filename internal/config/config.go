package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	CMS    CMSConfig
	App    AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// CMSConfig holds the Contentful delivery API credentials. SpaceID and
// AccessToken together gate whether the live backend is used at all.
type CMSConfig struct {
	BaseURL     string
	SpaceID     string
	AccessToken string
	Environment string
}

type AppConfig struct {
	// MockDelay is the artificial latency of the demo dataset, so the
	// front end still exercises its loading states without a CMS.
	MockDelay time.Duration
}

// Configured reports whether both required CMS credentials are present.
// It is evaluated once at startup; there is no runtime backend toggling.
func (c CMSConfig) Configured() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CMS_BASE_URL", "https://cdn.contentful.com")
	viper.SetDefault("CMS_SPACE_ID", "")
	viper.SetDefault("CMS_ACCESS_TOKEN", "")
	viper.SetDefault("CMS_ENVIRONMENT", "master")
	viper.SetDefault("MOCK_DELAY_MS", 100)

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		CMS: CMSConfig{
			BaseURL:     viper.GetString("CMS_BASE_URL"),
			SpaceID:     viper.GetString("CMS_SPACE_ID"),
			AccessToken: viper.GetString("CMS_ACCESS_TOKEN"),
			Environment: viper.GetString("CMS_ENVIRONMENT"),
		},
		App: AppConfig{
			MockDelay: time.Duration(viper.GetInt("MOCK_DELAY_MS")) * time.Millisecond,
		},
	}

	return cfg, nil
}
