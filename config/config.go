package config

import (
	"os"
	"path"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"portfolio0/constants"
)

// PortfolioConfig holds every non-secret runtime setting. It is read once at
// process start and handed to the components that need it.
type PortfolioConfig struct {
	LogLevel        string `json:"logLevel" yaml:"LogLevel"`
	Port            string `json:"port" yaml:"Port"`
	DBFilePath      string `json:"dbFilePath" yaml:"DBFilePath"`
	SiteURL         string `json:"siteUrl" yaml:"SiteURL"`
	CacheTTLSeconds uint64 `json:"cacheTTLSeconds" yaml:"CacheTTLSeconds"`
}

var cachedConfig *PortfolioConfig

// GetConfigurations loads configurations from a config.yml next to the
// binary when one exists, otherwise from PORTFOLIO0_* environment variables.
func GetConfigurations() *PortfolioConfig {
	if cachedConfig != nil {
		return cachedConfig
	}

	binPath := GetBinPath()

	fs := afero.NewOsFs()
	data, err := afero.ReadFile(fs, binPath+"/"+constants.ConfigFileName)

	config := PortfolioConfig{}

	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
		config = getConfigFromEnv()
	} else {
		err = yaml.Unmarshal(data, &config)
		if err != nil {
			panic(err)
		}
	}

	setDefaults(&config)

	cachedConfig = &config
	return cachedConfig
}

func getConfigFromEnv() PortfolioConfig {
	viper.SetEnvPrefix("PORTFOLIO0")
	viper.AutomaticEnv()

	return PortfolioConfig{
		LogLevel:        viper.GetString("log_level"),
		Port:            viper.GetString("port"),
		DBFilePath:      viper.GetString("db_file_path"),
		SiteURL:         viper.GetString("site_url"),
		CacheTTLSeconds: viper.GetUint64("cache_ttl_seconds"),
	}
}

func setDefaults(config *PortfolioConfig) {
	if len(config.LogLevel) < 1 {
		config.LogLevel = "info"
	}
	if len(config.Port) < 1 {
		config.Port = constants.DefaultPort
	}
	if len(config.DBFilePath) < 1 {
		config.DBFilePath = constants.SqliteDbFileName
	}
	if len(config.SiteURL) < 1 {
		config.SiteURL = "http://localhost:" + config.Port
	}
	if config.CacheTTLSeconds < 1 {
		config.CacheTTLSeconds = constants.DefaultCacheTTLSeconds
	}
}

func GetBinPath() string {
	e, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return path.Dir(e)
}
