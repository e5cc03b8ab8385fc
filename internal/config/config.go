// Package config provides types for handling configuration parameters.
package config

import (
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles client-related constants and parameters.
type Config struct {
	APIConfig     *APIConfig
	StorageConfig *StorageConfig
	SecretConfig  *SecretConfig
}

// APIConfig defines default remote API parameters and overwrites them with environment variables.
type APIConfig struct {
	BaseURL     string `env:"BASE_URL" env-default:"http://localhost:5000"`
	Locale      string `env:"LOCALE" env-default:"en-US"`
	Timezone    string `env:"TIMEZONE" env-default:"UTC"`
	WalletsFile string `env:"WALLETS_FILE" env-default:"wallets.json"`
}

// StorageConfig retrieves collection storage-related parameters from environment.
type StorageConfig struct {
	FileStoragePath string `env:"FILE_STORAGE_PATH" env-default:"storage/infile/alert_storage.json"`
	DatabaseDSN     string `env:"DATABASE_DSN" env-default:""`
}

// SecretConfig retrieves ciphering-related parameters from environment.
type SecretConfig struct {
	UserKey string `env:"USER_KEY" env-default:"jds__63h3_7ds"`
}

// NewAPIConfig sets up a remote API configuration.
func NewAPIConfig() (*APIConfig, error) {
	cfg := APIConfig{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewStorageConfig sets up a storage configuration.
func NewStorageConfig() (*StorageConfig, error) {
	cfg := StorageConfig{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewSecretConfig sets up a secret configuration.
func NewSecretConfig() (*SecretConfig, error) {
	cfg := SecretConfig{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	apiCfg, err := NewAPIConfig()
	if err != nil {
		return nil, err
	}
	storageCfg, err := NewStorageConfig()
	if err != nil {
		return nil, err
	}
	secretCfg, err := NewSecretConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		APIConfig:     apiCfg,
		StorageConfig: storageCfg,
		SecretConfig:  secretCfg,
	}, nil
}

// ParseFlags parses command line arguments and stores them
func (c *Config) ParseFlags() {
	flag.StringVar(&c.APIConfig.BaseURL, "b", c.APIConfig.BaseURL, "LNbits instance base URL")
	flag.StringVar(&c.APIConfig.WalletsFile, "w", c.APIConfig.WalletsFile, "Wallets credentials file path")
	flag.StringVar(&c.StorageConfig.FileStoragePath, "f", c.StorageConfig.FileStoragePath, "File storage path")
	flag.StringVar(&c.StorageConfig.DatabaseDSN, "d", c.StorageConfig.DatabaseDSN, "PSQL DSN")
	flag.Parse()
}
