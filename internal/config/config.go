package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Deletion DeletionConfig
}

type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

type StoreConfig struct {
	Path string
}

type DeletionConfig struct {
	// DefaultPassword is used until a password is stored. It gates
	// destructive actions as a confirmation prompt, nothing more.
	DefaultPassword string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "sales-funnel")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_PATH", "./data/salesfunnel.db")
	viper.SetDefault("DELETE_PASSWORD_DEFAULT", "1234")

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Deletion: DeletionConfig{
			DefaultPassword: viper.GetString("DELETE_PASSWORD_DEFAULT"),
		},
	}
}
