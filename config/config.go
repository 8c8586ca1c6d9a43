package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort      int    `mapstructure:"http_port"`
	LogLevel      string `mapstructure:"log_level"`
	DatabaseURL   string `mapstructure:"database_url"`
	SessionSecret string `mapstructure:"session_secret"`
	// Seed credentials for the out-of-band admin account. Admins are never
	// created through the public registration endpoint.
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

var AppConfig Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable overrides, e.g. SLUGPRESS_DATABASE_URL
	viper.SetEnvPrefix("SLUGPRESS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("http_port", 8080)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("session_secret", "default-very-insecure-secret-key") // CHANGE THIS IN PRODUCTION
	viper.SetDefault("admin_username", "admin")
	viper.SetDefault("admin_password", "adminpassword")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults and environment variables.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		panic(fmt.Errorf("unable to decode config into struct: %w", err))
	}
}
