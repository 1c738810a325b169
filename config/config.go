package config

import (
	"log"

	"github.com/spf13/viper"
)

var config *viper.Viper

// Init loads the default configuration file and merges the environment
// specific one over it. Environments map to config files: development uses
// testnet settings, production mainnet; anything else is taken literally.
func Init(env string) {
	config = viper.New()
	config.SetConfigType("yaml")
	config.SetConfigName("default")
	config.AddConfigPath("config/")
	if err := config.ReadInConfig(); err != nil {
		log.Fatal("error on parsing default configuration file")
	}

	configName := env
	switch env {
	case "development":
		configName = "testnet"
	case "production":
		configName = "mainnet"
	}

	envConfig := viper.New()
	envConfig.SetConfigType("yaml")
	envConfig.AddConfigPath("config/")
	envConfig.SetConfigName(configName)
	if err := envConfig.ReadInConfig(); err != nil {
		log.Fatalf("error on parsing %s configuration file: %v", configName, err)
	}

	config.MergeConfigMap(envConfig.AllSettings())
}

func GetConfig() *viper.Viper {
	return config
}
