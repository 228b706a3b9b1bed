package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress       string `env:"RUN_ADDRESS"`
	LendCoreAddress  string `env:"LENDCORE_ADDRESS"`
	JWTSessionSecret string `env:"JWT_SESSION_SECRET"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в продакшне конфигурация приходит из окружения
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.LendCoreAddress == "" {
		return nil, errors.New("lending core address is not set")
	}
	if conf.JWTSessionSecret == "" {
		return nil, errors.New("jwt session secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.LendCoreAddress, "l", "", "Lending core API base URL")
	flag.StringVar(&flagConfig.JWTSessionSecret, "s", "", "JWT session secret")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		LendCoreAddress:  defaultIfBlank(envConfig.LendCoreAddress, flagsConfig.LendCoreAddress),
		JWTSessionSecret: defaultIfBlank(envConfig.JWTSessionSecret, flagsConfig.JWTSessionSecret),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
