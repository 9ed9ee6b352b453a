package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type apiConfig struct {
	BaseURL        string `yaml:"baseUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type ratingsConfig struct {
	MaxConcurrent     int     `yaml:"maxConcurrent"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
}

type authConfig struct {
	Secret string `yaml:"secret"`
}

type config struct {
	API     apiConfig     `yaml:"api"`
	Ratings ratingsConfig `yaml:"ratings"`
	Auth    authConfig    `yaml:"auth"`
}

func loadConfig(path string) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()

	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return config{}, err
	}
	if cfg.API.BaseURL == "" {
		return config{}, fmt.Errorf("api.baseUrl is required")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 10
	}
	if cfg.Ratings.MaxConcurrent <= 0 {
		cfg.Ratings.MaxConcurrent = 8
	}
	return cfg, nil
}
