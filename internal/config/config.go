package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	OpenAI     OpenAIConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type GenerationConfig struct {
	// PollInterval is the fixed delay between run status checks.
	PollInterval time.Duration
	// RunTimeout is the hard ceiling on one remote run; past it the run
	// is treated as expired.
	RunTimeout time.Duration
}

const (
	defaultPort         = 8090
	defaultBodyLimit    = 10 * 1024 * 1024
	defaultModel        = "gpt-4o"
	defaultPollInterval = 2 * time.Second
	defaultRunTimeout   = 120 * time.Second
)

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.SetDefault("server.port", defaultPort)
	viper.SetDefault("server.body_limit", defaultBodyLimit)
	viper.SetDefault("openai.model", defaultModel)
	viper.SetDefault("generation.poll_interval", defaultPollInterval)
	viper.SetDefault("generation.run_timeout", defaultRunTimeout)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("openai.api_key"),
			Model:  viper.GetString("openai.model"),
		},
		Generation: GenerationConfig{
			PollInterval: viper.GetDuration("generation.poll_interval"),
			RunTimeout:   viper.GetDuration("generation.run_timeout"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.OpenAI.APIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		config.OpenAI.Model = model
	}

	if config.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	return config, nil
}
