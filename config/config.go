package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

const (
	defaultWaitTimeSeconds   = 20
	defaultClientIdleSeconds = 10
	defaultLogLevel          = "debug"
)

type Config struct {
	Aws              *AWSsqsConfig `yaml:"aws"`
	LogFilePath      string        `yaml:"logFile"`
	LogLevel         string        `yaml:"logLevel"`
	ClientsInputPath string        `yaml:"clientsInputPath"`
	// ServerWaitTimeSeconds is the SQS long polling wait, 0..20
	ServerWaitTimeSeconds int64 `yaml:"serverWaitTimeSeconds"`
	ClientIdleSeconds     int64 `yaml:"clientIdleSeconds"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Substitute from environemental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{
		Aws:                   &AWSsqsConfig{},
		LogLevel:              defaultLogLevel,
		ServerWaitTimeSeconds: defaultWaitTimeSeconds,
		ClientIdleSeconds:     defaultClientIdleSeconds,
	}

	err = yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
