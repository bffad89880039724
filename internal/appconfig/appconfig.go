package appconfig

import (
	"bytes"
	"errors"
	"html/template"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string        `yaml:"host"`
	BasePath string        `yaml:"basePath"`
	AWS      AWSConfig     `yaml:"aws"`
	Cognito  CognitoConfig `yaml:"cognito"`
	Pulsar   PulsarConfig  `yaml:"pulsar"`
	Email    EmailConfig   `yaml:"email"`
}

// AWSConfig defines the region and the profile store table names
type AWSConfig struct {
	Region string       `yaml:"region"`
	Tables TablesConfig `yaml:"tables"`
}

// TablesConfig holds the logical DynamoDB table names. These are fixed
// for the platform; unset entries fall back to the deployed defaults.
type TablesConfig struct {
	Users    string `yaml:"users"`
	Citizens string `yaml:"citizens"`
	Admins   string `yaml:"admins"`
	Contacts string `yaml:"contacts"`
}

// CognitoConfig defines the identity provider app client details. The
// client secret is optional: it can be given inline (usually templated
// from the environment) or as a Secrets Manager ARN resolved at startup.
type CognitoConfig struct {
	ClientID        string `yaml:"clientId"`
	ClientSecret    string `yaml:"clientSecret"`
	ClientSecretArn string `yaml:"clientSecretArn"`
}

// PulsarConfig defines the messaging system connection details
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

// EmailConfig defines the sender identity for welcome emails
type EmailConfig struct {
	Source string `yaml:"source"`
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

// Validate checks that configuration required at startup is present.
// Missing identity provider or region settings fail startup instead of
// degrading to a placeholder client.
func (c *Config) Validate() error {
	if c.Cognito.ClientID == "" {
		return errors.New("cognito client id is not configured")
	}
	if c.AWS.Region == "" {
		return errors.New("aws region is not configured")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.AWS.Tables.Users == "" {
		c.AWS.Tables.Users = "Users"
	}
	if c.AWS.Tables.Citizens == "" {
		c.AWS.Tables.Citizens = "Citizens"
	}
	if c.AWS.Tables.Admins == "" {
		c.AWS.Tables.Admins = "Admin"
	}
	if c.AWS.Tables.Contacts == "" {
		c.AWS.Tables.Contacts = "CitizenContact"
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
