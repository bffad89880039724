package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfig = `host: 0.0.0.0
basePath: /api
aws:
  region: {{.TEST_AWS_REGION}}
cognito:
  clientId: {{.TEST_COGNITO_CLIENT_ID}}
pulsar:
  url: pulsar://localhost:6650
  topicProducer: registration-events
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_TemplatesEnvironment(t *testing.T) {
	t.Setenv("TEST_AWS_REGION", "ap-south-1")
	t.Setenv("TEST_COGNITO_CLIENT_ID", "client-123")

	cfg, err := LoadConfig(writeTestConfig(t))
	assert.NoError(t, err)
	assert.Equal(t, "ap-south-1", cfg.AWS.Region)
	assert.Equal(t, "client-123", cfg.Cognito.ClientID)
	assert.Equal(t, "pulsar://localhost:6650", cfg.Pulsar.URL)
}

func TestLoadConfig_AppliesTableDefaults(t *testing.T) {
	t.Setenv("TEST_AWS_REGION", "ap-south-1")
	t.Setenv("TEST_COGNITO_CLIENT_ID", "client-123")

	cfg, err := LoadConfig(writeTestConfig(t))
	assert.NoError(t, err)
	assert.Equal(t, "Users", cfg.AWS.Tables.Users)
	assert.Equal(t, "Citizens", cfg.AWS.Tables.Citizens)
	assert.Equal(t, "Admin", cfg.AWS.Tables.Admins)
	assert.Equal(t, "CitizenContact", cfg.AWS.Tables.Contacts)
	assert.Equal(t, "/api", cfg.BasePath)
}

func TestValidate_MissingClientID(t *testing.T) {
	cfg := &Config{AWS: AWSConfig{Region: "ap-south-1"}}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "client id")
}

func TestValidate_MissingRegion(t *testing.T) {
	cfg := &Config{Cognito: CognitoConfig{ClientID: "client-123"}}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestLoadConfig_MissingPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}
