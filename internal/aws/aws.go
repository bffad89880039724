package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// LoadAWSConfig initializes and returns an AWS SDK configuration.
// Credentials come from the process environment or the shared config.
func LoadAWSConfig(region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %v", err)
	}
	return cfg, nil
}

// NewCognitoClient initializes the Cognito identity provider client.
func NewCognitoClient(cfg aws.Config) *cognitoidentityprovider.Client {
	return cognitoidentityprovider.NewFromConfig(cfg)
}

// NewDynamoDBClient initializes the DynamoDB client.
func NewDynamoDBClient(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

// NewSecretsManagerClient initializes the AWS Secrets Manager client.
func NewSecretsManagerClient(cfg aws.Config) *secretsmanager.Client {
	return secretsmanager.NewFromConfig(cfg)
}

// NewSESClient initializes the AWS SES client.
func NewSESClient(cfg aws.Config) *sesv2.Client {
	return sesv2.NewFromConfig(cfg)
}

// NewSTSClient initializes the AWS STS client.
func NewSTSClient(cfg aws.Config) *sts.Client {
	return sts.NewFromConfig(cfg)
}

// CallerIdentity returns the ARN of the current AWS principal. Used at
// startup so unusable credentials fail the process early instead of
// surfacing on the first request.
func CallerIdentity(ctx context.Context, svc *sts.Client) (string, error) {
	out, err := svc.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to resolve AWS caller identity: %w", err)
	}
	return aws.ToString(out.Arn), nil
}

// GetSecretString fetches a plaintext secret from Secrets Manager.
func GetSecretString(ctx context.Context, svc *secretsmanager.Client, secretID string) (string, error) {
	out, err := svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch secret %q: %w", secretID, err)
	}
	return aws.ToString(out.SecretString), nil
}
