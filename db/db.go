package db

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/civicalert/citizen-services/internal/appconfig"
	"github.com/rs/zerolog"
)

// DynamoAPI is the slice of the DynamoDB client the profile store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ProfileStore issues profile record writes against DynamoDB. It holds
// no state beyond the client handle and is safe for concurrent use.
type ProfileStore struct {
	Client DynamoAPI
	Tables appconfig.TablesConfig
	Log    *zerolog.Logger
}

// NewProfileStore is a constructor that initializes ProfileStore with
// a DynamoDB client and the configured table names.
func NewProfileStore(client DynamoAPI, tables appconfig.TablesConfig, log *zerolog.Logger) *ProfileStore {
	return &ProfileStore{
		Client: client,
		Tables: tables,
		Log:    log,
	}
}
