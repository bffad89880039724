package db

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/civicalert/citizen-services/internal/appconfig"
	"github.com/civicalert/citizen-services/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type dynamoRecorder struct {
	tables []string
	items  []map[string]dynamotypes.AttributeValue
	err    error
}

func (d *dynamoRecorder) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.tables = append(d.tables, aws.ToString(params.TableName))
	d.items = append(d.items, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func newTestStore(recorder *dynamoRecorder) *ProfileStore {
	logger := zerolog.Nop()
	return NewProfileStore(recorder, appconfig.TablesConfig{
		Users:    "Users",
		Citizens: "Citizens",
		Admins:   "Admin",
		Contacts: "CitizenContact",
	}, &logger)
}

func TestCreateUser(t *testing.T) {
	recorder := &dynamoRecorder{}
	store := newTestStore(recorder)

	err := store.CreateUser(context.Background(), models.UserRecord{
		UserID: "sub-1",
		Email:  "a@b.com",
		Role:   "citizen",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Users"}, recorder.tables)

	var saved models.UserRecord
	assert.NoError(t, attributevalue.UnmarshalMap(recorder.items[0], &saved))
	assert.Equal(t, "sub-1", saved.UserID)
	assert.Equal(t, "a@b.com", saved.Email)
	assert.Equal(t, "citizen", saved.Role)
	assert.NotEmpty(t, saved.CreatedAt)
}

func TestCreateCitizen_WritesCitizenAndContact(t *testing.T) {
	recorder := &dynamoRecorder{}
	store := newTestStore(recorder)

	err := store.CreateCitizen(context.Background(), models.CitizenRecord{
		CitizenID: "sub-1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "a@b.com",
		Mobile:    "+919876543210",
		City:      "Pune",
		Address:   "12 MG Road",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Citizens", "CitizenContact"}, recorder.tables)

	var citizen models.CitizenRecord
	assert.NoError(t, attributevalue.UnmarshalMap(recorder.items[0], &citizen))
	assert.Equal(t, "sub-1", citizen.CitizenID)
	assert.Equal(t, "Asha", citizen.FirstName)
	assert.Equal(t, "Rao", citizen.LastName)
	assert.Equal(t, "Pune", citizen.City)
	assert.Equal(t, "12 MG Road", citizen.Address)
	assert.NotEmpty(t, citizen.CreatedAt)

	// The contact record carries only the alerting fields, keyed by mobile
	var contact models.ContactRecord
	assert.NoError(t, attributevalue.UnmarshalMap(recorder.items[1], &contact))
	assert.Equal(t, "+919876543210", contact.Mobile)
	assert.Equal(t, "Asha", contact.FirstName)
	assert.Equal(t, "Rao", contact.LastName)
	assert.Equal(t, "Pune", contact.City)
}

func TestCreateAdmin_ForcesAdminRole(t *testing.T) {
	recorder := &dynamoRecorder{}
	store := newTestStore(recorder)

	err := store.CreateAdmin(context.Background(), models.AdminRecord{
		AdminID:    "sub-2",
		FirstName:  "Ravi",
		LastName:   "Nair",
		Email:      "c@d.com",
		Mobile:     "+919876500000",
		Department: "Sanitation",
		Role:       "citizen", // caller-supplied role is ignored
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Admin"}, recorder.tables)

	var admin models.AdminRecord
	assert.NoError(t, attributevalue.UnmarshalMap(recorder.items[0], &admin))
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "Sanitation", admin.Department)
	assert.NotEmpty(t, admin.CreatedAt)
}

func TestCreateUser_WriteFailure(t *testing.T) {
	recorder := &dynamoRecorder{err: errors.New("ProvisionedThroughputExceededException")}
	store := newTestStore(recorder)

	err := store.CreateUser(context.Background(), models.UserRecord{UserID: "sub-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Users")
}
