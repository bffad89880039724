package db

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/civicalert/citizen-services/models"
)

const TimeFormat string = "2006-01-02T15:04:05Z"

// CreateUser writes a Users item keyed by the Cognito subject id.
func (s *ProfileStore) CreateUser(ctx context.Context, user models.UserRecord) error {
	user.CreatedAt = time.Now().UTC().Format(TimeFormat)

	if err := s.putItem(ctx, s.Tables.Users, user); err != nil {
		return err
	}

	s.Log.Debug().Str("userId", user.UserID).Str("role", user.Role).Msg("user record created")
	return nil
}

// CreateCitizen writes a Citizens item and the denormalized
// CitizenContact item used for outbound alerting. The two writes are
// not transactional: a failed contact write leaves the citizen record
// committed.
func (s *ProfileStore) CreateCitizen(ctx context.Context, citizen models.CitizenRecord) error {
	citizen.CreatedAt = time.Now().UTC().Format(TimeFormat)

	if err := s.putItem(ctx, s.Tables.Citizens, citizen); err != nil {
		return err
	}

	contact := models.ContactRecord{
		Mobile:    citizen.Mobile,
		FirstName: citizen.FirstName,
		LastName:  citizen.LastName,
		City:      citizen.City,
	}
	if err := s.putItem(ctx, s.Tables.Contacts, contact); err != nil {
		return err
	}

	s.Log.Debug().Str("citizenId", citizen.CitizenID).Msg("citizen and contact records created")
	return nil
}

// CreateAdmin writes an Admin item. The role attribute is always
// "admin" regardless of what the caller supplied.
func (s *ProfileStore) CreateAdmin(ctx context.Context, admin models.AdminRecord) error {
	admin.Role = "admin"
	admin.CreatedAt = time.Now().UTC().Format(TimeFormat)

	if err := s.putItem(ctx, s.Tables.Admins, admin); err != nil {
		return err
	}

	s.Log.Debug().Str("adminId", admin.AdminID).Msg("admin record created")
	return nil
}

func (s *ProfileStore) putItem(ctx context.Context, table string, record interface{}) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal item for table %s: %w", table, err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to write item to table %s: %w", table, err)
	}

	return nil
}
