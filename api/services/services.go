package services

import (
	"context"

	"github.com/civicalert/citizen-services/internal/appconfig"
	"github.com/civicalert/citizen-services/internal/events"
	"github.com/civicalert/citizen-services/models"
)

// ProfileWriter is the profile store interface the registration
// endpoint writes through.
type ProfileWriter interface {
	CreateUser(ctx context.Context, user models.UserRecord) error
	CreateCitizen(ctx context.Context, citizen models.CitizenRecord) error
	CreateAdmin(ctx context.Context, admin models.AdminRecord) error
}

// Service contains all shared dependencies for handlers. The client
// handles are constructed once at startup and are safe for concurrent
// use; Events is nil when no Pulsar broker is configured.
type Service struct {
	Config   *appconfig.Config
	Auth     *CognitoAuth
	Profiles ProfileWriter
	Events   events.Notifier
}
