package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/civicalert/citizen-services/internal/events"
)

// EmailAPI is the slice of the SES client the welcome mailer uses.
type EmailAPI interface {
	SendEmail(ctx context.Context, input *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SendWelcomeEmail sends the post-registration welcome email for a
// consumed registration event.
func SendWelcomeEmail(ctx context.Context, client EmailAPI, source string, event events.RegistrationEvent) error {
	name := event.FirstName
	if name == "" {
		name = "there"
	}

	subject := "Welcome to CivicAlert"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account has been registered. You will now receive civic alerts for your area.\n\nThe CivicAlert team",
		name,
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(source),
		Destination: &sestypes.Destination{
			ToAddresses: []string{event.Email},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send welcome email to %s: %w", event.Email, err)
	}

	return nil
}
