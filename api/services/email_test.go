package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/civicalert/citizen-services/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendWelcomeEmail(t *testing.T) {
	client := new(MockEmailClient)
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(input *sesv2.SendEmailInput) bool {
		return aws.ToString(input.FromEmailAddress) == "noreply@civicalert.in" &&
			len(input.Destination.ToAddresses) == 1 &&
			input.Destination.ToAddresses[0] == "a@b.com"
	}), mock.Anything).Return(&sesv2.SendEmailOutput{}, nil)

	event := events.RegistrationEvent{
		Sub:       "sub-1",
		Email:     "a@b.com",
		FirstName: "Asha",
	}

	err := SendWelcomeEmail(context.Background(), client, "noreply@civicalert.in", event)
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestSendWelcomeEmail_SendFailure(t *testing.T) {
	client := new(MockEmailClient)
	client.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("address not verified"))

	event := events.RegistrationEvent{Email: "a@b.com"}

	err := SendWelcomeEmail(context.Background(), client, "noreply@civicalert.in", event)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "a@b.com")
}
