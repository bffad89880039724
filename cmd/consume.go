package cmd

import (
	"context"

	"github.com/civicalert/citizen-services/api/services"
	awsclient "github.com/civicalert/citizen-services/internal/aws"
	"github.com/civicalert/citizen-services/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer to send welcome emails for registration events",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if appCfg.Pulsar.URL == "" {
			log.Fatal().Msg("pulsar url is not configured")
		}

		awsCfg, err := awsclient.LoadAWSConfig(appCfg.AWS.Region)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load AWS config")
		}
		emailClient := awsclient.NewSESClient(awsCfg)

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		log.Info().Str("topic", appCfg.Pulsar.TopicConsumer).Msg("Waiting for registration events")

		// Consume messages
		for {
			event, msg, err := consumer.ReceiveRegistration(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("Error receiving registration event")
				if msg != nil {
					// Undecodable payloads are acked, redelivery cannot fix them
					consumer.Ack(msg)
				}
				continue
			}

			if event.Email == "" {
				log.Warn().Str("correlationId", event.CorrelationID).Msg("Registration event without email, skipping")
				consumer.Ack(msg)
				continue
			}

			if err := services.SendWelcomeEmail(context.Background(), emailClient, appCfg.Email.Source, event); err != nil {
				log.Error().Err(err).Str("correlationId", event.CorrelationID).Msg("Failed to send welcome email")
				consumer.Nack(msg)
				continue
			}

			log.Info().Str("correlationId", event.CorrelationID).Msg("Welcome email sent")
			consumer.Ack(msg)
		}
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
