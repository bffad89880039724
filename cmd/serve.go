package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/civicalert/citizen-services/api/handlers"
	"github.com/civicalert/citizen-services/api/middleware"
	"github.com/civicalert/citizen-services/api/services"
	"github.com/civicalert/citizen-services/db"
	"github.com/civicalert/citizen-services/internal/appconfig"
	awsclient "github.com/civicalert/citizen-services/internal/aws"
	"github.com/civicalert/citizen-services/internal/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title CivicAlert Citizen Services API
// @version v1
// @description Registration, authentication and profile persistence for the CivicAlert platform.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		awsCfg, err := awsclient.LoadAWSConfig(appCfg.AWS.Region)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load AWS config")
		}

		// Check the AWS credentials are usable before serving traffic
		arn, err := awsclient.CallerIdentity(context.Background(), awsclient.NewSTSClient(awsCfg))
		if err != nil {
			log.Fatal().Err(err).Msg("AWS credentials check failed")
		}
		log.Info().Str("arn", arn).Msg("AWS credentials verified")

		// Initialise the Cognito client
		cognitoAuth, err := initializeCognitoAuth(awsCfg, appCfg.Cognito)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Cognito client")
		}

		// Initialise the profile store
		logger := log.With().Str("component", "profile-store").Logger()
		profiles := db.NewProfileStore(awsclient.NewDynamoDBClient(awsCfg), appCfg.AWS.Tables, &logger)

		// Initialize the event publisher when a broker is configured
		var notifier events.Notifier
		if appCfg.Pulsar.URL != "" {
			publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize event publisher")
			}
			defer publisher.Close()
			notifier = publisher
		}

		service := &services.Service{
			Config:   appCfg,
			Auth:     cognitoAuth,
			Profiles: profiles,
			Events:   notifier,
		}

		// Create routes
		r := mux.NewRouter()
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.CORS)
		api.Use(middleware.WithLogger)
		api.Use(middleware.RequestID)

		// Identity routes
		api.HandleFunc("/signup", handlers.SignUp(service)).Methods(http.MethodPost, http.MethodOptions)
		api.HandleFunc("/login", handlers.Login(service)).Methods(http.MethodPost, http.MethodOptions)
		api.HandleFunc("/verify", handlers.Verify(service)).Methods(http.MethodPost, http.MethodOptions)

		// Profile registration route, bearer token required
		api.Handle("/save-user", middleware.JWTMiddleware(handlers.SaveUser(service))).Methods(http.MethodPost, http.MethodOptions)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// initializeCognitoAuth builds the Cognito wrapper, resolving the app
// client secret from Secrets Manager when an ARN is configured.
func initializeCognitoAuth(awsCfg aws.Config, cfg appconfig.CognitoConfig) (*services.CognitoAuth, error) {
	clientSecret := cfg.ClientSecret

	if cfg.ClientSecretArn != "" {
		sm := awsclient.NewSecretsManagerClient(awsCfg)
		secret, err := awsclient.GetSecretString(context.Background(), sm, cfg.ClientSecretArn)
		if err != nil {
			return nil, err
		}
		clientSecret = secret
	}

	return services.NewCognitoAuth(awsclient.NewCognitoClient(awsCfg), cfg.ClientID, clientSecret), nil
}
