package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/civicalert/citizen-services/internal/appconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "citizen-services",
	Short: "Citizen Services",
	Long:  `Citizen Services is the registration and authentication gateway for the CivicAlert platform.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp configures logging and loads the config file. Required
// settings that are missing fail the process here rather than degrading
// to placeholder clients.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := appCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
