package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"usergroups/internal/config"
)

var (
	logLevel   string
	configPath string
	appCfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "usergroups",
	Short: "User and group administration service",
	Long:  `usergroups manages user and group records with soft deletion and uniqueness among active records.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "",
		"sets the log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a config file")
}

// commonSetUp loads the config and sets up logging.
func commonSetUp() {
	var err error
	appCfg, err = config.Load(configPath)
	if err != nil {
		setLogging("info")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level := appCfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	setLogging(level)
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
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
