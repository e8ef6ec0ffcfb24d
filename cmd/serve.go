package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"usergroups/internal/config"
	"usergroups/internal/database"
	"usergroups/internal/repositories"
	"usergroups/internal/server"
	"usergroups/internal/services"
	"usergroups/pkg/rabbitmq"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {
		commonSetUp()

		userRepo, groupRepo, err := openStores(appCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize record stores")
		}

		// Events are optional; a nil interface leaves the services publishing nothing.
		var publisher services.EventPublisher
		if appCfg.EventsEnabled() {
			mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
				URL:        appCfg.RabbitMQURL,
				Exchange:   appCfg.Exchange,
				AuditQueue: appCfg.AuditQueue,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
			}
			defer mqClient.Close()
			publisher = mqClient
		} else {
			log.Info().Msg("RABBITMQ_URL not set, lifecycle events disabled")
		}

		opts := server.Options{
			Users:           services.NewUserService(userRepo, services.NewUserValidator(userRepo), publisher),
			Groups:          services.NewGroupService(groupRepo, services.NewGroupValidator(groupRepo, userRepo), publisher),
			DefaultPageSize: appCfg.DefaultPageSize,
			MaxPageSize:     appCfg.MaxPageSize,
			AccessLog:       true,
		}
		if appCfg.AuthEnabled() {
			opts.Tokens = services.NewTokenService(appCfg.JWTSecret, appCfg.TokenTTL)
		} else {
			log.Warn().Msg("JWT_SECRET not set, API is unauthenticated")
		}
		app := server.New(opts)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			log.Info().Str("port", appCfg.AppPort).Msg("Starting server")
			if err := app.Listen(appCfg.AppPort); err != nil {
				log.Fatal().Err(err).Msg("Server failed to start")
			}
		}()

		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Error during Fiber shutdown")
		}
		log.Info().Msg("Server gracefully stopped")
	},
}

// openStores builds the record stores for the configured driver. SQL stores are
// migrated before use.
func openStores(cfg *config.Config) (repositories.UserRepository, repositories.GroupRepository, error) {
	if cfg.DatabaseDriver == database.DriverMemory {
		log.Warn().Msg("Using in-memory record stores, data is lost on exit")
		return repositories.NewMemoryUserRepository(), repositories.NewMemoryGroupRepository(), nil
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMUserRepository(db), repositories.NewGORMGroupRepository(db), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
