package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	amqp "github.com/streadway/amqp"

	"usergroups/internal/models"
	"usergroups/pkg/rabbitmq"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Log every user and group lifecycle event from the audit queue",
	Run: func(cmd *cobra.Command, args []string) {
		commonSetUp()

		if !appCfg.EventsEnabled() {
			log.Fatal().Msg("RABBITMQ_URL must be set to consume events")
		}

		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:        appCfg.RabbitMQURL,
			Exchange:   appCfg.Exchange,
			AuditQueue: appCfg.AuditQueue,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()

		if err := mqClient.ConsumeEvents(auditEvent); err != nil {
			log.Fatal().Err(err).Msg("Failed to consume events")
		}
	},
}

// auditEvent logs one lifecycle event. Malformed messages are rejected.
func auditEvent(msg amqp.Delivery) error {
	var event models.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	log.Info().
		Str("routing_key", msg.RoutingKey).
		Str("type", event.Type).
		Str("entity", event.Entity).
		Str("entity_id", event.EntityID).
		Time("occurred_at", event.OccurredAt).
		Msg("audit")
	return nil
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
