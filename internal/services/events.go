package services

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"usergroups/internal/models"
)

// EventPublisher sends a serialized lifecycle event under a routing key.
// pkg/rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

const (
	entityUser  = "user"
	entityGroup = "group"

	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

// publishEvent is best effort: a failure is logged and never reaches the caller,
// the mutation it describes has already been committed.
func publishEvent(publisher EventPublisher, entity, action, id string, data interface{}) {
	if publisher == nil {
		log.Debug().Str("entity", entity).Str("action", action).Msg("event publisher not configured, skipping event")
		return
	}

	routingKey := entity + "." + action
	body, err := json.Marshal(models.Event{
		Type:       routingKey,
		Entity:     entity,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to marshal event")
		return
	}
	if err := publisher.Publish(routingKey, body); err != nil {
		log.Warn().Err(err).Str("routing_key", routingKey).Str("id", id).Msg("failed to publish event")
		return
	}
	log.Debug().Str("routing_key", routingKey).Str("id", id).Msg("published event")
}
