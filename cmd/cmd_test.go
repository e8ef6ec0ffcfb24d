package cmd

import (
	"testing"

	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usergroups/internal/config"
	"usergroups/internal/repositories"
)

func TestSetLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	setLogging("DEBUG")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	setLogging("error")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	setLogging("nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestAuditEvent(t *testing.T) {
	err := auditEvent(amqp.Delivery{
		RoutingKey: "user.created",
		Body:       []byte(`{"type":"user.created","entity":"user","entityId":"u1","occurredAt":"2024-01-01T00:00:00Z"}`),
	})
	assert.NoError(t, err)

	err = auditEvent(amqp.Delivery{Body: []byte("not json")})
	assert.Error(t, err)
}

func TestOpenStores(t *testing.T) {
	users, groups, err := openStores(&config.Config{DatabaseDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &repositories.MemoryUserRepository{}, users)
	assert.IsType(t, &repositories.MemoryGroupRepository{}, groups)

	users, _, err = openStores(&config.Config{DatabaseDriver: "sqlite", DatabaseDSN: "file:cmd_open_stores?mode=memory&cache=shared"})
	require.NoError(t, err)
	assert.IsType(t, &repositories.GORMUserRepository{}, users)

	_, _, err = openStores(&config.Config{DatabaseDriver: "oracle"})
	assert.Error(t, err)
}
