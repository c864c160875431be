package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const rabbitMQImage = "rabbitmq:3.13-alpine"

// SetupRabbitMQ starts a throwaway RabbitMQ broker and returns its AMQP URL.
// The container is removed when the test finishes.
func SetupRabbitMQ(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        rabbitMQImage,
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor: wait.ForListeningPort("5672/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	t.Cleanup(func() {
		if container == nil {
			return
		}
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("terminate rabbitmq container: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("start rabbitmq container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("rabbitmq host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5672/tcp")
	if err != nil {
		t.Fatalf("rabbitmq port: %v", err)
	}

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}
