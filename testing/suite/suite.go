package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Redis   *miniredis.Miniredis
	Storage *redis.Client
}

// New starts an in-process Redis server for the test and returns a client
// connected to it. The server and client are closed on test cleanup.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	// tests shouldn't spam stdout; raise to debug and point at os.Stdout when investigating
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := miniredis.RunT(t)

	redisClient := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		if err := redisClient.Close(); err != nil {
			t.Logf("could not close redis client: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Redis:   server,
		Storage: redisClient,
	}
}

// NewLogger returns a logger for tests that don't need Redis.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
