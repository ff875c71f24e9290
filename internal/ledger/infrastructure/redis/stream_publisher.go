package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultStreamName   = "reward-events"
	DefaultStreamMaxLen = 100_000
)

// NewClient connects to the Redis instance at url and checks it answers.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// StreamPublisher appends reward events to a capped Redis stream.
type StreamPublisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewStreamPublisher(client redis.Cmdable, stream string, maxLen int64) *StreamPublisher {
	if stream == "" {
		stream = DefaultStreamName
	}
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}

	return &StreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

// Publish adds the whole batch in one MULTI/EXEC round trip.
func (p *StreamPublisher) Publish(ctx context.Context, events []domain.RewardEvent) error {
	if len(events) == 0 {
		return nil
	}

	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, event := range events {
			pipe.XAdd(ctx, &redis.XAddArgs{
				Stream: p.stream,
				MaxLen: p.maxLen,
				Approx: true,
				Values: eventValues(event),
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add events to stream %s: %w", p.stream, err)
	}

	return nil
}

func eventValues(event domain.RewardEvent) map[string]any {
	values := map[string]any{
		"id":          event.ID.String(),
		"seq":         strconv.FormatInt(event.Sequence, 10),
		"kind":        string(event.Kind),
		"asset_kind":  string(event.AssetKind),
		"participant": event.Participant.Hex(),
		"quantity":    strconv.FormatUint(event.Quantity, 10),
		"created_at":  event.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}

	if event.ItemID != nil {
		values["item_id"] = strconv.FormatUint(*event.ItemID, 10)
	}

	return values
}
