package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/google/uuid"
)

const (
	DefaultRelayInterval  = time.Second
	DefaultRelayBatchSize = 100
)

type RelayMetrics interface {
	AddRelayed(count int)
}

// Relay moves committed reward events from the outbox table to a publisher.
// Delivery is at least once: a batch published before a failed commit is
// picked up again on the next pass.
type Relay struct {
	txManager database.TxManager
	outbox    domain.EventOutbox
	publisher domain.EventPublisher
	metrics   RelayMetrics
	logger    logging.Logger

	interval  time.Duration
	batchSize int
}

func NewRelay(
	txManager database.TxManager,
	outbox domain.EventOutbox,
	publisher domain.EventPublisher,
	metrics RelayMetrics,
	logger logging.Logger,
	interval time.Duration,
	batchSize int,
) *Relay {
	if interval <= 0 {
		interval = DefaultRelayInterval
	}
	if batchSize <= 0 {
		batchSize = DefaultRelayBatchSize
	}

	return &Relay{
		txManager: txManager,
		outbox:    outbox,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run relays on every tick until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("event relay started", "interval", r.interval.String(), "batch_size", r.batchSize)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("event relay stopped")
			return nil
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

func (r *Relay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		relayed, err := r.RelayOnce(ctx)
		if err != nil {
			r.logger.Error("failed to relay reward events", "error", err.Error())
			return
		}

		if relayed < r.batchSize {
			return
		}
	}
}

// RelayOnce publishes a single batch of unpublished events and returns its
// size.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var relayed int

	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		events, err := r.outbox.LockUnpublishedEvents(ctx, executor, r.batchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, events); err != nil {
			return fmt.Errorf("failed to publish events: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(events))
		for _, event := range events {
			ids = append(ids, event.ID)
		}

		if err := r.outbox.MarkPublished(ctx, executor, ids); err != nil {
			return err
		}

		relayed = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if relayed > 0 {
		r.metrics.AddRelayed(relayed)
	}

	return relayed, nil
}

// LogPublisher writes events to the logger. It stands in for a broker when
// none is configured.
type LogPublisher struct {
	logger logging.Logger
}

func NewLogPublisher(logger logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, events []domain.RewardEvent) error {
	for _, event := range events {
		args := []any{
			"id", event.ID.String(),
			"seq", event.Sequence,
			"kind", string(event.Kind),
			"asset_kind", string(event.AssetKind),
			"participant", event.Participant.Hex(),
			"quantity", event.Quantity,
		}
		if event.ItemID != nil {
			args = append(args, "item_id", *event.ItemID)
		}

		p.logger.Info("reward event", args...)
	}

	return nil
}
