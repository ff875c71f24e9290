package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=../../../gen/mocks/ledger/events.go -package=mocks

type EventKind string

const (
	Minted   EventKind = "minted"
	Redeemed EventKind = "redeemed"
)

type RewardEvent struct {
	ID          uuid.UUID
	Sequence    int64
	Kind        EventKind
	AssetKind   AssetKind
	Participant Address
	ItemID      *uint64
	Quantity    uint64
	CreatedAt   time.Time
}

func NewRewardEvent(kind EventKind, participant Address, settlement Settlement) RewardEvent {
	return RewardEvent{
		ID:          uuid.New(),
		Kind:        kind,
		AssetKind:   settlement.Kind,
		Participant: participant,
		ItemID:      settlement.ItemID(),
		Quantity:    settlement.Quantity(),
	}
}

// EventAppender writes events in the caller's transaction so they commit
// together with the ledger mutation they describe.
type EventAppender interface {
	AppendEvent(ctx context.Context, executor database.Executor, event RewardEvent) error
}

type EventHistoryFetcher interface {
	FetchParticipantEvents(ctx context.Context, participant Address, limit int) ([]RewardEvent, error)
}

type EventOutbox interface {
	LockUnpublishedEvents(ctx context.Context, querier database.Querier, limit int) ([]RewardEvent, error)
	MarkPublished(ctx context.Context, executor database.Executor, ids []uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, events []RewardEvent) error
}
