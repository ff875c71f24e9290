package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectEventsSQL = `SELECT id, seq, kind, asset_kind, participant, item_id, quantity, created_at FROM reward_events`

type EventsRepository struct {
	querier database.Querier
}

func NewEventsRepository(querier database.Querier) *EventsRepository {
	return &EventsRepository{
		querier: querier,
	}
}

func (er *EventsRepository) AppendEvent(ctx context.Context, executor database.Executor, event domain.RewardEvent) error {
	sql := `INSERT INTO reward_events (id, kind, asset_kind, participant, item_id, quantity) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := executor.Exec(ctx, sql,
		event.ID,
		string(event.Kind),
		string(event.AssetKind),
		event.Participant.Hex(),
		optionalItemParam(event.ItemID),
		int64(event.Quantity),
	)
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.Kind, err)
	}

	return nil
}

// FetchParticipantEvents returns the latest events of participant, newest first.
func (er *EventsRepository) FetchParticipantEvents(ctx context.Context, participant domain.Address, limit int) ([]domain.RewardEvent, error) {
	sql := selectEventsSQL + ` WHERE participant = $1 ORDER BY seq DESC LIMIT $2`

	rows, err := er.querier.Query(ctx, sql, participant.Hex(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select participant events: %w", err)
	}

	return scanEvents(rows)
}

// LockUnpublishedEvents returns unpublished events in commit order. Rows
// locked by another relay are skipped.
func (er *EventsRepository) LockUnpublishedEvents(ctx context.Context, querier database.Querier, limit int) ([]domain.RewardEvent, error) {
	sql := selectEventsSQL + ` WHERE published_at IS NULL ORDER BY seq LIMIT $1 FOR UPDATE SKIP LOCKED`

	rows, err := querier.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select unpublished events: %w", err)
	}

	return scanEvents(rows)
}

func (er *EventsRepository) MarkPublished(ctx context.Context, executor database.Executor, ids []uuid.UUID) error {
	sql := `UPDATE reward_events SET published_at = now() WHERE id = ANY($1)`

	_, err := executor.Exec(ctx, sql, ids)
	if err != nil {
		return fmt.Errorf("failed to mark events published: %w", err)
	}

	return nil
}

func scanEvents(rows pgx.Rows) ([]domain.RewardEvent, error) {
	defer rows.Close()

	events := make([]domain.RewardEvent, 0)
	for rows.Next() {
		var (
			event       domain.RewardEvent
			kind        string
			assetKind   string
			participant string
			itemID      *int64
			quantity    int64
		)

		err := rows.Scan(&event.ID, &event.Sequence, &kind, &assetKind, &participant, &itemID, &quantity, &event.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}

		event.Kind = domain.EventKind(kind)
		event.AssetKind = domain.AssetKind(assetKind)
		event.Participant = common.HexToAddress(participant)
		event.ItemID = optionalItemValue(itemID)
		event.Quantity = uint64(quantity)

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}

	return events, nil
}
