package redis

import (
	"testing"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestEventValues(t *testing.T) {
	t.Parallel()

	itemID := uint64(9)
	event := domain.RewardEvent{
		ID:          uuid.MustParse("6f1c2b9e-2d7a-4f1e-9a51-0c8d3e4b5a61"),
		Sequence:    42,
		Kind:        domain.Minted,
		AssetKind:   domain.UniqueItem,
		Participant: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		ItemID:      &itemID,
		Quantity:    1,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	values := eventValues(event)

	assert.Equal(t, "6f1c2b9e-2d7a-4f1e-9a51-0c8d3e4b5a61", values["id"])
	assert.Equal(t, "42", values["seq"])
	assert.Equal(t, "minted", values["kind"])
	assert.Equal(t, "unique_item", values["asset_kind"])
	assert.Equal(t, event.Participant.Hex(), values["participant"])
	assert.Equal(t, "9", values["item_id"])
	assert.Equal(t, "1", values["quantity"])
	assert.Equal(t, "2025-03-01T12:00:00.000000Z", values["created_at"])

	event.ItemID = nil
	_, ok := eventValues(event)["item_id"]
	assert.False(t, ok)
}

func TestNewStreamPublisher_Defaults(t *testing.T) {
	t.Parallel()

	publisher := NewStreamPublisher(nil, "", 0)

	assert.Equal(t, DefaultStreamName, publisher.stream)
	assert.Equal(t, int64(DefaultStreamMaxLen), publisher.maxLen)
}

func TestStreamPublisher_Publish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := t.Context()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	participant := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	events := []domain.RewardEvent{
		{ID: uuid.New(), Sequence: 1, Kind: domain.Minted, AssetKind: domain.Fungible, Participant: participant, Quantity: 5},
		{ID: uuid.New(), Sequence: 2, Kind: domain.Redeemed, AssetKind: domain.Fungible, Participant: participant, Quantity: 5},
	}

	publisher := NewStreamPublisher(client, "test-rewards", 10)
	require.NoError(t, publisher.Publish(ctx, events))
	require.NoError(t, publisher.Publish(ctx, nil))

	messages, err := client.XRange(ctx, "test-rewards", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, events[0].ID.String(), messages[0].Values["id"])
	assert.Equal(t, "minted", messages[0].Values["kind"])
	assert.Equal(t, events[1].ID.String(), messages[1].Values["id"])
	assert.Equal(t, "redeemed", messages[1].Values["kind"])
}

func TestNewClient_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(t.Context(), "not-a-redis-url")
	assert.Error(t, err)
}
