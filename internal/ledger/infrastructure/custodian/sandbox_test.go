package custodian

import (
	"context"
	"sync"
	"testing"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxItems_Transfer(t *testing.T) {
	t.Parallel()

	items := NewSandboxItems(testCustody)

	assert.Equal(t, testCustody, items.OwnerOf(7))
	require.NoError(t, items.Transfer(t.Context(), testCustody, testParticipant, 7))
	assert.Equal(t, testParticipant, items.OwnerOf(7))

	err := items.Transfer(t.Context(), testCustody, testParticipant, 7)
	assert.ErrorIs(t, err, ErrNotItemOwner)

	err = items.Transfer(t.Context(), testParticipant, domain.Address{}, 7)
	assert.ErrorIs(t, err, ErrZeroAddress)

	count, err := items.BalanceOf(t.Context(), testParticipant)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSandboxItems_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	items := NewSandboxItems(testCustody)
	err := items.Transfer(ctx, testCustody, testParticipant, 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, testCustody, items.OwnerOf(1))
}

func TestSandboxFunds_Transfer(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		from     domain.Address
		to       domain.Address
		quantity uint64

		expectedErr  error
		expectedFrom uint64
		expectedTo   uint64
	}

	tests := []testCase{
		{
			name:         "within balance",
			from:         testCustody,
			to:           testParticipant,
			quantity:     5,
			expectedFrom: 5,
			expectedTo:   5,
		},
		{
			name:         "whole balance",
			from:         testCustody,
			to:           testParticipant,
			quantity:     10,
			expectedFrom: 0,
			expectedTo:   10,
		},
		{
			name:         "beyond balance",
			from:         testCustody,
			to:           testParticipant,
			quantity:     11,
			expectedErr:  ErrInsufficientFunds,
			expectedFrom: 10,
		},
		{
			name:         "zero recipient",
			from:         testCustody,
			to:           domain.Address{},
			quantity:     1,
			expectedErr:  ErrZeroAddress,
			expectedFrom: 10,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			funds := NewSandboxFunds()
			funds.Fund(testCustody, 10)

			err := funds.Transfer(t.Context(), tt.from, tt.to, tt.quantity)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			from, _ := funds.BalanceOf(t.Context(), tt.from)
			to, _ := funds.BalanceOf(t.Context(), testParticipant)
			assert.Equal(t, tt.expectedFrom, from)
			assert.Equal(t, tt.expectedTo, to)
		})
	}
}

func TestSandboxFunds_ConcurrentTransfers(t *testing.T) {
	t.Parallel()

	funds := NewSandboxFunds()
	funds.Fund(testCustody, 100)

	var wg sync.WaitGroup
	for range 150 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = funds.Transfer(context.Background(), testCustody, testParticipant, 1)
		}()
	}
	wg.Wait()

	custody, _ := funds.BalanceOf(t.Context(), testCustody)
	participant, _ := funds.BalanceOf(t.Context(), testParticipant)
	assert.Equal(t, uint64(0), custody)
	assert.Equal(t, uint64(100), participant)
}

func TestSandboxResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := NewSandboxResolver(testCustody, 50)

	items, err := resolver.Resolve(domain.UniqueItem, testItems)
	require.NoError(t, err)
	assert.Equal(t, domain.UniqueItem, items.Kind())

	funds, err := resolver.Resolve(domain.Fungible, testFunds)
	require.NoError(t, err)
	assert.Equal(t, domain.Fungible, funds.Kind())

	supply, err := funds.BalanceOf(t.Context(), testCustody)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), supply)

	assert.Same(t, resolver.Funds(testFunds), funds)
	assert.Same(t, resolver.Items(testItems), items)

	_, err = resolver.Resolve(domain.AssetKind("unknown"), testItems)
	assert.Error(t, err)
}
