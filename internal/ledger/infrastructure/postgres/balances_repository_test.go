package postgres

import (
	"testing"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var balanceColumnNames = []string{"unique_item_count", "fungible_units"}

func TestBalancesRepository_LockAndGetBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		prepareFn func(mock pgxmock.PgxConnIface)

		expected    domain.Balance
		expectedErr error
	}

	tests := []testCase{
		{
			name: "locked balance",
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectQuery("SELECT (.+) FROM balances WHERE participant = \\$1 FOR UPDATE").
					WithArgs(testParticipant.Hex()).
					WillReturnRows(pgxmock.NewRows(balanceColumnNames).AddRow(int64(2), int64(10)))
			},
			expected: domain.Balance{UniqueItemCount: 2, FungibleUnits: 10},
		},
		{
			name: "balance row missing",
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectQuery("SELECT (.+) FROM balances").
					WithArgs(testParticipant.Hex()).
					WillReturnRows(pgxmock.NewRows(balanceColumnNames))
			},
			expectedErr: &domain.BalanceNotFoundError{},
		},
		{
			name: "query failure",
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectQuery("SELECT (.+) FROM balances").
					WithArgs(testParticipant.Hex()).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(mock)

			repo := NewBalancesRepository(mock)
			balance, err := repo.LockAndGetBalance(t.Context(), mock, testParticipant)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBalancesRepository_FetchBalance_UnknownParticipant(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery("SELECT (.+) FROM balances").
		WithArgs(testParticipant.Hex()).
		WillReturnRows(pgxmock.NewRows(balanceColumnNames))

	repo := NewBalancesRepository(mock)
	balance, err := repo.FetchBalance(t.Context(), testParticipant)

	require.NoError(t, err)
	assert.Equal(t, domain.Balance{}, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalancesRepository_CreditAndDebit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		kind      domain.AssetKind
		amount    uint64
		debit     bool
		prepareFn func(mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name:   "credit fungible units",
			kind:   domain.Fungible,
			amount: 5,
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectExec("UPDATE balances SET fungible_units = fungible_units \\+ \\$1").
					WithArgs(int64(5), testParticipant.Hex()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "credit unique items on missing balance",
			kind:   domain.UniqueItem,
			amount: 1,
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectExec("UPDATE balances SET unique_item_count = unique_item_count \\+ \\$1").
					WithArgs(int64(1), testParticipant.Hex()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.BalanceNotFoundError{},
		},
		{
			name:   "debit fungible units",
			kind:   domain.Fungible,
			amount: 5,
			debit:  true,
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectExec("UPDATE balances SET fungible_units = fungible_units - \\$1").
					WithArgs(int64(5), testParticipant.Hex()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "debit beyond balance",
			kind:   domain.Fungible,
			amount: 50,
			debit:  true,
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectExec("UPDATE balances SET fungible_units = fungible_units - \\$1").
					WithArgs(int64(50), testParticipant.Hex()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:        "unknown asset kind",
			kind:        domain.AssetKind("nft-bundle"),
			amount:      1,
			prepareFn:   func(mock pgxmock.PgxConnIface) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:   "exec failure",
			kind:   domain.UniqueItem,
			amount: 1,
			debit:  true,
			prepareFn: func(mock pgxmock.PgxConnIface) {
				mock.ExpectExec("UPDATE balances").
					WithArgs(int64(1), testParticipant.Hex()).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(mock)

			repo := NewBalancesRepository(mock)
			if tt.debit {
				err = repo.Debit(t.Context(), mock, testParticipant, tt.kind, tt.amount)
			} else {
				err = repo.Credit(t.Context(), mock, testParticipant, tt.kind, tt.amount)
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBalancesRepository_OwnedItems(t *testing.T) {
	t.Parallel()

	t.Run("oldest item", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("SELECT item_id FROM owned_items").
			WithArgs(testParticipant.Hex()).
			WillReturnRows(pgxmock.NewRows([]string{"item_id"}).AddRow(int64(3)))

		repo := NewBalancesRepository(mock)
		itemID, err := repo.FetchOldestOwnedItem(t.Context(), mock, testParticipant)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), itemID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no items recorded", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("SELECT item_id FROM owned_items").
			WithArgs(testParticipant.Hex()).
			WillReturnRows(pgxmock.NewRows([]string{"item_id"}))

		repo := NewBalancesRepository(mock)
		_, err = repo.FetchOldestOwnedItem(t.Context(), mock, testParticipant)

		assert.ErrorIs(t, err, &domain.InsufficientBalanceError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("add then remove", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectExec("INSERT INTO owned_items").
			WithArgs(testParticipant.Hex(), int64(4)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("DELETE FROM owned_items").
			WithArgs(testParticipant.Hex(), int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("DELETE FROM owned_items").
			WithArgs(testParticipant.Hex(), int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewBalancesRepository(mock)
		require.NoError(t, repo.AddOwnedItem(t.Context(), mock, testParticipant, 4))
		require.NoError(t, repo.RemoveOwnedItem(t.Context(), mock, testParticipant, 4))
		assert.ErrorIs(t, repo.RemoveOwnedItem(t.Context(), mock, testParticipant, 4), &domain.InsufficientBalanceError{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBalancesRepository_EnsureBalanceCreated(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectExec("INSERT INTO balances").
		WithArgs(testParticipant.Hex()).
		WillReturnError(assert.AnError)

	repo := NewBalancesRepository(mock)
	err = repo.EnsureBalanceCreated(t.Context(), mock, testParticipant)

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
