package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type BalancesRepository struct {
	querier database.Querier
}

func NewBalancesRepository(querier database.Querier) *BalancesRepository {
	return &BalancesRepository{
		querier: querier,
	}
}

func (br *BalancesRepository) EnsureBalanceCreated(ctx context.Context, executor database.Executor, participant domain.Address) error {
	sql := `INSERT INTO balances (participant) VALUES ($1) ON CONFLICT (participant) DO NOTHING`

	_, err := executor.Exec(ctx, sql, participant.Hex())
	if err != nil {
		return fmt.Errorf("failed to create balance: %w", err)
	}

	return nil
}

func (br *BalancesRepository) LockAndGetBalance(ctx context.Context, querier database.Querier, participant domain.Address) (domain.Balance, error) {
	lockBalanceSQL := `SELECT unique_item_count, fungible_units FROM balances WHERE participant = $1 FOR UPDATE`

	balance, err := scanBalance(querier.QueryRow(ctx, lockBalanceSQL, participant.Hex()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Balance{}, &domain.BalanceNotFoundError{Msg: fmt.Sprintf("balance of %s not found", participant.Hex())}
		}

		return domain.Balance{}, fmt.Errorf("failed to lock balance row: %w", err)
	}

	return balance, nil
}

// FetchBalance reads without locking. Unseen participants have a zero balance.
func (br *BalancesRepository) FetchBalance(ctx context.Context, participant domain.Address) (domain.Balance, error) {
	selectBalanceSQL := `SELECT unique_item_count, fungible_units FROM balances WHERE participant = $1`

	balance, err := scanBalance(br.querier.QueryRow(ctx, selectBalanceSQL, participant.Hex()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Balance{}, nil
		}

		return domain.Balance{}, fmt.Errorf("failed to fetch balance: %w", err)
	}

	return balance, nil
}

func (br *BalancesRepository) Credit(ctx context.Context, executor database.Executor, participant domain.Address, kind domain.AssetKind, amount uint64) error {
	column, err := balanceColumn(kind)
	if err != nil {
		return err
	}

	creditSQL := fmt.Sprintf(`UPDATE balances SET %[1]s = %[1]s + $1 WHERE participant = $2`, column)
	tag, err := executor.Exec(ctx, creditSQL, int64(amount), participant.Hex())
	if err != nil {
		return fmt.Errorf("failed to credit %s balance: %w", kind, err)
	} else if tag.RowsAffected() == 0 {
		return &domain.BalanceNotFoundError{Msg: fmt.Sprintf("balance of %s not found", participant.Hex())}
	}

	return nil
}

func (br *BalancesRepository) Debit(ctx context.Context, executor database.Executor, participant domain.Address, kind domain.AssetKind, amount uint64) error {
	column, err := balanceColumn(kind)
	if err != nil {
		return err
	}

	debitSQL := fmt.Sprintf(`UPDATE balances SET %[1]s = %[1]s - $1 WHERE participant = $2 AND %[1]s >= $1`, column)
	tag, err := executor.Exec(ctx, debitSQL, int64(amount), participant.Hex())
	if err != nil {
		return fmt.Errorf("failed to debit %s balance: %w", kind, err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("insufficient %s balance", kind)}
	}

	return nil
}

func (br *BalancesRepository) AddOwnedItem(ctx context.Context, executor database.Executor, participant domain.Address, itemID uint64) error {
	sql := `INSERT INTO owned_items (participant, item_id) VALUES ($1, $2)`

	_, err := executor.Exec(ctx, sql, participant.Hex(), int64(itemID))
	if err != nil {
		return fmt.Errorf("failed to record owned item: %w", err)
	}

	return nil
}

func (br *BalancesRepository) FetchOldestOwnedItem(ctx context.Context, querier database.Querier, participant domain.Address) (uint64, error) {
	sql := `SELECT item_id FROM owned_items WHERE participant = $1 ORDER BY position LIMIT 1`

	var itemID int64
	err := querier.QueryRow(ctx, sql, participant.Hex()).Scan(&itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InsufficientBalanceError{Msg: "no owned items recorded"}
		}

		return 0, fmt.Errorf("failed to fetch oldest owned item: %w", err)
	}

	return uint64(itemID), nil
}

func (br *BalancesRepository) RemoveOwnedItem(ctx context.Context, executor database.Executor, participant domain.Address, itemID uint64) error {
	sql := `DELETE FROM owned_items WHERE participant = $1 AND item_id = $2`

	tag, err := executor.Exec(ctx, sql, participant.Hex(), int64(itemID))
	if err != nil {
		return fmt.Errorf("failed to remove owned item: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("item %d is not owned", itemID)}
	}

	return nil
}

func balanceColumn(kind domain.AssetKind) (string, error) {
	switch kind {
	case domain.UniqueItem:
		return "unique_item_count", nil
	case domain.Fungible:
		return "fungible_units", nil
	default:
		return "", &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown asset kind %q", kind)}
	}
}

func scanBalance(row pgx.Row) (domain.Balance, error) {
	var uniqueItemCount, fungibleUnits int64
	if err := row.Scan(&uniqueItemCount, &fungibleUnits); err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		UniqueItemCount: uint64(uniqueItemCount),
		FungibleUnits:   uint64(fungibleUnits),
	}, nil
}
