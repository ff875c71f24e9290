package application

import (
	"context"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
)

const (
	DefaultEventsLimit = 50
	MaxEventsLimit     = 500
)

type BalanceCase struct {
	balances domain.BalanceFetcher
	history  domain.EventHistoryFetcher
}

func NewBalanceCase(balances domain.BalanceFetcher, history domain.EventHistoryFetcher) *BalanceCase {
	return &BalanceCase{
		balances: balances,
		history:  history,
	}
}

func (bc *BalanceCase) GetBalance(ctx context.Context, participant domain.Address) (domain.Balance, error) {
	return bc.balances.FetchBalance(ctx, participant)
}

func (bc *BalanceCase) GetUniqueItemBalance(ctx context.Context, participant domain.Address) (uint64, error) {
	balance, err := bc.balances.FetchBalance(ctx, participant)
	if err != nil {
		return 0, err
	}

	return balance.UniqueItemCount, nil
}

func (bc *BalanceCase) GetFungibleBalance(ctx context.Context, participant domain.Address) (uint64, error) {
	balance, err := bc.balances.FetchBalance(ctx, participant)
	if err != nil {
		return 0, err
	}

	return balance.FungibleUnits, nil
}

// GetEvents lists the newest events of participant. Non-positive limits fall
// back to the default and large ones are capped.
func (bc *BalanceCase) GetEvents(ctx context.Context, participant domain.Address, limit int) ([]domain.RewardEvent, error) {
	if limit <= 0 {
		limit = DefaultEventsLimit
	} else if limit > MaxEventsLimit {
		limit = MaxEventsLimit
	}

	return bc.history.FetchParticipantEvents(ctx, participant, limit)
}
