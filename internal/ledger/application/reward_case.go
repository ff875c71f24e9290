package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
)

// RewardCase mints and redeems rewards. Each call holds the participant's
// balance row lock from the balance check until commit, so settlements of one
// participant never interleave.
type RewardCase struct {
	custody domain.Address

	txManager database.TxManager
	settings  domain.SettingsFetcher
	balances  domain.BalanceLedger
	items     domain.OwnedItemsRegistry
	events    domain.EventAppender
	gateway   domain.CustodianGateway

	metrics RewardMetrics
	logger  logging.Logger
}

func NewRewardCase(
	custody domain.Address,
	txManager database.TxManager,
	settings domain.SettingsFetcher,
	balances domain.BalanceLedger,
	items domain.OwnedItemsRegistry,
	events domain.EventAppender,
	gateway domain.CustodianGateway,
	metrics RewardMetrics,
	logger logging.Logger,
) *RewardCase {
	return &RewardCase{
		custody:   custody,
		txManager: txManager,
		settings:  settings,
		balances:  balances,
		items:     items,
		events:    events,
		gateway:   gateway,
		metrics:   metrics,
		logger:    logger,
	}
}

func (rc *RewardCase) Mint(ctx context.Context, caller domain.Address) ([]domain.RewardEvent, error) {
	events, err := rc.mint(ctx, caller)
	if err != nil {
		rc.metrics.IncFailure(operationMint, failureReason(err))
		return nil, err
	}

	rc.metrics.IncMint()
	return events, nil
}

func (rc *RewardCase) Redeem(ctx context.Context, caller domain.Address) ([]domain.RewardEvent, error) {
	events, err := rc.redeem(ctx, caller)
	if err != nil {
		rc.metrics.IncFailure(operationRedeem, failureReason(err))
		return nil, err
	}

	rc.metrics.IncRedeem()
	return events, nil
}

func (rc *RewardCase) mint(ctx context.Context, caller domain.Address) ([]domain.RewardEvent, error) {
	if caller == (domain.Address{}) {
		return nil, &domain.InvalidArgumentsError{Msg: "caller must not be the zero address"}
	}

	settings, err := rc.settings.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}

	cfg := settings.Configuration
	if !cfg.Complete() {
		return nil, &domain.ConfigurationIncompleteError{Msg: "mint requires both custodians to be configured"}
	}

	var settled, plan []domain.Settlement
	var minted []domain.RewardEvent

	err = rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if err := rc.balances.EnsureBalanceCreated(ctx, executor, caller); err != nil {
			return err
		}

		_, err := rc.balances.LockAndGetBalance(ctx, executor, caller)
		if err != nil {
			return err
		}

		plan, err = rc.planMint(ctx, cfg, caller)
		if err != nil {
			return err
		}

		if err := rc.settleAll(ctx, cfg, plan); err != nil {
			return err
		}
		settled = plan

		minted, err = rc.apply(ctx, executor, domain.Minted, caller, plan)
		return err
	})
	if err != nil {
		return nil, rc.abort(ctx, cfg, settled, err)
	}

	return minted, nil
}

func (rc *RewardCase) redeem(ctx context.Context, caller domain.Address) ([]domain.RewardEvent, error) {
	if caller == (domain.Address{}) {
		return nil, &domain.InvalidArgumentsError{Msg: "caller must not be the zero address"}
	}

	settings, err := rc.settings.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}

	cfg := settings.Configuration
	if len(cfg.ActiveKinds()) == 0 {
		return nil, &domain.ConfigurationIncompleteError{Msg: "redeem requires at least one custodian to be configured"}
	}

	var settled, plan []domain.Settlement
	var redeemed []domain.RewardEvent

	err = rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if err := rc.balances.EnsureBalanceCreated(ctx, executor, caller); err != nil {
			return err
		}

		balance, err := rc.balances.LockAndGetBalance(ctx, executor, caller)
		if err != nil {
			return err
		}

		plan, err = rc.planRedeem(ctx, executor, cfg, caller, balance)
		if err != nil {
			return err
		}

		if err := rc.settleAll(ctx, cfg, plan); err != nil {
			return err
		}
		settled = plan

		redeemed, err = rc.apply(ctx, executor, domain.Redeemed, caller, plan)
		return err
	})
	if err != nil {
		return nil, rc.abort(ctx, cfg, settled, err)
	}

	return redeemed, nil
}

// planMint derives the item id from the custodian's running count of the
// caller's items. The custodian does not check the id for collisions.
func (rc *RewardCase) planMint(ctx context.Context, cfg domain.Configuration, caller domain.Address) ([]domain.Settlement, error) {
	plan := make([]domain.Settlement, 0, len(domain.AssetKinds))

	for _, kind := range cfg.ActiveKinds() {
		value := cfg.QuantityOf(kind)

		if kind == domain.UniqueItem {
			owned, err := rc.gateway.OwnedCount(ctx, cfg, kind, caller)
			if err != nil {
				return nil, err
			}
			value = owned + 1
		} else if value == 0 {
			continue
		}

		plan = append(plan, domain.Settlement{Kind: kind, From: rc.custody, To: caller, Value: value})
	}

	return plan, nil
}

// planRedeem checks every active kind before any custodian is called and
// targets the oldest item the ledger recorded for the caller.
func (rc *RewardCase) planRedeem(
	ctx context.Context,
	querier database.Querier,
	cfg domain.Configuration,
	caller domain.Address,
	balance domain.Balance,
) ([]domain.Settlement, error) {
	kinds := cfg.ActiveKinds()

	for _, kind := range kinds {
		need := cfg.QuantityOf(kind)
		if balance.Of(kind) < need {
			return nil, &domain.InsufficientBalanceError{
				Msg: fmt.Sprintf("insufficient %s balance: have %d, need %d", kind, balance.Of(kind), need),
			}
		}
	}

	plan := make([]domain.Settlement, 0, len(kinds))
	for _, kind := range kinds {
		value := cfg.QuantityOf(kind)

		if kind == domain.UniqueItem {
			itemID, err := rc.items.FetchOldestOwnedItem(ctx, querier, caller)
			if err != nil {
				return nil, err
			}
			value = itemID
		} else if value == 0 {
			continue
		}

		plan = append(plan, domain.Settlement{Kind: kind, From: caller, To: rc.custody, Value: value})
	}

	return plan, nil
}

// settleAll runs the plan in order. When a transfer fails the ones already
// done are reversed before the failure is returned.
func (rc *RewardCase) settleAll(ctx context.Context, cfg domain.Configuration, plan []domain.Settlement) error {
	for i, settlement := range plan {
		if err := rc.gateway.Settle(ctx, cfg, settlement); err != nil {
			return errors.Join(err, rc.compensate(ctx, cfg, plan[:i]))
		}
	}

	return nil
}

func (rc *RewardCase) apply(
	ctx context.Context,
	executor database.Executor,
	kind domain.EventKind,
	participant domain.Address,
	plan []domain.Settlement,
) ([]domain.RewardEvent, error) {
	events := make([]domain.RewardEvent, 0, len(plan))

	for _, settlement := range plan {
		var err error
		if kind == domain.Minted {
			err = rc.credit(ctx, executor, participant, settlement)
		} else {
			err = rc.debit(ctx, executor, participant, settlement)
		}
		if err != nil {
			return nil, err
		}

		event := domain.NewRewardEvent(kind, participant, settlement)
		if err := rc.events.AppendEvent(ctx, executor, event); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

func (rc *RewardCase) credit(ctx context.Context, executor database.Executor, participant domain.Address, settlement domain.Settlement) error {
	if err := rc.balances.Credit(ctx, executor, participant, settlement.Kind, settlement.Quantity()); err != nil {
		return err
	}

	if settlement.Kind == domain.UniqueItem {
		return rc.items.AddOwnedItem(ctx, executor, participant, settlement.Value)
	}

	return nil
}

func (rc *RewardCase) debit(ctx context.Context, executor database.Executor, participant domain.Address, settlement domain.Settlement) error {
	if err := rc.balances.Debit(ctx, executor, participant, settlement.Kind, settlement.Quantity()); err != nil {
		return err
	}

	if settlement.Kind == domain.UniqueItem {
		return rc.items.RemoveOwnedItem(ctx, executor, participant, settlement.Value)
	}

	return nil
}

// abort reverses transfers that settled but whose ledger mutation did not
// commit.
func (rc *RewardCase) abort(ctx context.Context, cfg domain.Configuration, settled []domain.Settlement, cause error) error {
	if len(settled) == 0 {
		return cause
	}

	return errors.Join(cause, rc.compensate(ctx, cfg, settled))
}

func (rc *RewardCase) compensate(ctx context.Context, cfg domain.Configuration, settled []domain.Settlement) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := len(settled) - 1; i >= 0; i-- {
		reversal := settled[i].Reversed()

		if err := rc.gateway.Settle(ctx, cfg, reversal); err != nil {
			rc.logger.Error("failed to compensate settlement",
				"kind", string(reversal.Kind),
				"from", reversal.From.Hex(),
				"to", reversal.To.Hex(),
				"value", reversal.Value,
				"error", err.Error(),
			)
			rc.metrics.IncCompensation(string(reversal.Kind), compensationFailed)
			errs = append(errs, fmt.Errorf("failed to compensate %s settlement: %w", reversal.Kind, err))
			continue
		}

		rc.metrics.IncCompensation(string(reversal.Kind), compensationReversed)
	}

	return errors.Join(errs...)
}
