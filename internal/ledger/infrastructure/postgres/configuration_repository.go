package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const selectSettingsSQL = `SELECT administrator, unique_item_custodian, fungible_custodian,
unique_item_name, unique_item_symbol, fungible_name, fungible_symbol, reward_quantity, transferable
FROM reward_config
WHERE id = 1`

type ConfigurationRepository struct {
	executor database.QueryExecuter
}

func NewConfigurationRepository(executor database.QueryExecuter) *ConfigurationRepository {
	return &ConfigurationRepository{
		executor: executor,
	}
}

// EnsureSettingsCreated stores the administrator on first start. An existing
// row is left untouched so the administrator never changes afterwards.
func (cr *ConfigurationRepository) EnsureSettingsCreated(ctx context.Context, administrator domain.Address) error {
	sql := `INSERT INTO reward_config (id, administrator) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`

	_, err := cr.executor.Exec(ctx, sql, administrator.Hex())
	if err != nil {
		return fmt.Errorf("failed to create reward settings: %w", err)
	}

	return nil
}

func (cr *ConfigurationRepository) FetchSettings(ctx context.Context) (domain.RewardSettings, error) {
	return scanSettings(cr.executor.QueryRow(ctx, selectSettingsSQL))
}

func (cr *ConfigurationRepository) LockAndGetSettings(ctx context.Context, querier database.Querier) (domain.RewardSettings, error) {
	return scanSettings(querier.QueryRow(ctx, selectSettingsSQL+` FOR UPDATE`))
}

func (cr *ConfigurationRepository) ReplaceConfiguration(ctx context.Context, executor database.Executor, cfg domain.Configuration) error {
	sql := `UPDATE reward_config
SET unique_item_custodian = $1, fungible_custodian = $2,
    unique_item_name = $3, unique_item_symbol = $4, fungible_name = $5, fungible_symbol = $6,
    reward_quantity = $7, transferable = $8, updated_at = now()
WHERE id = 1`

	tag, err := executor.Exec(ctx, sql,
		optionalAddressParam(cfg.UniqueItemCustodian),
		optionalAddressParam(cfg.FungibleCustodian),
		cfg.UniqueItemName,
		cfg.UniqueItemSymbol,
		cfg.FungibleName,
		cfg.FungibleSymbol,
		int64(cfg.RewardQuantity),
		cfg.Transferable,
	)
	if err != nil {
		return fmt.Errorf("failed to replace configuration: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ConfigurationNotFoundError{Msg: "reward settings are not initialized"}
	}

	return nil
}

func (cr *ConfigurationRepository) UpdateTransferable(ctx context.Context, executor database.Executor, transferable bool) error {
	sql := `UPDATE reward_config SET transferable = $1, updated_at = now() WHERE id = 1`

	tag, err := executor.Exec(ctx, sql, transferable)
	if err != nil {
		return fmt.Errorf("failed to update transferable flag: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ConfigurationNotFoundError{Msg: "reward settings are not initialized"}
	}

	return nil
}

func scanSettings(row pgx.Row) (domain.RewardSettings, error) {
	var (
		administrator       string
		uniqueItemCustodian *string
		fungibleCustodian   *string
		rewardQuantity      int64
		settings            domain.RewardSettings
	)

	cfg := &settings.Configuration
	err := row.Scan(
		&administrator,
		&uniqueItemCustodian,
		&fungibleCustodian,
		&cfg.UniqueItemName,
		&cfg.UniqueItemSymbol,
		&cfg.FungibleName,
		&cfg.FungibleSymbol,
		&rewardQuantity,
		&cfg.Transferable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RewardSettings{}, &domain.ConfigurationNotFoundError{Msg: "reward settings are not initialized"}
		}

		return domain.RewardSettings{}, fmt.Errorf("failed to fetch reward settings: %w", err)
	}

	settings.Administrator = common.HexToAddress(administrator)
	cfg.UniqueItemCustodian = optionalAddressValue(uniqueItemCustodian)
	cfg.FungibleCustodian = optionalAddressValue(fungibleCustodian)
	cfg.RewardQuantity = uint64(rewardQuantity)

	return settings, nil
}
