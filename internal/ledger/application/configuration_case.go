package application

import (
	"context"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
)

type ConfigurationCase struct {
	txManager  database.TxManager
	repository domain.ConfigurationRepository
}

func NewConfigurationCase(txManager database.TxManager, repository domain.ConfigurationRepository) *ConfigurationCase {
	return &ConfigurationCase{
		txManager:  txManager,
		repository: repository,
	}
}

// SetConfiguration replaces the whole configuration. The settings row stays
// locked between the administrator check and the write.
func (cc *ConfigurationCase) SetConfiguration(ctx context.Context, caller domain.Address, cfg domain.Configuration) error {
	return cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		settings, err := cc.repository.LockAndGetSettings(ctx, executor)
		if err != nil {
			return err
		}

		if err := domain.AuthorizeAdministrator(settings, caller); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		return cc.repository.ReplaceConfiguration(ctx, executor, cfg)
	})
}

func (cc *ConfigurationCase) SetTransferable(ctx context.Context, caller domain.Address, transferable bool) error {
	return cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		settings, err := cc.repository.LockAndGetSettings(ctx, executor)
		if err != nil {
			return err
		}

		if err := domain.AuthorizeAdministrator(settings, caller); err != nil {
			return err
		}

		return cc.repository.UpdateTransferable(ctx, executor, transferable)
	})
}

func (cc *ConfigurationCase) GetConfiguration(ctx context.Context) (domain.Configuration, error) {
	settings, err := cc.repository.FetchSettings(ctx)
	if err != nil {
		return domain.Configuration{}, err
	}

	return settings.Configuration, nil
}

func (cc *ConfigurationCase) IsTransferable(ctx context.Context) (bool, error) {
	cfg, err := cc.GetConfiguration(ctx)
	if err != nil {
		return false, err
	}

	return cfg.Transferable, nil
}
