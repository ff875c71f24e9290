package domain

import "context"

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/ledger/services.go -package=mocks

type RewardService interface {
	Mint(ctx context.Context, caller Address) ([]RewardEvent, error)
	Redeem(ctx context.Context, caller Address) ([]RewardEvent, error)
}

type ConfigurationService interface {
	SetConfiguration(ctx context.Context, caller Address, cfg Configuration) error
	SetTransferable(ctx context.Context, caller Address, transferable bool) error
	GetConfiguration(ctx context.Context) (Configuration, error)
	IsTransferable(ctx context.Context) (bool, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, participant Address) (Balance, error)
	GetEvents(ctx context.Context, participant Address, limit int) ([]RewardEvent, error)
}
