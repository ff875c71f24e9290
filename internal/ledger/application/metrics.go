package application

import (
	"errors"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
)

const (
	operationMint   = "mint"
	operationRedeem = "redeem"

	compensationReversed = "reversed"
	compensationFailed   = "failed"
)

type RewardMetrics interface {
	IncMint()
	IncRedeem()
	IncFailure(operation, reason string)
	IncCompensation(kind, outcome string)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, &domain.CustodianCallFailedError{}):
		return "custodian_call_failed"
	case errors.Is(err, &domain.ConfigurationIncompleteError{}):
		return "configuration_incomplete"
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		return "insufficient_balance"
	case errors.Is(err, &domain.UnauthorizedError{}):
		return "unauthorized"
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return "invalid_arguments"
	default:
		return "internal"
	}
}
