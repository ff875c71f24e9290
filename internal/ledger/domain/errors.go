package domain

import "fmt"

//region UnauthorizedError

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

//endregion

//region ConfigurationIncompleteError

type ConfigurationIncompleteError struct {
	Msg string
}

func (e *ConfigurationIncompleteError) Error() string {
	return e.Msg
}

func (e *ConfigurationIncompleteError) Is(target error) bool {
	_, ok := target.(*ConfigurationIncompleteError)
	return ok
}

//endregion

//region ConfigurationNotFoundError

type ConfigurationNotFoundError struct {
	Msg string
}

func (e *ConfigurationNotFoundError) Error() string {
	return e.Msg
}

func (e *ConfigurationNotFoundError) Is(target error) bool {
	_, ok := target.(*ConfigurationNotFoundError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region BalanceNotFoundError

type BalanceNotFoundError struct {
	Msg string
}

func (e *BalanceNotFoundError) Error() string {
	return e.Msg
}

func (e *BalanceNotFoundError) Is(target error) bool {
	_, ok := target.(*BalanceNotFoundError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region CustodianCallFailedError

// CustodianCallFailedError reports a rejected custodian call. Reason is the
// custodian's own failure and is not interpreted by the ledger.
type CustodianCallFailedError struct {
	Kind   AssetKind
	Reason error
}

func (e *CustodianCallFailedError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("%s custodian call failed", e.Kind)
	}

	return fmt.Sprintf("%s custodian call failed: %v", e.Kind, e.Reason)
}

func (e *CustodianCallFailedError) Is(target error) bool {
	_, ok := target.(*CustodianCallFailedError)
	return ok
}

func (e *CustodianCallFailedError) Unwrap() error {
	return e.Reason
}

//endregion
