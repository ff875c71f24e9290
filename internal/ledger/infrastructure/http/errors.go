package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, logger logging.Logger, err error) {
	switch {
	case errors.Is(err, &domain.UnauthorizedError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": "caller is not the administrator"})
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": messageOf(err, &domain.InvalidArgumentsError{})})
	case errors.Is(err, &domain.ConfigurationIncompleteError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": messageOf(err, &domain.ConfigurationIncompleteError{})})
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": messageOf(err, &domain.InsufficientBalanceError{})})
	case errors.Is(err, &domain.CustodianCallFailedError{}):
		logger.Error("custodian call failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"errors": "custodian call failed"})
	default:
		logger.Error("request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

// messageOf returns the message of the first error in err's tree that has
// the type of target.
func messageOf[E error](err error, target E) string {
	if errors.As(err, &target) {
		return target.Error()
	}

	return err.Error()
}
