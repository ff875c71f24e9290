package http

import (
	"net/http"
	"strconv"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

const (
	AddressParamKey = "address"
	limitQueryKey   = "limit"
)

type BalanceHandler struct {
	service domain.BalanceService
	logger  logging.Logger
}

func NewBalanceHandler(service domain.BalanceService, logger logging.Logger) *BalanceHandler {
	return &BalanceHandler{
		service: service,
		logger:  logger,
	}
}

func (h *BalanceHandler) GetBalance(c *gin.Context) {
	participant, ok := addressParam(c)
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), participant)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{
		Address:       participant.Hex(),
		UniqueItems:   balance.UniqueItemCount,
		FungibleUnits: balance.FungibleUnits,
	})
}

func (h *BalanceHandler) GetEvents(c *gin.Context) {
	participant, ok := addressParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query(limitQueryKey); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := h.service.GetEvents(c.Request.Context(), participant, limit)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(events)})
}

func addressParam(c *gin.Context) (domain.Address, bool) {
	raw := c.Param(AddressParamKey)
	if !common.IsHexAddress(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid address"})
		return domain.Address{}, false
	}

	return common.HexToAddress(raw), true
}
