package http

import (
	"net/http"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	service domain.RewardService
	logger  logging.Logger
}

func NewRewardHandler(service domain.RewardService, logger logging.Logger) *RewardHandler {
	return &RewardHandler{
		service: service,
		logger:  logger,
	}
}

func (h *RewardHandler) Mint(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	events, err := h.service.Mint(c.Request.Context(), caller)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(events)})
}

func (h *RewardHandler) Redeem(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	events, err := h.service.Redeem(c.Request.Context(), caller)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(events)})
}
