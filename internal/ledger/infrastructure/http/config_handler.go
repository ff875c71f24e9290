package http

import (
	"net/http"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type transferableBody struct {
	Transferable *bool `json:"transferable" binding:"required"`
}

type ConfigHandler struct {
	service domain.ConfigurationService
	logger  logging.Logger
}

func NewConfigHandler(service domain.ConfigurationService, logger logging.Logger) *ConfigHandler {
	return &ConfigHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConfigHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.service.GetConfiguration(c.Request.Context())
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toConfigurationBody(cfg))
}

func (h *ConfigHandler) IsTransferable(c *gin.Context) {
	transferable, err := h.service.IsTransferable(c.Request.Context())
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transferable": transferable})
}

func (h *ConfigHandler) SetConfiguration(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var body configurationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	cfg, ok := body.toConfiguration()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid custodian address"})
		return
	}

	if err := h.service.SetConfiguration(c.Request.Context(), caller, cfg); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *ConfigHandler) SetTransferable(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var body transferableBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	if err := h.service.SetTransferable(c.Request.Context(), caller, *body.Transferable); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
