package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Config  *ConfigHandler
	Reward  *RewardHandler
	Balance *BalanceHandler
	Metrics http.Handler
}

func NewRouter(handlers Handlers, authMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if handlers.Metrics != nil {
		router.GET("/metrics", gin.WrapH(handlers.Metrics))
	}

	api := router.Group("/api")
	{
		api.GET("/config", handlers.Config.GetConfiguration)
		api.GET("/transferable", handlers.Config.IsTransferable)
		api.GET("/balances/:"+AddressParamKey, handlers.Balance.GetBalance)
		api.GET("/events/:"+AddressParamKey, handlers.Balance.GetEvents)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.POST("/mint", handlers.Reward.Mint)
			authenticated.POST("/redeem", handlers.Reward.Redeem)
			authenticated.PUT("/admin/config", handlers.Config.SetConfiguration)
			authenticated.PUT("/admin/transferable", handlers.Config.SetTransferable)
		}
	}

	return router
}
